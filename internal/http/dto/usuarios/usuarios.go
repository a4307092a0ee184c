// Package usuarios define los contratos JSON de /api/register y /api/usuarios.
package usuarios

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	"github.com/dropDatabas3/vigilia/internal/patch"
)

// RegisterRequest es el body de POST /api/register.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Telefono string `json:"telefono"`
	IDSector *int64 `json:"idSector"`
	IDRol    int64  `json:"idRol"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nombre, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&r.IDRol, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.IDSector, validation.Min(int64(1))),
	)
}

// UpdateRequest es el body de PUT /api/usuarios/:id. Todos los campos son
// opcionales: campo ausente = columna intacta, incluso para valores "falsy".
type UpdateRequest struct {
	Nombre   patch.Field[string] `json:"nombre"`
	Telefono patch.Field[string] `json:"telefono"`
	IDSector patch.Field[int64]  `json:"idSector"`
	IDRol    patch.Field[int64]  `json:"idRol"`
	Password patch.Field[string] `json:"password"`
}

// IsEmpty informa si no vino ningún campo editable.
func (r UpdateRequest) IsEmpty() bool {
	return !r.Nombre.Set && !r.Telefono.Set && !r.IDSector.Set && !r.IDRol.Set && !r.Password.Set
}

// View es la proyección pública de un usuario (sin hash).
type View struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	Activo       bool   `json:"activo"`
	IDRol        int64  `json:"idRol"`
	IDSector     *int64 `json:"idSector"`
	NombreRol    string `json:"nombreRol"`
	NombreSector string `json:"nombreSector"`
}

func NewView(u *repository.Usuario) View {
	return View{
		ID:           u.ID,
		Nombre:       u.Nombre,
		Email:        u.Email,
		Telefono:     u.Telefono,
		Activo:       u.Activo,
		IDRol:        u.IDRol,
		IDSector:     u.IDSector,
		NombreRol:    u.NombreRol,
		NombreSector: u.NombreSector,
	}
}

func NewViews(us []repository.Usuario) []View {
	out := make([]View, 0, len(us))
	for i := range us {
		out = append(out, NewView(&us[i]))
	}
	return out
}

// BajaView es la respuesta de una baja lógica: identidad + estado final.
type BajaView struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Activo bool   `json:"activo"`
}

type SingleResponse struct {
	Message string `json:"message"`
	Usuario View   `json:"usuario"`
}

type ListResponse struct {
	Message  string `json:"message"`
	Total    int    `json:"total"`
	Usuarios []View `json:"usuarios"`
}

type BajaResponse struct {
	Message string   `json:"message"`
	Usuario BajaView `json:"usuario"`
}
