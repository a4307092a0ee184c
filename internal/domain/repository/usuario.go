package repository

import (
	"context"

	"github.com/dropDatabas3/vigilia/internal/patch"
)

// Usuario es la vista pública de una cuenta. Nunca incluye el hash.
type Usuario struct {
	ID           int64
	Nombre       string
	Email        string
	Telefono     string
	Activo       bool
	IDRol        int64
	IDSector     *int64
	NombreRol    string
	NombreSector string
}

// UsuarioAuth es la fila que usa el login: incluye el hash de contraseña.
// Solo GetByEmailForAuth la devuelve; no sale de la capa de auth.
type UsuarioAuth struct {
	ID           int64
	Nombre       string
	Email        string
	PasswordHash string
	Activo       bool
	NombreRol    string
}

// CreateUsuario lleva los datos de registro ya validados y con el hash calculado.
type CreateUsuario struct {
	Nombre       string
	Email        string
	PasswordHash string
	Telefono     string
	IDSector     *int64
	IDRol        int64
}

// UsuarioPatch es el update parcial tipado. Campo ausente = columna intacta.
// PasswordHash viene ya hasheado por el service; el adapter no conoce bcrypt.
type UsuarioPatch struct {
	Nombre       patch.Field[string]
	Telefono     patch.Field[string]
	IDSector     patch.Field[int64]
	IDRol        patch.Field[int64]
	PasswordHash patch.Field[string]
}

// IsEmpty informa si el patch no toca ninguna columna.
func (p UsuarioPatch) IsEmpty() bool {
	return !p.Nombre.Set && !p.Telefono.Set && !p.IDSector.Set && !p.IDRol.Set && !p.PasswordHash.Set
}

// UsuarioBaja es el resultado de un soft delete: identidad previa + estado nuevo.
type UsuarioBaja struct {
	ID     int64
	Nombre string
	Email  string
	Activo bool
}

type UsuarioRepository interface {
	Create(ctx context.Context, in CreateUsuario) (*Usuario, error)
	List(ctx context.Context, soloActivos bool) ([]Usuario, error)
	GetByID(ctx context.Context, id int64) (*Usuario, error)
	GetByEmailForAuth(ctx context.Context, email string) (*UsuarioAuth, error)
	Update(ctx context.Context, id int64, p UsuarioPatch) (*Usuario, error)
	SoftDelete(ctx context.Context, id int64) (*UsuarioBaja, error)
}
