package auth

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// LoginRequest es el body de POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate exige ambos campos; el formato del email no se chequea acá para
// no filtrar qué emails existen con errores distintos.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// UserView son los datos de sesión que vuelven junto al token.
type UserView struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
	Email  string `json:"email"`
	Activo bool   `json:"activo"`
}

// LoginResponse es la respuesta de un login exitoso.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}
