// Package abonados define los contratos JSON de /api/abonados.
package abonados

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	"github.com/dropDatabas3/vigilia/internal/patch"
)

type CreateRequest struct {
	RazonSocial       string `json:"razonSocial"`
	RUT               string `json:"rut"`
	ContactoPrincipal string `json:"contactoPrincipal"`
	TelefonoContacto  string `json:"telefonoContacto"`
	EmailContacto     string `json:"emailContacto"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RazonSocial, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.RUT, validation.Required, validation.Length(1, 20)),
		validation.Field(&r.EmailContacto, is.Email),
	)
}

type UpdateRequest struct {
	RazonSocial       patch.Field[string] `json:"razonSocial"`
	RUT               patch.Field[string] `json:"rut"`
	ContactoPrincipal patch.Field[string] `json:"contactoPrincipal"`
	TelefonoContacto  patch.Field[string] `json:"telefonoContacto"`
	EmailContacto     patch.Field[string] `json:"emailContacto"`
}

func (r UpdateRequest) IsEmpty() bool {
	return !r.RazonSocial.Set && !r.RUT.Set && !r.ContactoPrincipal.Set &&
		!r.TelefonoContacto.Set && !r.EmailContacto.Set
}

type View struct {
	ID                int64     `json:"id"`
	RazonSocial       string    `json:"razonSocial"`
	RUT               string    `json:"rut"`
	ContactoPrincipal string    `json:"contactoPrincipal"`
	TelefonoContacto  string    `json:"telefonoContacto"`
	EmailContacto     string    `json:"emailContacto"`
	FechaAlta         time.Time `json:"fechaAlta"`
	Activo            bool      `json:"activo"`
}

func NewView(a *repository.Abonado) View {
	return View{
		ID:                a.ID,
		RazonSocial:       a.RazonSocial,
		RUT:               a.RUT,
		ContactoPrincipal: a.ContactoPrincipal,
		TelefonoContacto:  a.TelefonoContacto,
		EmailContacto:     a.EmailContacto,
		FechaAlta:         a.FechaAlta,
		Activo:            a.Activo,
	}
}

func NewViews(as []repository.Abonado) []View {
	out := make([]View, 0, len(as))
	for i := range as {
		out = append(out, NewView(&as[i]))
	}
	return out
}

type BajaView struct {
	ID          int64  `json:"id"`
	RazonSocial string `json:"razonSocial"`
	Activo      bool   `json:"activo"`
}

type SingleResponse struct {
	Message string `json:"message"`
	Abonado View   `json:"abonado"`
}

type ListResponse struct {
	Message  string `json:"message"`
	Total    int    `json:"total"`
	Abonados []View `json:"abonados"`
}

type BajaResponse struct {
	Message string   `json:"message"`
	Abonado BajaView `json:"abonado"`
}
