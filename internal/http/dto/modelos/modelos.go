// Package modelos define los contratos JSON de /api/modelos.
package modelos

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	"github.com/dropDatabas3/vigilia/internal/patch"
)

type CreateRequest struct {
	NombreModelo    string `json:"nombreModelo"`
	Fabricante      string `json:"fabricante"`
	TipoDispositivo string `json:"tipoDispositivo"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NombreModelo, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.TipoDispositivo, validation.Required, validation.Length(1, 80)),
	)
}

type UpdateRequest struct {
	NombreModelo    patch.Field[string] `json:"nombreModelo"`
	Fabricante      patch.Field[string] `json:"fabricante"`
	TipoDispositivo patch.Field[string] `json:"tipoDispositivo"`
}

func (r UpdateRequest) IsEmpty() bool {
	return !r.NombreModelo.Set && !r.Fabricante.Set && !r.TipoDispositivo.Set
}

type View struct {
	ID              int64  `json:"id"`
	NombreModelo    string `json:"nombreModelo"`
	Fabricante      string `json:"fabricante"`
	TipoDispositivo string `json:"tipoDispositivo"`
	Activo          bool   `json:"activo"`
}

func NewView(m *repository.ModeloDispositivo) View {
	return View{
		ID:              m.ID,
		NombreModelo:    m.NombreModelo,
		Fabricante:      m.Fabricante,
		TipoDispositivo: m.TipoDispositivo,
		Activo:          m.Activo,
	}
}

func NewViews(ms []repository.ModeloDispositivo) []View {
	out := make([]View, 0, len(ms))
	for i := range ms {
		out = append(out, NewView(&ms[i]))
	}
	return out
}

type BajaView struct {
	ID           int64  `json:"id"`
	NombreModelo string `json:"nombreModelo"`
	Activo       bool   `json:"activo"`
}

type SingleResponse struct {
	Message string `json:"message"`
	Modelo  View   `json:"modelo"`
}

type ListResponse struct {
	Message string `json:"message"`
	Total   int    `json:"total"`
	Modelos []View `json:"modelos"`
}

type BajaResponse struct {
	Message string   `json:"message"`
	Modelo  BajaView `json:"modelo"`
}
