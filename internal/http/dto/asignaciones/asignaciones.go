// Package asignaciones define los contratos JSON de /api/asignaciones.
package asignaciones

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	"github.com/dropDatabas3/vigilia/internal/patch"
)

type CreateRequest struct {
	IDAbonado       int64      `json:"idAbonado"`
	IDDispositivo   int64      `json:"idDispositivo"`
	FechaProgramada *time.Time `json:"fechaProgramada"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDAbonado, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.IDDispositivo, validation.Required, validation.Min(int64(1))),
	)
}

type UpdateRequest struct {
	IDAbonado       patch.Field[int64]     `json:"idAbonado"`
	IDDispositivo   patch.Field[int64]     `json:"idDispositivo"`
	FechaProgramada patch.Field[time.Time] `json:"fechaProgramada"`
}

func (r UpdateRequest) IsEmpty() bool {
	return !r.IDAbonado.Set && !r.IDDispositivo.Set && !r.FechaProgramada.Set
}

type View struct {
	ID              int64      `json:"id"`
	IDAbonado       int64      `json:"idAbonado"`
	IDDispositivo   int64      `json:"idDispositivo"`
	FechaProgramada time.Time  `json:"fechaProgramada"`
	FechaFinReal    *time.Time `json:"fechaFinReal"`
	Estado          string     `json:"estado"`
	RazonSocial     string     `json:"razonSocial"`
	Serie           string     `json:"serie"`
}

func NewView(a *repository.Asignacion) View {
	return View{
		ID:              a.ID,
		IDAbonado:       a.IDAbonado,
		IDDispositivo:   a.IDDispositivo,
		FechaProgramada: a.FechaProgramada,
		FechaFinReal:    a.FechaFinReal,
		Estado:          a.Estado,
		RazonSocial:     a.RazonSocial,
		Serie:           a.Serie,
	}
}

func NewViews(as []repository.Asignacion) []View {
	out := make([]View, 0, len(as))
	for i := range as {
		out = append(out, NewView(&as[i]))
	}
	return out
}

// CierreView es la respuesta de PUT /api/asignaciones/:id/deactivate.
type CierreView struct {
	ID           int64     `json:"id"`
	Estado       string    `json:"estado"`
	FechaFinReal time.Time `json:"fechaFinReal"`
}

type SingleResponse struct {
	Message    string `json:"message"`
	Asignacion View   `json:"asignacion"`
}

type ListResponse struct {
	Message      string `json:"message"`
	Total        int    `json:"total"`
	Asignaciones []View `json:"asignaciones"`
}

type CierreResponse struct {
	Message    string     `json:"message"`
	Asignacion CierreView `json:"asignacion"`
}
