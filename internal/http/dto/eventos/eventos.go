// Package eventos define los contratos JSON de /api/eventos.
package eventos

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type CreateRequest struct {
	IDDispositivo   int64  `json:"idDispositivo"`
	TipoEvento      string `json:"tipoEvento"`
	Descripcion     string `json:"descripcion"`
	NivelCriticidad string `json:"nivelCriticidad"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDDispositivo, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.TipoEvento, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Descripcion, validation.Required),
		validation.Field(&r.NivelCriticidad, validation.Required,
			validation.In("Baja", "Media", "Alta", "Crítica")),
	)
}

type View struct {
	ID                int64     `json:"id"`
	IDDispositivo     int64     `json:"idDispositivo"`
	TipoEvento        string    `json:"tipoEvento"`
	Descripcion       string    `json:"descripcion"`
	NivelCriticidad   string    `json:"nivelCriticidad"`
	FechaHora         time.Time `json:"fechaHora"`
	SerieDispositivo  string    `json:"serieDispositivo"`
	NombreDispositivo string    `json:"nombreDispositivo"`
	NombreModelo      string    `json:"nombreModelo"`
}

func NewView(e *repository.Evento) View {
	return View{
		ID:                e.ID,
		IDDispositivo:     e.IDDispositivo,
		TipoEvento:        e.TipoEvento,
		Descripcion:       e.Descripcion,
		NivelCriticidad:   e.NivelCriticidad,
		FechaHora:         e.FechaHora,
		SerieDispositivo:  e.SerieDispositivo,
		NombreDispositivo: e.NombreDispositivo,
		NombreModelo:      e.NombreModelo,
	}
}

func NewViews(es []repository.Evento) []View {
	out := make([]View, 0, len(es))
	for i := range es {
		out = append(out, NewView(&es[i]))
	}
	return out
}

type SingleResponse struct {
	Message string `json:"message"`
	Evento  View   `json:"evento"`
}

type ListResponse struct {
	Message string `json:"message"`
	Total   int    `json:"total"`
	Eventos []View `json:"eventos"`
}
