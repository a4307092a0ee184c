// Package dispositivos define los contratos JSON de /api/dispositivos.
package dispositivos

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	"github.com/dropDatabas3/vigilia/internal/patch"
)

type CreateRequest struct {
	IDModelo          int64      `json:"idModelo"`
	Serie             string     `json:"serie"`
	NombreDispositivo string     `json:"nombreDispositivo"`
	Ubicacion         string     `json:"ubicacion"`
	FechaInstalacion  *time.Time `json:"fechaInstalacion"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDModelo, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Serie, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.NombreDispositivo, validation.Required, validation.Length(1, 200)),
	)
}

type UpdateRequest struct {
	IDModelo          patch.Field[int64]     `json:"idModelo"`
	Serie             patch.Field[string]    `json:"serie"`
	NombreDispositivo patch.Field[string]    `json:"nombreDispositivo"`
	Ubicacion         patch.Field[string]    `json:"ubicacion"`
	FechaInstalacion  patch.Field[time.Time] `json:"fechaInstalacion"`
}

func (r UpdateRequest) IsEmpty() bool {
	return !r.IDModelo.Set && !r.Serie.Set && !r.NombreDispositivo.Set &&
		!r.Ubicacion.Set && !r.FechaInstalacion.Set
}

type View struct {
	ID                int64      `json:"id"`
	IDModelo          int64      `json:"idModelo"`
	Serie             string     `json:"serie"`
	NombreDispositivo string     `json:"nombreDispositivo"`
	Ubicacion         string     `json:"ubicacion"`
	FechaInstalacion  *time.Time `json:"fechaInstalacion"`
	Activo            bool       `json:"activo"`
	NombreModelo      string     `json:"nombreModelo"`
	Fabricante        string     `json:"fabricante"`
}

func NewView(d *repository.Dispositivo) View {
	return View{
		ID:                d.ID,
		IDModelo:          d.IDModelo,
		Serie:             d.Serie,
		NombreDispositivo: d.NombreDispositivo,
		Ubicacion:         d.Ubicacion,
		FechaInstalacion:  d.FechaInstalacion,
		Activo:            d.Activo,
		NombreModelo:      d.NombreModelo,
		Fabricante:        d.Fabricante,
	}
}

func NewViews(ds []repository.Dispositivo) []View {
	out := make([]View, 0, len(ds))
	for i := range ds {
		out = append(out, NewView(&ds[i]))
	}
	return out
}

type BajaView struct {
	ID                int64  `json:"id"`
	NombreDispositivo string `json:"nombreDispositivo"`
	Serie             string `json:"serie"`
	Activo            bool   `json:"activo"`
}

type SingleResponse struct {
	Message     string `json:"message"`
	Dispositivo View   `json:"dispositivo"`
}

type ListResponse struct {
	Message      string `json:"message"`
	Total        int    `json:"total"`
	Dispositivos []View `json:"dispositivos"`
}

type BajaResponse struct {
	Message     string   `json:"message"`
	Dispositivo BajaView `json:"dispositivo"`
}
