package repository

import (
	"context"
	"time"

	"github.com/dropDatabas3/vigilia/internal/patch"
)

// Estados de una asignación. Finalizada es terminal: la transición
// Programada → Finalizada es de un solo sentido y la custodia un update
// condicional en la base, no un lock en la aplicación.
const (
	EstadoProgramada = "Programada"
	EstadoFinalizada = "Finalizada"
)

// Asignacion vincula un dispositivo con el abonado que lo tiene en servicio.
type Asignacion struct {
	ID              int64
	IDAbonado       int64
	IDDispositivo   int64
	FechaProgramada time.Time
	FechaFinReal    *time.Time
	Estado          string
	RazonSocial     string
	Serie           string
}

type CreateAsignacion struct {
	IDAbonado       int64
	IDDispositivo   int64
	FechaProgramada time.Time
}

type AsignacionPatch struct {
	IDAbonado       patch.Field[int64]
	IDDispositivo   patch.Field[int64]
	FechaProgramada patch.Field[time.Time]
}

func (p AsignacionPatch) IsEmpty() bool {
	return !p.IDAbonado.Set && !p.IDDispositivo.Set && !p.FechaProgramada.Set
}

// AsignacionCierre es el resultado de finalizar: identidad previa + estado
// nuevo + timestamp de cierre, para que el caller confirme sin releer.
type AsignacionCierre struct {
	ID           int64
	Estado       string
	FechaFinReal time.Time
}

type AsignacionRepository interface {
	// Create falla con *AsignacionActivaError si el dispositivo ya tiene
	// una asignación no finalizada.
	Create(ctx context.Context, in CreateAsignacion) (*Asignacion, error)
	List(ctx context.Context) ([]Asignacion, error)
	GetByID(ctx context.Context, id int64) (*Asignacion, error)
	Update(ctx context.Context, id int64, p AsignacionPatch) (*Asignacion, error)
	// Finalizar solo transiciona desde un estado no terminal; cero filas
	// afectadas se reporta como ErrNotFound.
	Finalizar(ctx context.Context, id int64) (*AsignacionCierre, error)
}
