package repository

import (
	"context"
	"time"
)

// Evento es una entrada del log de alarmas. Append-only: no se actualiza
// ni se borra, por eso no tiene patch ni soft delete.
type Evento struct {
	ID                int64
	IDDispositivo     int64
	TipoEvento        string
	Descripcion       string
	NivelCriticidad   string
	FechaHora         time.Time
	SerieDispositivo  string
	NombreDispositivo string
	NombreModelo      string
}

type CreateEvento struct {
	IDDispositivo   int64
	TipoEvento      string
	Descripcion     string
	NivelCriticidad string
}

type EventoRepository interface {
	Create(ctx context.Context, in CreateEvento) (*Evento, error)
	List(ctx context.Context) ([]Evento, error)
	ListByDispositivo(ctx context.Context, idDispositivo int64) ([]Evento, error)
}
