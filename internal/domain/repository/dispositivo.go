package repository

import (
	"context"
	"time"

	"github.com/dropDatabas3/vigilia/internal/patch"
)

// Dispositivo es un equipo físico instalado (cámara, sensor, panel).
// Las lecturas vienen con los datos del modelo ya joineados.
type Dispositivo struct {
	ID                int64
	IDModelo          int64
	Serie             string
	NombreDispositivo string
	Ubicacion         string
	FechaInstalacion  *time.Time
	Activo            bool
	NombreModelo      string
	Fabricante        string
}

type CreateDispositivo struct {
	IDModelo          int64
	Serie             string
	NombreDispositivo string
	Ubicacion         string
	FechaInstalacion  *time.Time
}

type DispositivoPatch struct {
	IDModelo          patch.Field[int64]
	Serie             patch.Field[string]
	NombreDispositivo patch.Field[string]
	Ubicacion         patch.Field[string]
	FechaInstalacion  patch.Field[time.Time]
}

func (p DispositivoPatch) IsEmpty() bool {
	return !p.IDModelo.Set && !p.Serie.Set && !p.NombreDispositivo.Set &&
		!p.Ubicacion.Set && !p.FechaInstalacion.Set
}

type DispositivoBaja struct {
	ID                int64
	NombreDispositivo string
	Serie             string
	Activo            bool
}

type DispositivoRepository interface {
	Create(ctx context.Context, in CreateDispositivo) (*Dispositivo, error)
	List(ctx context.Context) ([]Dispositivo, error)
	GetByID(ctx context.Context, id int64) (*Dispositivo, error)
	Update(ctx context.Context, id int64, p DispositivoPatch) (*Dispositivo, error)
	SoftDelete(ctx context.Context, id int64) (*DispositivoBaja, error)
}
