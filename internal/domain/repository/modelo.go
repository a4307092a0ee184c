package repository

import (
	"context"

	"github.com/dropDatabas3/vigilia/internal/patch"
)

// ModeloDispositivo es el catálogo de modelos (cámaras, sensores, paneles).
type ModeloDispositivo struct {
	ID              int64
	NombreModelo    string
	Fabricante      string
	TipoDispositivo string
	Activo          bool
}

type CreateModelo struct {
	NombreModelo    string
	Fabricante      string
	TipoDispositivo string
}

type ModeloPatch struct {
	NombreModelo    patch.Field[string]
	Fabricante      patch.Field[string]
	TipoDispositivo patch.Field[string]
}

func (p ModeloPatch) IsEmpty() bool {
	return !p.NombreModelo.Set && !p.Fabricante.Set && !p.TipoDispositivo.Set
}

type ModeloBaja struct {
	ID           int64
	NombreModelo string
	Activo       bool
}

type ModeloRepository interface {
	Create(ctx context.Context, in CreateModelo) (*ModeloDispositivo, error)
	List(ctx context.Context) ([]ModeloDispositivo, error)
	GetByID(ctx context.Context, id int64) (*ModeloDispositivo, error)
	Update(ctx context.Context, id int64, p ModeloPatch) (*ModeloDispositivo, error)
	SoftDelete(ctx context.Context, id int64) (*ModeloBaja, error)
}
