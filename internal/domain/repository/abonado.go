package repository

import (
	"context"
	"time"

	"github.com/dropDatabas3/vigilia/internal/patch"
)

// Abonado es la organización suscriptora dueña de dispositivos.
type Abonado struct {
	ID                int64
	RazonSocial       string
	RUT               string
	ContactoPrincipal string
	TelefonoContacto  string
	EmailContacto     string
	FechaAlta         time.Time
	Activo            bool
}

type CreateAbonado struct {
	RazonSocial       string
	RUT               string
	ContactoPrincipal string
	TelefonoContacto  string
	EmailContacto     string
}

type AbonadoPatch struct {
	RazonSocial       patch.Field[string]
	RUT               patch.Field[string]
	ContactoPrincipal patch.Field[string]
	TelefonoContacto  patch.Field[string]
	EmailContacto     patch.Field[string]
}

func (p AbonadoPatch) IsEmpty() bool {
	return !p.RazonSocial.Set && !p.RUT.Set && !p.ContactoPrincipal.Set &&
		!p.TelefonoContacto.Set && !p.EmailContacto.Set
}

type AbonadoBaja struct {
	ID          int64
	RazonSocial string
	Activo      bool
}

type AbonadoRepository interface {
	Create(ctx context.Context, in CreateAbonado) (*Abonado, error)
	List(ctx context.Context) ([]Abonado, error)
	GetByID(ctx context.Context, id int64) (*Abonado, error)
	Update(ctx context.Context, id int64, p AbonadoPatch) (*Abonado, error)
	SoftDelete(ctx context.Context, id int64) (*AbonadoBaja, error)
}
