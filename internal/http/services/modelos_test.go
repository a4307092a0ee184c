package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/modelos"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
)

func TestModeloCreateDuplicado(t *testing.T) {
	repo := &fakeModeloRepo{
		createFn: func(_ context.Context, _ repository.CreateModelo) (*repository.ModeloDispositivo, error) {
			return nil, &repository.ConstraintError{
				Kind:       repository.ConstraintUnique,
				Constraint: "modelos_nombre_fabricante_key",
				Field:      "nombreModelo",
			}
		},
	}
	svc := NewModeloService(repo)

	_, err := svc.Create(context.Background(), dto.CreateRequest{
		NombreModelo: "DSC-1832", Fabricante: "DSC", TipoDispositivo: "Panel",
	})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 409, ae.HTTPStatus)
	require.Equal(t, "El NombreModelo ya está registrado para ese fabricante.", ae.Message)
}

func TestModeloCreateDuplicadoSinFabricante(t *testing.T) {
	// En el esquema el UNIQUE es NULLS NOT DISTINCT: dos modelos con el mismo
	// nombre y sin fabricante también chocan, y el choque sale como 409.
	var got repository.CreateModelo
	repo := &fakeModeloRepo{
		createFn: func(_ context.Context, in repository.CreateModelo) (*repository.ModeloDispositivo, error) {
			got = in
			return nil, &repository.ConstraintError{
				Kind:       repository.ConstraintUnique,
				Constraint: "modelos_nombre_fabricante_key",
				Field:      "nombreModelo",
			}
		},
	}
	svc := NewModeloService(repo)

	_, err := svc.Create(context.Background(), dto.CreateRequest{
		NombreModelo: "DSC-1832", TipoDispositivo: "Panel",
	})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 409, ae.HTTPStatus)
	require.Empty(t, got.Fabricante)
}
