package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/asignaciones"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/patch"
)

func TestAsignacionCreateDeviceAlreadyAssigned(t *testing.T) {
	repo := &fakeAsignacionRepo{
		createFn: func(_ context.Context, _ repository.CreateAsignacion) (*repository.Asignacion, error) {
			return nil, &repository.AsignacionActivaError{IDAsignacion: 3, IDAbonado: 15}
		},
	}
	svc := NewAsignacionService(repo)

	_, err := svc.Create(context.Background(), dto.CreateRequest{IDAbonado: 8, IDDispositivo: 4})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 409, ae.HTTPStatus)
	// el mensaje nombra al abonado que ya tiene el dispositivo
	require.Contains(t, ae.Message, "abonado ID: 15")
}

func TestAsignacionCreateBadForeignKey(t *testing.T) {
	repo := &fakeAsignacionRepo{
		createFn: func(_ context.Context, _ repository.CreateAsignacion) (*repository.Asignacion, error) {
			return nil, &repository.ConstraintError{
				Kind:       repository.ConstraintForeignKey,
				Constraint: "asignaciones_id_abonado_fkey",
				Field:      "idAbonado",
			}
		},
	}
	svc := NewAsignacionService(repo)

	_, err := svc.Create(context.Background(), dto.CreateRequest{IDAbonado: 99, IDDispositivo: 4})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 400, ae.HTTPStatus)
}

func TestAsignacionCreateRaceConflictGenerico(t *testing.T) {
	// El índice parcial saltó pero la fila en conflicto ya no se pudo releer:
	// sigue siendo 409, sin inventar un abonado.
	repo := &fakeAsignacionRepo{
		createFn: func(_ context.Context, _ repository.CreateAsignacion) (*repository.Asignacion, error) {
			return nil, &repository.ConstraintError{
				Kind:       repository.ConstraintUnique,
				Constraint: "asignaciones_dispositivo_activa_idx",
			}
		},
	}
	svc := NewAsignacionService(repo)

	_, err := svc.Create(context.Background(), dto.CreateRequest{IDAbonado: 8, IDDispositivo: 4})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 409, ae.HTTPStatus)
	require.NotContains(t, ae.Message, "abonado ID")
}

func TestAsignacionUpdateDeviceAlreadyAssigned(t *testing.T) {
	repo := &fakeAsignacionRepo{
		updateFn: func(_ context.Context, _ int64, _ repository.AsignacionPatch) (*repository.Asignacion, error) {
			return nil, &repository.ConstraintError{
				Kind:       repository.ConstraintUnique,
				Constraint: "asignaciones_dispositivo_activa_idx",
			}
		},
	}
	svc := NewAsignacionService(repo)

	_, err := svc.Update(context.Background(), 3, dto.UpdateRequest{IDDispositivo: patch.Of(int64(4))})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 409, ae.HTTPStatus)
	require.Equal(t, "El dispositivo ya tiene una asignación activa.", ae.Message)
}

func TestAsignacionUpdateConflictNamesAbonado(t *testing.T) {
	repo := &fakeAsignacionRepo{
		updateFn: func(_ context.Context, _ int64, _ repository.AsignacionPatch) (*repository.Asignacion, error) {
			return nil, &repository.AsignacionActivaError{IDAsignacion: 9, IDAbonado: 21}
		},
	}
	svc := NewAsignacionService(repo)

	_, err := svc.Update(context.Background(), 3, dto.UpdateRequest{IDDispositivo: patch.Of(int64(4))})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 409, ae.HTTPStatus)
	require.Contains(t, ae.Message, "abonado ID: 21")
}

func TestAsignacionCreateDefaultsFechaProgramada(t *testing.T) {
	var got repository.CreateAsignacion
	repo := &fakeAsignacionRepo{
		createFn: func(_ context.Context, in repository.CreateAsignacion) (*repository.Asignacion, error) {
			got = in
			return &repository.Asignacion{ID: 1, IDAbonado: in.IDAbonado, IDDispositivo: in.IDDispositivo,
				FechaProgramada: in.FechaProgramada, Estado: repository.EstadoProgramada}, nil
		},
	}
	svc := NewAsignacionService(repo)

	out, err := svc.Create(context.Background(), dto.CreateRequest{IDAbonado: 8, IDDispositivo: 4})
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), got.FechaProgramada, 5*time.Second)
	require.Equal(t, repository.EstadoProgramada, out.Asignacion.Estado)
}

func TestAsignacionFinalizar(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeAsignacionRepo{
		finalizarFn: func(_ context.Context, id int64) (*repository.AsignacionCierre, error) {
			return &repository.AsignacionCierre{ID: id, Estado: repository.EstadoFinalizada, FechaFinReal: now}, nil
		},
	}
	svc := NewAsignacionService(repo)

	out, err := svc.Finalizar(context.Background(), 12)
	require.NoError(t, err)
	require.Equal(t, repository.EstadoFinalizada, out.Asignacion.Estado)
	require.Equal(t, now, out.Asignacion.FechaFinReal)
}

func TestAsignacionFinalizarTwiceIs404(t *testing.T) {
	calls := 0
	repo := &fakeAsignacionRepo{
		finalizarFn: func(_ context.Context, id int64) (*repository.AsignacionCierre, error) {
			calls++
			if calls == 1 {
				return &repository.AsignacionCierre{ID: id, Estado: repository.EstadoFinalizada, FechaFinReal: time.Now()}, nil
			}
			// el update condicional ya no matchea filas
			return nil, repository.ErrNotFound
		},
	}
	svc := NewAsignacionService(repo)

	_, err := svc.Finalizar(context.Background(), 12)
	require.NoError(t, err)

	_, err = svc.Finalizar(context.Background(), 12)
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.HTTPStatus)
	require.Equal(t, "Asignación no encontrada o ya estaba finalizada.", ae.Message)
}
