package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dropDatabas3/vigilia/internal/audit"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/asignaciones"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/observability/logger"
)

type AsignacionService struct {
	repo repository.AsignacionRepository
}

func NewAsignacionService(repo repository.AsignacionRepository) *AsignacionService {
	return &AsignacionService{repo: repo}
}

func mapAsignacionError(err error) error {
	var activa *repository.AsignacionActivaError
	if errors.As(err, &activa) {
		return apperr.ErrConflict.WithMessage(
			"El dispositivo ya tiene una asignación activa (abonado ID: %d).", activa.IDAbonado)
	}
	if ce, ok := repository.AsConstraint(err); ok {
		switch ce.Kind {
		case repository.ConstraintForeignKey:
			return apperr.ErrValidation.WithMessage("El ID de Abonado o el ID de Dispositivo no existen.")
		case repository.ConstraintUnique:
			// El índice parcial del dispositivo activo saltó pero no se pudo
			// releer la fila en conflicto: 409 genérico, sin nombrar abonado.
			return apperr.ErrConflict.WithMessage("El dispositivo ya tiene una asignación activa.")
		}
	}
	return nil
}

func (s *AsignacionService) Create(ctx context.Context, in dto.CreateRequest) (*dto.SingleResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, apperr.ErrValidation.WithCause(err)
	}

	fecha := time.Now().UTC()
	if in.FechaProgramada != nil {
		fecha = *in.FechaProgramada
	}

	a, err := s.repo.Create(ctx, repository.CreateAsignacion{
		IDAbonado:       in.IDAbonado,
		IDDispositivo:   in.IDDispositivo,
		FechaProgramada: fecha,
	})
	if err != nil {
		if mapped := mapAsignacionError(err); mapped != nil {
			return nil, mapped
		}
		logger.From(ctx).Error("alta de asignación falló", logger.Err(err))
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "asignacion_creada", logger.EntityID(a.ID))

	return &dto.SingleResponse{
		Message:    "Dispositivo asignado exitosamente.",
		Asignacion: dto.NewView(a),
	}, nil
}

func (s *AsignacionService) List(ctx context.Context) (*dto.ListResponse, error) {
	as, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.ListResponse{
		Message:      fmt.Sprintf("Se encontraron %d asignaciones.", len(as)),
		Total:        len(as),
		Asignaciones: dto.NewViews(as),
	}, nil
}

func (s *AsignacionService) Get(ctx context.Context, id int64) (*dto.SingleResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Asignación no encontrada.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.SingleResponse{
		Message:    "Asignación encontrada exitosamente.",
		Asignacion: dto.NewView(a),
	}, nil
}

func (s *AsignacionService) Update(ctx context.Context, id int64, in dto.UpdateRequest) (*dto.SingleResponse, error) {
	if in.IsEmpty() {
		return nil, apperr.ErrEmptyUpdate
	}

	a, err := s.repo.Update(ctx, id, repository.AsignacionPatch{
		IDAbonado:       in.IDAbonado,
		IDDispositivo:   in.IDDispositivo,
		FechaProgramada: in.FechaProgramada,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Asignación no encontrada para actualizar.")
		}
		if mapped := mapAsignacionError(err); mapped != nil {
			return nil, mapped
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "asignacion_actualizada", logger.EntityID(id))

	return &dto.SingleResponse{
		Message:    fmt.Sprintf("Asignación (ID: %d) ha sido actualizada exitosamente.", id),
		Asignacion: dto.NewView(a),
	}, nil
}

// Finalizar cierra la asignación: estado Finalizada + fecha de fin real.
// Repetir la llamada sobre una asignación ya finalizada devuelve 404, igual
// que con un ID inexistente: la transición solo gana una vez.
func (s *AsignacionService) Finalizar(ctx context.Context, id int64) (*dto.CierreResponse, error) {
	c, err := s.repo.Finalizar(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Asignación no encontrada o ya estaba finalizada.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "asignacion_finalizada", logger.EntityID(id))

	return &dto.CierreResponse{
		Message:    fmt.Sprintf("Asignación (ID: %d) ha sido finalizada exitosamente.", id),
		Asignacion: dto.CierreView{ID: c.ID, Estado: c.Estado, FechaFinReal: c.FechaFinReal},
	}, nil
}
