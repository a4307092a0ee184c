package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dropDatabas3/vigilia/internal/audit"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/modelos"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/observability/logger"
)

type ModeloService struct {
	repo repository.ModeloRepository
}

func NewModeloService(repo repository.ModeloRepository) *ModeloService {
	return &ModeloService{repo: repo}
}

func mapModeloConstraint(err error) error {
	if ce, ok := repository.AsConstraint(err); ok && ce.Kind == repository.ConstraintUnique {
		return apperr.ErrConflict.WithMessage("El NombreModelo ya está registrado para ese fabricante.")
	}
	return nil
}

func (s *ModeloService) Create(ctx context.Context, in dto.CreateRequest) (*dto.SingleResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, apperr.ErrValidation.WithCause(err)
	}

	m, err := s.repo.Create(ctx, repository.CreateModelo{
		NombreModelo:    strings.TrimSpace(in.NombreModelo),
		Fabricante:      strings.TrimSpace(in.Fabricante),
		TipoDispositivo: strings.TrimSpace(in.TipoDispositivo),
	})
	if err != nil {
		if mapped := mapModeloConstraint(err); mapped != nil {
			return nil, mapped
		}
		logger.From(ctx).Error("alta de modelo falló", logger.Err(err))
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "modelo_creado", logger.EntityID(m.ID))

	return &dto.SingleResponse{
		Message: "Modelo registrado exitosamente.",
		Modelo:  dto.NewView(m),
	}, nil
}

func (s *ModeloService) List(ctx context.Context) (*dto.ListResponse, error) {
	ms, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.ListResponse{
		Message: fmt.Sprintf("Se encontraron %d modelos.", len(ms)),
		Total:   len(ms),
		Modelos: dto.NewViews(ms),
	}, nil
}

func (s *ModeloService) Get(ctx context.Context, id int64) (*dto.SingleResponse, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Modelo no encontrado.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.SingleResponse{
		Message: "Modelo encontrado exitosamente.",
		Modelo:  dto.NewView(m),
	}, nil
}

func (s *ModeloService) Update(ctx context.Context, id int64, in dto.UpdateRequest) (*dto.SingleResponse, error) {
	if in.IsEmpty() {
		return nil, apperr.ErrEmptyUpdate
	}

	m, err := s.repo.Update(ctx, id, repository.ModeloPatch{
		NombreModelo:    in.NombreModelo,
		Fabricante:      in.Fabricante,
		TipoDispositivo: in.TipoDispositivo,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Modelo no encontrado para actualizar.")
		}
		if mapped := mapModeloConstraint(err); mapped != nil {
			return nil, mapped
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "modelo_actualizado", logger.EntityID(id))

	return &dto.SingleResponse{
		Message: fmt.Sprintf("Modelo (ID: %d) ha sido actualizado exitosamente.", id),
		Modelo:  dto.NewView(m),
	}, nil
}

// Baja desactiva el modelo sin tocar los dispositivos que lo referencian:
// un modelo inactivo deja de ofrecerse para equipos nuevos pero el parque
// instalado conserva su ficha técnica.
func (s *ModeloService) Baja(ctx context.Context, id int64) (*dto.BajaResponse, error) {
	b, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Modelo no encontrado o ya estaba inactivo.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "modelo_desactivado", logger.EntityID(id))

	return &dto.BajaResponse{
		Message: fmt.Sprintf("Modelo (ID: %d) ha sido desactivado (borrado lógico) exitosamente.", id),
		Modelo:  dto.BajaView{ID: b.ID, NombreModelo: b.NombreModelo, Activo: b.Activo},
	}, nil
}
