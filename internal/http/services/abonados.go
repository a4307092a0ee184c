package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dropDatabas3/vigilia/internal/audit"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/abonados"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/observability/logger"
)

type AbonadoService struct {
	repo repository.AbonadoRepository
}

func NewAbonadoService(repo repository.AbonadoRepository) *AbonadoService {
	return &AbonadoService{repo: repo}
}

func mapAbonadoConstraint(err error) error {
	if ce, ok := repository.AsConstraint(err); ok && ce.Kind == repository.ConstraintUnique && ce.Field == "rut" {
		return apperr.ErrConflict.WithMessage("El RUT proporcionado ya está siendo utilizado por otro abonado.")
	}
	return nil
}

func (s *AbonadoService) Create(ctx context.Context, in dto.CreateRequest) (*dto.SingleResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, apperr.ErrValidation.WithCause(err)
	}

	a, err := s.repo.Create(ctx, repository.CreateAbonado{
		RazonSocial:       strings.TrimSpace(in.RazonSocial),
		RUT:               strings.TrimSpace(in.RUT),
		ContactoPrincipal: strings.TrimSpace(in.ContactoPrincipal),
		TelefonoContacto:  strings.TrimSpace(in.TelefonoContacto),
		EmailContacto:     strings.TrimSpace(in.EmailContacto),
	})
	if err != nil {
		if mapped := mapAbonadoConstraint(err); mapped != nil {
			return nil, mapped
		}
		logger.From(ctx).Error("alta de abonado falló", logger.Err(err))
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "abonado_creado", logger.EntityID(a.ID))

	return &dto.SingleResponse{
		Message: "Abonado registrado exitosamente.",
		Abonado: dto.NewView(a),
	}, nil
}

func (s *AbonadoService) List(ctx context.Context) (*dto.ListResponse, error) {
	as, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.ListResponse{
		Message:  fmt.Sprintf("Se encontraron %d abonados.", len(as)),
		Total:    len(as),
		Abonados: dto.NewViews(as),
	}, nil
}

func (s *AbonadoService) Get(ctx context.Context, id int64) (*dto.SingleResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Abonado no encontrado.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.SingleResponse{
		Message: "Abonado encontrado exitosamente.",
		Abonado: dto.NewView(a),
	}, nil
}

func (s *AbonadoService) Update(ctx context.Context, id int64, in dto.UpdateRequest) (*dto.SingleResponse, error) {
	if in.IsEmpty() {
		return nil, apperr.ErrEmptyUpdate
	}

	a, err := s.repo.Update(ctx, id, repository.AbonadoPatch{
		RazonSocial:       in.RazonSocial,
		RUT:               in.RUT,
		ContactoPrincipal: in.ContactoPrincipal,
		TelefonoContacto:  in.TelefonoContacto,
		EmailContacto:     in.EmailContacto,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Abonado no encontrado para actualizar.")
		}
		if mapped := mapAbonadoConstraint(err); mapped != nil {
			return nil, mapped
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "abonado_actualizado", logger.EntityID(id))

	return &dto.SingleResponse{
		Message: fmt.Sprintf("Abonado (ID: %d) ha sido actualizado exitosamente.", id),
		Abonado: dto.NewView(a),
	}, nil
}

func (s *AbonadoService) Baja(ctx context.Context, id int64) (*dto.BajaResponse, error) {
	b, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Abonado no encontrado o ya estaba inactivo.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "abonado_desactivado", logger.EntityID(id))

	return &dto.BajaResponse{
		Message: fmt.Sprintf("Abonado (ID: %d) ha sido desactivado (borrado lógico) exitosamente.", id),
		Abonado: dto.BajaView{ID: b.ID, RazonSocial: b.RazonSocial, Activo: b.Activo},
	}, nil
}
