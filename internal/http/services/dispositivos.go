package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dropDatabas3/vigilia/internal/audit"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/dispositivos"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/observability/logger"
)

type DispositivoService struct {
	repo repository.DispositivoRepository
}

func NewDispositivoService(repo repository.DispositivoRepository) *DispositivoService {
	return &DispositivoService{repo: repo}
}

func mapDispositivoConstraint(err error) error {
	if ce, ok := repository.AsConstraint(err); ok {
		if ce.Kind == repository.ConstraintUnique && ce.Field == "serie" {
			return apperr.ErrConflict.WithMessage("La Serie proporcionada ya está siendo utilizada por otro dispositivo.")
		}
		if ce.Kind == repository.ConstraintForeignKey && ce.Field == "idModelo" {
			return apperr.ErrValidation.WithMessage("El ID de Modelo proporcionado no existe.")
		}
	}
	return nil
}

func (s *DispositivoService) Create(ctx context.Context, in dto.CreateRequest) (*dto.SingleResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, apperr.ErrValidation.WithCause(err)
	}

	d, err := s.repo.Create(ctx, repository.CreateDispositivo{
		IDModelo:          in.IDModelo,
		Serie:             strings.TrimSpace(in.Serie),
		NombreDispositivo: strings.TrimSpace(in.NombreDispositivo),
		Ubicacion:         strings.TrimSpace(in.Ubicacion),
		FechaInstalacion:  in.FechaInstalacion,
	})
	if err != nil {
		if mapped := mapDispositivoConstraint(err); mapped != nil {
			return nil, mapped
		}
		logger.From(ctx).Error("alta de dispositivo falló", logger.Err(err))
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "dispositivo_creado", logger.EntityID(d.ID))

	return &dto.SingleResponse{
		Message:     "Dispositivo registrado exitosamente.",
		Dispositivo: dto.NewView(d),
	}, nil
}

func (s *DispositivoService) List(ctx context.Context) (*dto.ListResponse, error) {
	ds, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.ListResponse{
		Message:      fmt.Sprintf("Se encontraron %d dispositivos.", len(ds)),
		Total:        len(ds),
		Dispositivos: dto.NewViews(ds),
	}, nil
}

func (s *DispositivoService) Get(ctx context.Context, id int64) (*dto.SingleResponse, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Dispositivo no encontrado.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.SingleResponse{
		Message:     "Dispositivo encontrado exitosamente.",
		Dispositivo: dto.NewView(d),
	}, nil
}

func (s *DispositivoService) Update(ctx context.Context, id int64, in dto.UpdateRequest) (*dto.SingleResponse, error) {
	if in.IsEmpty() {
		return nil, apperr.ErrEmptyUpdate
	}
	if in.IDModelo.Set && (!in.IDModelo.Valid || in.IDModelo.Value < 1) {
		return nil, apperr.ErrValidation.WithMessage("ID_Modelo debe ser un número válido.")
	}

	d, err := s.repo.Update(ctx, id, repository.DispositivoPatch{
		IDModelo:          in.IDModelo,
		Serie:             in.Serie,
		NombreDispositivo: in.NombreDispositivo,
		Ubicacion:         in.Ubicacion,
		FechaInstalacion:  in.FechaInstalacion,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Dispositivo no encontrado para actualizar.")
		}
		if mapped := mapDispositivoConstraint(err); mapped != nil {
			return nil, mapped
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "dispositivo_actualizado", logger.EntityID(id))

	return &dto.SingleResponse{
		Message:     fmt.Sprintf("Dispositivo (ID: %d) ha sido actualizado exitosamente.", id),
		Dispositivo: dto.NewView(d),
	}, nil
}

func (s *DispositivoService) Baja(ctx context.Context, id int64) (*dto.BajaResponse, error) {
	b, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Dispositivo no encontrado o ya estaba inactivo.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "dispositivo_desactivado", logger.EntityID(id))

	return &dto.BajaResponse{
		Message:     fmt.Sprintf("Dispositivo (ID: %d) ha sido desactivado (borrado lógico) exitosamente.", id),
		Dispositivo: dto.BajaView{ID: b.ID, NombreDispositivo: b.NombreDispositivo, Serie: b.Serie, Activo: b.Activo},
	}, nil
}
