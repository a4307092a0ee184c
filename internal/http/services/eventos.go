package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dropDatabas3/vigilia/internal/audit"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/eventos"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/observability/logger"
)

type EventoService struct {
	repo repository.EventoRepository
}

func NewEventoService(repo repository.EventoRepository) *EventoService {
	return &EventoService{repo: repo}
}

func (s *EventoService) Create(ctx context.Context, in dto.CreateRequest) (*dto.SingleResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, apperr.ErrValidation.WithCause(err)
	}

	ev, err := s.repo.Create(ctx, repository.CreateEvento{
		IDDispositivo:   in.IDDispositivo,
		TipoEvento:      strings.TrimSpace(in.TipoEvento),
		Descripcion:     strings.TrimSpace(in.Descripcion),
		NivelCriticidad: in.NivelCriticidad,
	})
	if err != nil {
		if ce, ok := repository.AsConstraint(err); ok && ce.Kind == repository.ConstraintForeignKey {
			return nil, apperr.ErrValidation.WithMessage("El ID de Dispositivo proporcionado no existe.")
		}
		logger.From(ctx).Error("registro de evento falló", logger.Err(err))
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "evento_registrado",
		logger.EntityID(ev.ID),
		zap.String("nivel_criticidad", ev.NivelCriticidad),
	)

	return &dto.SingleResponse{
		Message: "Evento registrado exitosamente.",
		Evento:  dto.NewView(ev),
	}, nil
}

func (s *EventoService) List(ctx context.Context) (*dto.ListResponse, error) {
	es, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.ListResponse{
		Message: fmt.Sprintf("Se encontraron %d eventos.", len(es)),
		Total:   len(es),
		Eventos: dto.NewViews(es),
	}, nil
}

// ListByDispositivo devuelve el historial del dispositivo. Un dispositivo
// sin eventos responde lista vacía, no 404.
func (s *EventoService) ListByDispositivo(ctx context.Context, idDispositivo int64) (*dto.ListResponse, error) {
	es, err := s.repo.ListByDispositivo(ctx, idDispositivo)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.ListResponse{
		Message: fmt.Sprintf("Se encontraron %d eventos para el dispositivo %d.", len(es), idDispositivo),
		Total:   len(es),
		Eventos: dto.NewViews(es),
	}, nil
}
