package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dropDatabas3/vigilia/internal/cache"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/metadata"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
)

const metadataCacheKey = "metadata:catalogos"

type MetadataService struct {
	repo  repository.MetadataRepository
	cache cache.Cache // nil = sin cache
	ttl   time.Duration
}

func NewMetadataService(repo repository.MetadataRepository, c cache.Cache, ttl time.Duration) *MetadataService {
	return &MetadataService{repo: repo, cache: c, ttl: ttl}
}

// Metadata devuelve los catálogos de roles y sectores para los formularios
// de registro. Los catálogos solo cambian por migración, así que se sirven
// desde cache cuando hay una configurada.
func (s *MetadataService) Metadata(ctx context.Context) (*dto.Response, error) {
	if s.cache != nil {
		if b, ok := s.cache.Get(metadataCacheKey); ok {
			var resp dto.Response
			if err := json.Unmarshal(b, &resp); err == nil {
				return &resp, nil
			}
			s.cache.Delete(metadataCacheKey)
		}
	}

	roles, err := s.repo.Roles(ctx)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}
	sectores, err := s.repo.Sectores(ctx)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}
	resp := &dto.Response{
		Message:  "Metadata obtenida exitosamente.",
		Roles:    dto.NewRoles(roles),
		Sectores: dto.NewSectores(sectores),
	}
	if s.cache != nil {
		if b, err := json.Marshal(resp); err == nil {
			s.cache.Set(metadataCacheKey, b, s.ttl)
		}
	}
	return resp, nil
}

// Status reporta el estado del servicio y la conectividad con la base.
func (s *MetadataService) Status(ctx context.Context) *dto.StatusResponse {
	db := "ok"
	if err := s.repo.Ping(ctx); err != nil {
		db = "unavailable"
	}
	return &dto.StatusResponse{
		Message:  "API de gestión de seguridad electrónica operativa.",
		Service:  "vigilia",
		Database: db,
	}
}
