package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dropDatabas3/vigilia/internal/audit"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/usuarios"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/observability/logger"
	"github.com/dropDatabas3/vigilia/internal/patch"
	"github.com/dropDatabas3/vigilia/internal/security/password"
)

type UsuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) *UsuarioService {
	return &UsuarioService{repo: repo}
}

func mapUsuarioConstraint(err error) error {
	if ce, ok := repository.AsConstraint(err); ok {
		if ce.Kind == repository.ConstraintUnique && ce.Field == "email" {
			return apperr.ErrConflict.WithMessage("El Email proporcionado ya está registrado.")
		}
		if ce.Kind == repository.ConstraintForeignKey {
			return apperr.ErrValidation.WithMessage("El ID de Sector o Rol proporcionado no existe.")
		}
	}
	return nil
}

func (s *UsuarioService) Register(ctx context.Context, in dto.RegisterRequest) (*dto.SingleResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, apperr.ErrValidation.WithCause(err)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}

	u, err := s.repo.Create(ctx, repository.CreateUsuario{
		Nombre:       strings.TrimSpace(in.Nombre),
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		PasswordHash: hash,
		Telefono:     strings.TrimSpace(in.Telefono),
		IDSector:     in.IDSector,
		IDRol:        in.IDRol,
	})
	if err != nil {
		if mapped := mapUsuarioConstraint(err); mapped != nil {
			return nil, mapped
		}
		logger.From(ctx).Error("registro de usuario falló", logger.Err(err))
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "usuario_creado", logger.EntityID(u.ID), logger.Email(u.Email))

	return &dto.SingleResponse{
		Message: "Usuario registrado exitosamente.",
		Usuario: dto.NewView(u),
	}, nil
}

func (s *UsuarioService) List(ctx context.Context, soloActivos bool) (*dto.ListResponse, error) {
	us, err := s.repo.List(ctx, soloActivos)
	if err != nil {
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.ListResponse{
		Message:  fmt.Sprintf("Se encontraron %d usuarios.", len(us)),
		Total:    len(us),
		Usuarios: dto.NewViews(us),
	}, nil
}

func (s *UsuarioService) Get(ctx context.Context, id int64) (*dto.SingleResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Usuario no encontrado.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}
	return &dto.SingleResponse{
		Message: "Usuario encontrado exitosamente.",
		Usuario: dto.NewView(u),
	}, nil
}

func (s *UsuarioService) Update(ctx context.Context, id int64, in dto.UpdateRequest) (*dto.SingleResponse, error) {
	if in.IsEmpty() {
		return nil, apperr.ErrEmptyUpdate
	}

	p := repository.UsuarioPatch{
		Nombre:   in.Nombre,
		Telefono: in.Telefono,
		IDSector: in.IDSector,
		IDRol:    in.IDRol,
	}
	if in.IDRol.Set && (!in.IDRol.Valid || in.IDRol.Value < 1) {
		return nil, apperr.ErrValidation.WithMessage("ID_Rol debe ser un número válido.")
	}
	if in.IDSector.Set && in.IDSector.Valid && in.IDSector.Value < 1 {
		return nil, apperr.ErrValidation.WithMessage("ID_Sector debe ser un número válido.")
	}
	if in.Password.Set {
		if !in.Password.Valid || len(in.Password.Value) < 8 {
			return nil, apperr.ErrValidation.WithMessage("La contraseña debe tener al menos 8 caracteres.")
		}
		hash, err := password.Hash(in.Password.Value)
		if err != nil {
			return nil, apperr.ErrInternal.WithCause(err)
		}
		p.PasswordHash = patch.Of(hash)
	}

	u, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Usuario no encontrado para actualizar.")
		}
		if mapped := mapUsuarioConstraint(err); mapped != nil {
			return nil, mapped
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "usuario_actualizado", logger.EntityID(id))

	return &dto.SingleResponse{
		Message: fmt.Sprintf("Usuario (ID: %d) ha sido actualizado exitosamente.", id),
		Usuario: dto.NewView(u),
	}, nil
}

func (s *UsuarioService) Baja(ctx context.Context, id int64) (*dto.BajaResponse, error) {
	b, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNotFound.WithMessage("Usuario no encontrado o ya estaba inactivo.")
		}
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "usuario_desactivado", logger.EntityID(id))

	return &dto.BajaResponse{
		Message: fmt.Sprintf("Usuario (ID: %d) ha sido desactivado (borrado lógico) exitosamente.", id),
		Usuario: dto.BajaView{ID: b.ID, Nombre: b.Nombre, Email: b.Email, Activo: b.Activo},
	}, nil
}
