// Package services contiene la lógica de negocio entre controllers y
// repositorios. Los services devuelven *errors.AppError listos para el wire;
// los controllers solo deserializan, delegan y escriben.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dropDatabas3/vigilia/internal/audit"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dtoauth "github.com/dropDatabas3/vigilia/internal/http/dto/auth"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	jwtx "github.com/dropDatabas3/vigilia/internal/jwt"
	"github.com/dropDatabas3/vigilia/internal/observability/logger"
	"github.com/dropDatabas3/vigilia/internal/security/password"
)

type AuthService struct {
	usuarios repository.UsuarioRepository
	issuer   *jwtx.Issuer
}

func NewAuthService(usuarios repository.UsuarioRepository, issuer *jwtx.Issuer) *AuthService {
	return &AuthService{usuarios: usuarios, issuer: issuer}
}

// Login autentica email+password y emite el token de sesión.
//
// Email inexistente y contraseña incorrecta devuelven exactamente el mismo
// 401 "Credenciales inválidas.": la respuesta no revela cuál de los dos
// falló. El usuario inactivo sí se distingue, pero recién después de
// encontrar la cuenta.
func (s *AuthService) Login(ctx context.Context, in dtoauth.LoginRequest) (*dtoauth.LoginResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth"),
		logger.Op("Login"),
	)

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" {
		return nil, apperr.ErrValidation.WithMessage("Email y contraseña son obligatorios.")
	}

	u, err := s.usuarios.GetByEmailForAuth(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("login rechazado", logger.Email(in.Email))
			return nil, apperr.ErrInvalidCredentials
		}
		log.Error("login lookup falló", logger.Err(err))
		return nil, apperr.ErrInternal.WithCause(err)
	}

	if !u.Activo {
		log.Info("login de usuario inactivo", logger.UserID(u.ID))
		return nil, apperr.ErrUserInactive
	}

	if !password.Verify(u.PasswordHash, in.Password) {
		log.Info("login rechazado", logger.UserID(u.ID))
		return nil, apperr.ErrInvalidCredentials
	}

	token, _, err := s.issuer.Issue(jwtx.Claims{ID: u.ID, Email: u.Email, Rol: u.NombreRol})
	if err != nil {
		log.Error("emisión de token falló", logger.Err(err))
		return nil, apperr.ErrInternal.WithCause(err)
	}

	audit.Log(ctx, "login_ok", logger.UserID(u.ID), logger.Email(u.Email), logger.Rol(u.NombreRol))

	return &dtoauth.LoginResponse{
		Message: "Inicio de sesión exitoso. Token generado.",
		Token:   token,
		User: dtoauth.UserView{
			ID:     u.ID,
			Nombre: u.Nombre,
			Rol:    u.NombreRol,
			Email:  u.Email,
			Activo: u.Activo,
		},
	}, nil
}
