package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	dto "github.com/dropDatabas3/vigilia/internal/http/dto/usuarios"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/patch"
)

func TestUsuarioUpdateEmptyPatch(t *testing.T) {
	svc := NewUsuarioService(&fakeUsuarioRepo{})

	_, err := svc.Update(context.Background(), 1, dto.UpdateRequest{})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 400, ae.HTTPStatus)
	require.Equal(t, "Se requiere al menos un campo para actualizar.", ae.Message)
}

func TestUsuarioUpdateHashesPassword(t *testing.T) {
	repo := &fakeUsuarioRepo{
		updateFn: func(_ context.Context, id int64, p repository.UsuarioPatch) (*repository.Usuario, error) {
			return &repository.Usuario{ID: id, Nombre: "Ana"}, nil
		},
	}
	svc := NewUsuarioService(repo)

	_, err := svc.Update(context.Background(), 7, dto.UpdateRequest{
		Password: patch.Of("nueva-clave-123"),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastPatch)
	require.True(t, repo.lastPatch.PasswordHash.Set)
	// al repo llega el hash, nunca el texto plano
	require.NotEqual(t, "nueva-clave-123", repo.lastPatch.PasswordHash.Value)
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.lastPatch.PasswordHash.Value), []byte("nueva-clave-123")))
}

func TestUsuarioUpdateRejectsShortPassword(t *testing.T) {
	svc := NewUsuarioService(&fakeUsuarioRepo{})

	_, err := svc.Update(context.Background(), 7, dto.UpdateRequest{
		Password: patch.Of("corta"),
	})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 400, ae.HTTPStatus)
}

func TestUsuarioUpdateKeepsFalsyFields(t *testing.T) {
	repo := &fakeUsuarioRepo{
		updateFn: func(_ context.Context, id int64, p repository.UsuarioPatch) (*repository.Usuario, error) {
			return &repository.Usuario{ID: id}, nil
		},
	}
	svc := NewUsuarioService(repo)

	// telefono "" es un valor legítimo, no un campo ausente
	_, err := svc.Update(context.Background(), 7, dto.UpdateRequest{
		Telefono: patch.Of(""),
	})
	require.NoError(t, err)
	require.True(t, repo.lastPatch.Telefono.Set)
	require.Equal(t, "", repo.lastPatch.Telefono.Value)
}

func TestUsuarioUpdateNotFound(t *testing.T) {
	repo := &fakeUsuarioRepo{
		updateFn: func(_ context.Context, _ int64, _ repository.UsuarioPatch) (*repository.Usuario, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewUsuarioService(repo)

	_, err := svc.Update(context.Background(), 999, dto.UpdateRequest{
		Nombre: patch.Of("Nadie"),
	})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.HTTPStatus)
}

func TestUsuarioRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUsuarioRepo{
		createFn: func(_ context.Context, _ repository.CreateUsuario) (*repository.Usuario, error) {
			return nil, &repository.ConstraintError{
				Kind:       repository.ConstraintUnique,
				Constraint: "usuarios_email_key",
				Field:      "email",
			}
		},
	}
	svc := NewUsuarioService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nombre: "Ana", Email: "ana@vigilia.cl", Password: "secreta123", IDRol: 2,
	})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 409, ae.HTTPStatus)
	require.Equal(t, "El Email proporcionado ya está registrado.", ae.Message)
}

func TestUsuarioRegisterBadForeignKey(t *testing.T) {
	repo := &fakeUsuarioRepo{
		createFn: func(_ context.Context, _ repository.CreateUsuario) (*repository.Usuario, error) {
			return nil, &repository.ConstraintError{
				Kind:       repository.ConstraintForeignKey,
				Constraint: "usuarios_id_rol_fkey",
				Field:      "idRol",
			}
		},
	}
	svc := NewUsuarioService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nombre: "Ana", Email: "ana@vigilia.cl", Password: "secreta123", IDRol: 99,
	})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 400, ae.HTTPStatus)
	require.Equal(t, "El ID de Sector o Rol proporcionado no existe.", ae.Message)
}

func TestUsuarioRegisterValidation(t *testing.T) {
	svc := NewUsuarioService(&fakeUsuarioRepo{})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nombre: "Ana", Email: "no-es-email", Password: "secreta123", IDRol: 1,
	})
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 400, ae.HTTPStatus)
	require.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestUsuarioBajaAlreadyInactive(t *testing.T) {
	repo := &fakeUsuarioRepo{
		softDelFn: func(_ context.Context, _ int64) (*repository.UsuarioBaja, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewUsuarioService(repo)

	_, err := svc.Baja(context.Background(), 7)
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.HTTPStatus)
	require.Equal(t, "Usuario no encontrado o ya estaba inactivo.", ae.Message)
}
