package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	"github.com/dropDatabas3/vigilia/internal/http/controllers"
	"github.com/dropDatabas3/vigilia/internal/http/services"
	jwtx "github.com/dropDatabas3/vigilia/internal/jwt"
	"github.com/dropDatabas3/vigilia/internal/rate"
)

type routerUsuarioRepo struct{}

func (routerUsuarioRepo) Create(context.Context, repository.CreateUsuario) (*repository.Usuario, error) {
	return nil, repository.ErrConflict
}
func (routerUsuarioRepo) List(context.Context, bool) ([]repository.Usuario, error) {
	return []repository.Usuario{}, nil
}
func (routerUsuarioRepo) GetByID(context.Context, int64) (*repository.Usuario, error) {
	return nil, repository.ErrNotFound
}
func (routerUsuarioRepo) GetByEmailForAuth(context.Context, string) (*repository.UsuarioAuth, error) {
	return nil, repository.ErrNotFound
}
func (routerUsuarioRepo) Update(context.Context, int64, repository.UsuarioPatch) (*repository.Usuario, error) {
	return nil, repository.ErrNotFound
}
func (routerUsuarioRepo) SoftDelete(context.Context, int64) (*repository.UsuarioBaja, error) {
	return nil, repository.ErrNotFound
}

type routerEventoRepo struct{}

func (routerEventoRepo) Create(context.Context, repository.CreateEvento) (*repository.Evento, error) {
	return nil, repository.ErrNotFound
}
func (routerEventoRepo) List(context.Context) ([]repository.Evento, error) {
	return []repository.Evento{}, nil
}
func (routerEventoRepo) ListByDispositivo(context.Context, int64) ([]repository.Evento, error) {
	return []repository.Evento{}, nil
}

type routerMetadataRepo struct{}

func (routerMetadataRepo) Roles(context.Context) ([]repository.Rol, error) {
	return []repository.Rol{{ID: 1, NombreRol: "Administrador General"}}, nil
}
func (routerMetadataRepo) Sectores(context.Context) ([]repository.Sector, error) {
	return []repository.Sector{}, nil
}
func (routerMetadataRepo) Ping(context.Context) error { return nil }

func newTestRouter(t *testing.T, limiter rate.Limiter) (http.Handler, *jwtx.Issuer) {
	t.Helper()
	issuer := jwtx.NewIssuer("router-test-secret", time.Hour)
	usuarios := routerUsuarioRepo{}

	return New(Deps{
		Issuer:       issuer,
		LoginLimiter: limiter,
		Auth:         controllers.NewAuthController(services.NewAuthService(usuarios, issuer)),
		Usuarios:     controllers.NewUsuarioController(services.NewUsuarioService(usuarios)),
		Eventos:      controllers.NewEventoController(services.NewEventoService(routerEventoRepo{})),
		Metadata:     controllers.NewMetadataController(services.NewMetadataService(routerMetadataRepo{}, nil, 0)),
		Ready:        func(context.Context) error { return nil },
	}), issuer
}

func token(t *testing.T, issuer *jwtx.Issuer, rol string) string {
	t.Helper()
	raw, _, err := issuer.Issue(jwtx.Claims{ID: 7, Email: "ops@vigilia.cl", Rol: rol})
	require.NoError(t, err)
	return raw
}

func do(h http.Handler, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRutasPublicas(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "").Code)
	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/readyz", "").Code)
	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/metrics", "").Code)

	rec := do(h, http.MethodGet, "/api/metadata", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Roles []struct {
			NombreRol string `json:"nombreRol"`
		} `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Roles, 1)

	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/status", "").Code)
}

func TestRutasProtegidasExigenToken(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	for _, path := range []string{"/api/usuarios/", "/api/eventos/"} {
		rec := do(h, http.MethodGet, path, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
		require.Contains(t, rec.Body.String(), "TOKEN_MISSING")
	}
}

func TestGatingPorRol(t *testing.T) {
	h, issuer := newTestRouter(t, nil)

	// Usuarios: solo el administrador general.
	rec := do(h, http.MethodGet, "/api/usuarios/", token(t, issuer, "Administrador"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(h, http.MethodGet, "/api/usuarios/", token(t, issuer, "Administrador General"))
	require.Equal(t, http.StatusOK, rec.Code)

	// Eventos: cualquier administrador; un técnico no.
	rec = do(h, http.MethodGet, "/api/eventos/", token(t, issuer, "Administrador"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/eventos/", token(t, issuer, "Técnico"))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginConRateLimit(t *testing.T) {
	h, _ := newTestRouter(t, rate.NewMemoryLimiter(1, time.Minute))

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login",
			strings.NewReader(`{"email":"x@vigilia.cl","password":"loquesea1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.0.0.9:55000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusUnauthorized, post().Code)

	rec := post()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}
