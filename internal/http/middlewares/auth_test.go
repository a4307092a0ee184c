package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/vigilia/internal/domain/roles"
	jwtx "github.com/dropDatabas3/vigilia/internal/jwt"
)

func okHandler(t *testing.T, sawClaims **jwtx.Claims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sawClaims != nil {
			*sawClaims = GetClaims(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthMissingToken(t *testing.T) {
	issuer := jwtx.NewIssuer("secreto", time.Hour)
	h := Chain(okHandler(t, nil), RequireAuth(issuer))

	for _, header := range []string{"", "Token abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		require.Contains(t, rec.Body.String(), "TOKEN_MISSING")
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	issuer := jwtx.NewIssuer("secreto", time.Hour)
	h := Chain(okHandler(t, nil), RequireAuth(issuer))

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestRequireAuthWrongSecret(t *testing.T) {
	good := jwtx.NewIssuer("secreto-bueno", time.Hour)
	bad := jwtx.NewIssuer("otro-secreto", time.Hour)
	token, _, err := bad.Issue(jwtx.Claims{ID: 1, Email: "a@b.c", Rol: roles.Administrador})
	require.NoError(t, err)

	h := Chain(okHandler(t, nil), RequireAuth(good))
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthPropagatesClaims(t *testing.T) {
	issuer := jwtx.NewIssuer("secreto", time.Hour)
	token, _, err := issuer.Issue(jwtx.Claims{ID: 42, Email: "ana@vigilia.cl", Rol: roles.AdministradorGeneral})
	require.NoError(t, err)

	var saw *jwtx.Claims
	h := Chain(okHandler(t, &saw), RequireAuth(issuer))
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, saw)
	require.Equal(t, int64(42), saw.ID)
	require.Equal(t, roles.AdministradorGeneral, saw.Rol)
}

func TestRequireRoleCaseInsensitive(t *testing.T) {
	issuer := jwtx.NewIssuer("secreto", time.Hour)
	// rol en minúsculas en el token, allow-list con capitalización de tabla
	token, _, err := issuer.Issue(jwtx.Claims{ID: 7, Email: "x@y.z", Rol: "administrador general"})
	require.NoError(t, err)

	h := Chain(okHandler(t, nil), RequireAuth(issuer), RequireRole(roles.AdministradorGeneral))
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidden(t *testing.T) {
	issuer := jwtx.NewIssuer("secreto", time.Hour)
	token, _, err := issuer.Issue(jwtx.Claims{ID: 7, Email: "x@y.z", Rol: roles.Tecnico})
	require.NoError(t, err)

	h := Chain(okHandler(t, nil), RequireAuth(issuer), RequireRole(roles.Administrador, roles.AdministradorGeneral))
	req := httptest.NewRequest(http.MethodGet, "/api/eventos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	// RequireRole sin RequireAuth adelante: 403, no panic.
	h := Chain(okHandler(t, nil), RequireRole(roles.Administrador))
	req := httptest.NewRequest(http.MethodGet, "/api/eventos", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}
