package middlewares

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/vigilia/internal/http/errors"
	jwtx "github.com/dropDatabas3/vigilia/internal/jwt"
)

// RequireAuth valida Authorization: Bearer <JWT> y guarda las claims en el
// contexto. Token ausente o inválido responde 401; un token expirado recibe
// el mismo 401 que uno corrupto.
func RequireAuth(issuer *jwtx.Issuer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := strings.TrimSpace(r.Header.Get("Authorization"))
			if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
				errors.WriteError(w, errors.ErrTokenMissing)
				return
			}
			raw := strings.TrimSpace(ah[len("Bearer "):])

			claims, err := issuer.Parse(raw)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token"`)
				errors.WriteError(w, errors.ErrTokenInvalid.WithCause(err))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
