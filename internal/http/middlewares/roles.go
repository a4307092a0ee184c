package middlewares

import (
	"net/http"

	"github.com/dropDatabas3/vigilia/internal/domain/roles"
	"github.com/dropDatabas3/vigilia/internal/http/errors"
)

// RequireRole corta con 403 si el rol del token no está en la lista.
// Debe usarse después de RequireAuth; si no hay claims en contexto también
// es 403 (sin identidad no hay permiso), nunca un panic.
func RequireRole(allowed ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := GetClaims(r.Context())
			if c == nil {
				errors.WriteError(w, errors.ErrForbidden)
				return
			}
			if !roles.Member(c.Rol, allowed) {
				errors.WriteError(w, errors.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
