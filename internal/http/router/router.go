// Package router arma el árbol de rutas del API y aplica la cadena de
// middlewares por grupo.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/vigilia/internal/domain/roles"
	"github.com/dropDatabas3/vigilia/internal/http/controllers"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/http/metrics"
	mw "github.com/dropDatabas3/vigilia/internal/http/middlewares"
	jwtx "github.com/dropDatabas3/vigilia/internal/jwt"
	"github.com/dropDatabas3/vigilia/internal/rate"
)

// Deps agrupa todo lo que el router necesita para registrar rutas.
type Deps struct {
	Issuer             *jwtx.Issuer
	CORSAllowedOrigins []string
	LoginLimiter       rate.Limiter // nil = sin límite en /api/login

	Auth         *controllers.AuthController
	Usuarios     *controllers.UsuarioController
	Abonados     *controllers.AbonadoController
	Modelos      *controllers.ModeloController
	Dispositivos *controllers.DispositivoController
	Asignaciones *controllers.AsignacionController
	Eventos      *controllers.EventoController
	Metadata     *controllers.MetadataController

	// Ready verifica dependencias externas (la base) para /readyz.
	Ready func(ctx context.Context) error
}

// New construye el handler raíz.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.WithRequestID())
	r.Use(mw.WithCORS(deps.CORSAllowedOrigins))
	r.Use(mw.WithLogging())
	r.Use(mw.WithRecover())
	r.Use(metrics.Middleware())
	r.Use(metrics.InflightMiddleware())

	// Probes y métricas, fuera de /api y sin auth.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		apperr.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if deps.Ready != nil {
			if err := deps.Ready(ctx); err != nil {
				apperr.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		apperr.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		// Público: login (con rate limit), registro, status y catálogos.
		if deps.LoginLimiter != nil {
			api.With(mw.WithRateLimit(deps.LoginLimiter)).Post("/login", deps.Auth.Login)
		} else {
			api.Post("/login", deps.Auth.Login)
		}
		api.Post("/register", deps.Usuarios.Register)
		api.Get("/status", deps.Metadata.Status)
		api.Get("/metadata", deps.Metadata.Metadata)

		auth := mw.RequireAuth(deps.Issuer)
		// Gestión de cuentas y abonados: solo el administrador general.
		adminGeneral := mw.RequireRole(roles.AdministradorGeneral)
		// Operación diaria: cualquier rol administrador.
		admins := mw.RequireRole(roles.Administrador, roles.AdministradorGeneral)

		api.Route("/usuarios", func(g chi.Router) {
			g.Use(auth, adminGeneral)
			g.Get("/", deps.Usuarios.List)
			g.Get("/active", deps.Usuarios.ListActive)
			g.Get("/{id}", deps.Usuarios.Get)
			g.Put("/{id}", deps.Usuarios.Update)
			g.Delete("/{id}", deps.Usuarios.Baja)
		})

		api.Route("/abonados", func(g chi.Router) {
			g.Use(auth, adminGeneral)
			g.Post("/", deps.Abonados.Create)
			g.Get("/", deps.Abonados.List)
			g.Get("/{id}", deps.Abonados.Get)
			g.Put("/{id}", deps.Abonados.Update)
			g.Delete("/{id}", deps.Abonados.Baja)
		})

		api.Route("/modelos", func(g chi.Router) {
			g.Use(auth, admins)
			g.Post("/", deps.Modelos.Create)
			g.Get("/", deps.Modelos.List)
			g.Get("/{id}", deps.Modelos.Get)
			g.Put("/{id}", deps.Modelos.Update)
			g.Delete("/{id}", deps.Modelos.Baja)
		})

		api.Route("/dispositivos", func(g chi.Router) {
			g.Use(auth, adminGeneral)
			g.Post("/", deps.Dispositivos.Create)
			g.Get("/", deps.Dispositivos.List)
			g.Get("/{id}", deps.Dispositivos.Get)
			g.Put("/{id}", deps.Dispositivos.Update)
			g.Delete("/{id}", deps.Dispositivos.Baja)
		})

		api.Route("/asignaciones", func(g chi.Router) {
			g.Use(auth, admins)
			g.Post("/", deps.Asignaciones.Create)
			g.Get("/", deps.Asignaciones.List)
			g.Get("/{id}", deps.Asignaciones.Get)
			g.Put("/{id}", deps.Asignaciones.Update)
			g.Put("/{id}/deactivate", deps.Asignaciones.Finalizar)
		})

		api.Route("/eventos", func(g chi.Router) {
			g.Use(auth, admins)
			g.Post("/", deps.Eventos.Create)
			g.Get("/", deps.Eventos.List)
			g.Get("/dispositivo/{id}", deps.Eventos.ListByDispositivo)
		})
	})

	return r
}
