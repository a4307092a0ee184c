// Package metrics expone instrumentación Prometheus del servidor HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dropDatabas3/vigilia/internal/http/middlewares"
)

var (
	once sync.Once

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inflight        *prometheus.GaugeVec
)

func register(reg prometheus.Registerer) {
	once.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Número total de requests procesadas",
		}, []string{"method", "path", "status"})

		requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia de los requests HTTP",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"})

		inflight = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Requests en vuelo por método",
		}, []string{"method"})

		reg.MustRegister(requestsTotal, requestDuration, inflight)
	})
}

// Handler devuelve el handler de /metrics, registrando los collectors la
// primera vez.
func Handler() http.Handler {
	register(prometheus.DefaultRegisterer)
	return promhttp.Handler()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// Middleware instrumenta cada request. Usa el patrón de ruta de chi
// ("/api/usuarios/{id}") como label para no explotar la cardinalidad con IDs.
func Middleware() middlewares.Middleware {
	register(prometheus.DefaultRegisterer)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					path = p
				}
			}
			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			requestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
			requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// InflightMiddleware cuenta requests en vuelo. Separado del Middleware base
// para poder aplicarlo solo donde interesa. Acá no hay patrón de chi todavía
// (el gauge sube antes del routing), así que el label es solo el método.
func InflightMiddleware() middlewares.Middleware {
	register(prometheus.DefaultRegisterer)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g := inflight.WithLabelValues(r.Method)
			g.Inc()
			defer g.Dec()
			next.ServeHTTP(w, r)
		})
	}
}
