package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/vigilia/internal/rate"
)

func TestWithRateLimitBlocksAfterLimit(t *testing.T) {
	limiter := rate.NewMemoryLimiter(2, time.Minute)
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), WithRateLimit(limiter))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestWithRateLimitPerIP(t *testing.T) {
	limiter := rate.NewMemoryLimiter(1, time.Minute)
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), WithRateLimit(limiter))

	a := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	a.RemoteAddr = "10.0.0.1:1111"
	recA := httptest.NewRecorder()
	h.ServeHTTP(recA, a)
	require.Equal(t, http.StatusOK, recA.Code)

	// otra IP tiene su propia ventana
	b := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	b.RemoteAddr = "10.0.0.2:2222"
	recB := httptest.NewRecorder()
	h.ServeHTTP(recB, b)
	require.Equal(t, http.StatusOK, recB.Code)
}
