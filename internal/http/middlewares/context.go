package middlewares

import (
	"context"

	jwtx "github.com/dropDatabas3/vigilia/internal/jwt"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyClaims
)

func setRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, rid)
}

// GetRequestID devuelve el request ID del contexto, o "" si no hay.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// WithClaims guarda las claims del token validado en el contexto.
func WithClaims(ctx context.Context, c *jwtx.Claims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// GetClaims devuelve las claims del contexto, o nil si el request no pasó
// por RequireAuth.
func GetClaims(ctx context.Context) *jwtx.Claims {
	if v, ok := ctx.Value(ctxKeyClaims).(*jwtx.Claims); ok {
		return v
	}
	return nil
}
