// Package audit registra eventos de auditoría (logins, bajas) best-effort.
package audit

import (
	"context"
	"time"

	"github.com/dropDatabas3/vigilia/internal/observability/logger"
	"go.uber.org/zap"
)

// Log escribe un evento de auditoría estructurado. Nunca bloquea la
// operación que lo origina: es puro logging, sin sink transaccional.
func Log(ctx context.Context, event string, fields ...zap.Field) {
	all := make([]zap.Field, 0, len(fields)+2)
	all = append(all,
		zap.String("audit_event", event),
		zap.Time("ts", time.Now().UTC()),
	)
	all = append(all, fields...)
	logger.From(ctx).Named("audit").Info(event, all...)
}
