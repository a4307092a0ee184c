package logger

import "go.uber.org/zap"

// Campos estándar HTTP.

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }
func ClientIP(v string) zap.Field  { return zap.String("client_ip", v) }

// Campos estándar de negocio.

func UserID(v int64) zap.Field     { return zap.Int64("user_id", v) }
func Email(v string) zap.Field     { return zap.String("email", v) }
func Rol(v string) zap.Field       { return zap.String("rol", v) }
func EntityID(v int64) zap.Field   { return zap.Int64("entity_id", v) }
func Layer(v string) zap.Field     { return zap.String("layer", v) }
func Component(v string) zap.Field { return zap.String("component", v) }
func Op(v string) zap.Field        { return zap.String("op", v) }
func Err(err error) zap.Field      { return zap.Error(err) }
