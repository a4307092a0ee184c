// Package cache define la interfaz de cache de proceso y sus adapters.
// Se usa para los catálogos de /api/metadata; no guarda estado de sesión.
package cache

import "time"

type Cache interface {
	Get(k string) ([]byte, bool)
	Set(k string, v []byte, ttl time.Duration)
	Delete(k string)
}
