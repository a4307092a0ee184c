package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	p := writeYAML(t, `
jwt:
  secret: "test-secret"
storage:
  dsn: "postgres://localhost/vigilia"
`)
	c, err := Load(p)
	require.NoError(t, err)

	require.Equal(t, ":8080", c.Server.Addr)
	require.Equal(t, "memory", c.Cache.Kind)
	require.Equal(t, time.Hour, c.AccessTTLDuration())
	require.Equal(t, 10, c.Rate.Login.Limit)
	require.Equal(t, time.Minute, c.LoginWindowDuration())
}

func TestLoadEnvOverrides(t *testing.T) {
	p := writeYAML(t, `
jwt:
  secret: "yaml-secret"
server:
  addr: ":9000"
storage:
  dsn: "postgres://localhost/vigilia"
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("RATE_ENABLED", "true")
	t.Setenv("RATE_LOGIN_LIMIT", "3")

	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "env-secret", c.JWT.Secret)
	require.Equal(t, ":7070", c.Server.Addr)
	require.True(t, c.Rate.Enabled)
	require.Equal(t, 3, c.Rate.Login.Limit)
}

func TestLoadSinArchivoUsaEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-only-secret")
	t.Setenv("STORAGE_DSN", "postgres://localhost/vigilia")

	c, err := Load(filepath.Join(t.TempDir(), "no-existe.yaml"))
	require.NoError(t, err)
	require.Equal(t, "env-only-secret", c.JWT.Secret)
	require.Equal(t, ":8080", c.Server.Addr)
}

func TestLoadRequiresSecret(t *testing.T) {
	p := writeYAML(t, `
server:
  addr: ":8080"
`)
	_, err := Load(p)
	require.Error(t, err)
}

func TestLoadRequiresDSN(t *testing.T) {
	p := writeYAML(t, `
jwt:
  secret: "test-secret"
`)
	_, err := Load(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "storage.dsn")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	p := writeYAML(t, `
jwt:
  secret: "s"
  access_ttl: "una hora"
`)
	_, err := Load(p)
	require.Error(t, err)
}

func TestLoadRedisRequiresAddr(t *testing.T) {
	p := writeYAML(t, `
jwt:
  secret: "s"
storage:
  dsn: "postgres://localhost/vigilia"
cache:
  kind: redis
`)
	_, err := Load(p)
	require.Error(t, err)
}
