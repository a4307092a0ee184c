// Package pg implementa los repositorios del dominio sobre PostgreSQL
// usando pgxpool. Toda traducción de errores del driver a errores del
// dominio ocurre acá; las capas de arriba nunca ven pgconn.
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type Store struct{ pool *pgxpool.Pool }

// Cfg es el tuning opcional del pool.
type Cfg struct {
	MaxConns        int
	MinConns        int
	ConnMaxLifetime string
}

func New(ctx context.Context, dsn string, cfg Cfg) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = int32(cfg.MinConns)
	}
	if cfg.ConnMaxLifetime != "" {
		if d, err := time.ParseDuration(cfg.ConnMaxLifetime); err == nil {
			pcfg.MaxConnLifetime = d
			pcfg.MaxConnIdleTime = d
		}
	}
	if pcfg.MaxConns == 0 {
		pcfg.MaxConns = 10
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Pool expone el pool interno (migraciones, métricas).
func (s *Store) Pool() *pgxpool.Pool {
	if s == nil {
		return nil
	}
	return s.pool
}

// PoolStats devuelve un snapshot del estado del pool.
func (s *Store) PoolStats() *pgxpool.Stat {
	if s == nil || s.pool == nil {
		return nil
	}
	return s.pool.Stat()
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close cierra el pool subyacente (idempotente).
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Accessors por entidad. Cada repo comparte el mismo pool.

func (s *Store) Usuarios() repository.UsuarioRepository         { return &usuarioRepo{pool: s.pool} }
func (s *Store) Abonados() repository.AbonadoRepository         { return &abonadoRepo{pool: s.pool} }
func (s *Store) Modelos() repository.ModeloRepository           { return &modeloRepo{pool: s.pool} }
func (s *Store) Dispositivos() repository.DispositivoRepository { return &dispositivoRepo{pool: s.pool} }
func (s *Store) Asignaciones() repository.AsignacionRepository  { return &asignacionRepo{pool: s.pool} }
func (s *Store) Eventos() repository.EventoRepository           { return &eventoRepo{pool: s.pool} }
func (s *Store) Metadata() repository.MetadataRepository        { return &metadataRepo{pool: s.pool} }
