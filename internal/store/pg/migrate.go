package pg

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// RunMigrations ejecuta los *_up.sql del filesystem embebido, en orden
// lexicográfico. Los scripts son idempotentes (IF NOT EXISTS / ON CONFLICT),
// así que correrlos en cada arranque es seguro.
func (s *Store) RunMigrations(ctx context.Context, fsys fs.FS) error {
	return s.runScripts(ctx, fsys, "_up.sql", false)
}

// RollbackMigrations ejecuta los *_down.sql en orden inverso. Solo se usa
// desde la CLI; el servidor nunca baja el esquema.
func (s *Store) RollbackMigrations(ctx context.Context, fsys fs.FS) error {
	return s.runScripts(ctx, fsys, "_down.sql", true)
}

// migrateLockKey serializa migraciones entre réplicas vía advisory lock.
const migrateLockKey = 0x7669676c // "vigl"

func (s *Store) runScripts(ctx context.Context, fsys fs.FS, suffix string, reverse bool) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, int64(migrateLockKey)); err != nil {
		return err
	}
	defer func() {
		_, _ = conn.Exec(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, int64(migrateLockKey))
	}()

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(strings.ToLower(e.Name()), suffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	if reverse {
		for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
			files[i], files[j] = files[j], files[i]
		}
	}
	for _, f := range files {
		b, err := fs.ReadFile(fsys, f)
		if err != nil {
			return err
		}
		if _, err := conn.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec %s: %w", f, err)
		}
	}
	return nil
}
