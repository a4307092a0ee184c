package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type metadataRepo struct{ pool *pgxpool.Pool }

func (r *metadataRepo) Roles(ctx context.Context) ([]repository.Rol, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nombre_rol FROM roles ORDER BY id`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := []repository.Rol{}
	for rows.Next() {
		var rol repository.Rol
		if err := rows.Scan(&rol.ID, &rol.NombreRol); err != nil {
			return nil, translateErr(err)
		}
		out = append(out, rol)
	}
	return out, translateErr(rows.Err())
}

func (r *metadataRepo) Sectores(ctx context.Context) ([]repository.Sector, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nombre_sector FROM sectores ORDER BY id`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := []repository.Sector{}
	for rows.Next() {
		var s repository.Sector
		if err := rows.Scan(&s.ID, &s.NombreSector); err != nil {
			return nil, translateErr(err)
		}
		out = append(out, s)
	}
	return out, translateErr(rows.Err())
}

func (r *metadataRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
