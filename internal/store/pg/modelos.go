package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type modeloRepo struct{ pool *pgxpool.Pool }

const modeloCols = `id, nombre_modelo, COALESCE(fabricante, ''), tipo_dispositivo, activo`

func scanModelo(row interface{ Scan(...any) error }) (*repository.ModeloDispositivo, error) {
	var m repository.ModeloDispositivo
	err := row.Scan(&m.ID, &m.NombreModelo, &m.Fabricante, &m.TipoDispositivo, &m.Activo)
	if err != nil {
		return nil, translateErr(err)
	}
	return &m, nil
}

func (r *modeloRepo) Create(ctx context.Context, in repository.CreateModelo) (*repository.ModeloDispositivo, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO modelos_dispositivos (nombre_modelo, fabricante, tipo_dispositivo)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING `+modeloCols,
		in.NombreModelo, in.Fabricante, in.TipoDispositivo,
	)
	return scanModelo(row)
}

func (r *modeloRepo) List(ctx context.Context) ([]repository.ModeloDispositivo, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+modeloCols+` FROM modelos_dispositivos ORDER BY id`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := []repository.ModeloDispositivo{}
	for rows.Next() {
		m, err := scanModelo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, translateErr(rows.Err())
}

func (r *modeloRepo) GetByID(ctx context.Context, id int64) (*repository.ModeloDispositivo, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+modeloCols+` FROM modelos_dispositivos WHERE id = $1`, id)
	return scanModelo(row)
}

func (r *modeloRepo) Update(ctx context.Context, id int64, p repository.ModeloPatch) (*repository.ModeloDispositivo, error) {
	var b updateBuilder
	setField(&b, "nombre_modelo", p.NombreModelo)
	setField(&b, "fabricante", p.Fabricante)
	setField(&b, "tipo_dispositivo", p.TipoDispositivo)
	if b.empty() {
		return nil, repository.ErrInvalid
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE modelos_dispositivos SET `+b.setClause()+` WHERE id = `+b.next(id)+` RETURNING `+modeloCols,
		b.args...)
	return scanModelo(row)
}

func (r *modeloRepo) SoftDelete(ctx context.Context, id int64) (*repository.ModeloBaja, error) {
	var baja repository.ModeloBaja
	err := r.pool.QueryRow(ctx, `
		UPDATE modelos_dispositivos SET activo = FALSE
		WHERE id = $1 AND activo
		RETURNING id, nombre_modelo, activo`,
		id,
	).Scan(&baja.ID, &baja.NombreModelo, &baja.Activo)
	if err != nil {
		return nil, translateErr(err)
	}
	return &baja, nil
}
