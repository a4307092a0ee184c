package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type dispositivoRepo struct{ pool *pgxpool.Pool }

const dispositivoCols = `
	d.id, d.id_modelo, d.serie, d.nombre_dispositivo, COALESCE(d.ubicacion, ''),
	d.fecha_instalacion, d.activo, m.nombre_modelo, COALESCE(m.fabricante, '')`

const dispositivoFrom = `
	FROM dispositivos d
	JOIN modelos_dispositivos m ON m.id = d.id_modelo`

func scanDispositivo(row interface{ Scan(...any) error }) (*repository.Dispositivo, error) {
	var d repository.Dispositivo
	err := row.Scan(&d.ID, &d.IDModelo, &d.Serie, &d.NombreDispositivo, &d.Ubicacion,
		&d.FechaInstalacion, &d.Activo, &d.NombreModelo, &d.Fabricante)
	if err != nil {
		return nil, translateErr(err)
	}
	return &d, nil
}

func (r *dispositivoRepo) Create(ctx context.Context, in repository.CreateDispositivo) (*repository.Dispositivo, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO dispositivos (id_modelo, serie, nombre_dispositivo, ubicacion, fecha_instalacion)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id`,
		in.IDModelo, in.Serie, in.NombreDispositivo, in.Ubicacion, in.FechaInstalacion,
	).Scan(&id)
	if err != nil {
		return nil, translateErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *dispositivoRepo) List(ctx context.Context) ([]repository.Dispositivo, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+dispositivoCols+dispositivoFrom+` ORDER BY d.id`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := []repository.Dispositivo{}
	for rows.Next() {
		d, err := scanDispositivo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, translateErr(rows.Err())
}

func (r *dispositivoRepo) GetByID(ctx context.Context, id int64) (*repository.Dispositivo, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+dispositivoCols+dispositivoFrom+` WHERE d.id = $1`, id)
	return scanDispositivo(row)
}

func (r *dispositivoRepo) Update(ctx context.Context, id int64, p repository.DispositivoPatch) (*repository.Dispositivo, error) {
	var b updateBuilder
	setField(&b, "id_modelo", p.IDModelo)
	setField(&b, "serie", p.Serie)
	setField(&b, "nombre_dispositivo", p.NombreDispositivo)
	setField(&b, "ubicacion", p.Ubicacion)
	setField(&b, "fecha_instalacion", p.FechaInstalacion)
	if b.empty() {
		return nil, repository.ErrInvalid
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE dispositivos SET `+b.setClause()+` WHERE id = `+b.next(id), b.args...)
	if err != nil {
		return nil, translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *dispositivoRepo) SoftDelete(ctx context.Context, id int64) (*repository.DispositivoBaja, error) {
	var baja repository.DispositivoBaja
	err := r.pool.QueryRow(ctx, `
		UPDATE dispositivos SET activo = FALSE
		WHERE id = $1 AND activo
		RETURNING id, nombre_dispositivo, serie, activo`,
		id,
	).Scan(&baja.ID, &baja.NombreDispositivo, &baja.Serie, &baja.Activo)
	if err != nil {
		return nil, translateErr(err)
	}
	return &baja, nil
}
