package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type eventoRepo struct{ pool *pgxpool.Pool }

const eventoCols = `
	e.id, e.id_dispositivo, e.tipo_evento, COALESCE(e.descripcion, ''),
	e.nivel_criticidad, e.fecha_hora, d.serie, d.nombre_dispositivo, m.nombre_modelo`

const eventoFrom = `
	FROM eventos e
	JOIN dispositivos d ON d.id = e.id_dispositivo
	JOIN modelos_dispositivos m ON m.id = d.id_modelo`

func scanEvento(row interface{ Scan(...any) error }) (*repository.Evento, error) {
	var ev repository.Evento
	err := row.Scan(&ev.ID, &ev.IDDispositivo, &ev.TipoEvento, &ev.Descripcion,
		&ev.NivelCriticidad, &ev.FechaHora, &ev.SerieDispositivo,
		&ev.NombreDispositivo, &ev.NombreModelo)
	if err != nil {
		return nil, translateErr(err)
	}
	return &ev, nil
}

func (r *eventoRepo) Create(ctx context.Context, in repository.CreateEvento) (*repository.Evento, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO eventos (id_dispositivo, tipo_evento, descripcion, nivel_criticidad)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id`,
		in.IDDispositivo, in.TipoEvento, in.Descripcion, in.NivelCriticidad,
	).Scan(&id)
	if err != nil {
		return nil, translateErr(err)
	}
	row := r.pool.QueryRow(ctx, `SELECT`+eventoCols+eventoFrom+` WHERE e.id = $1`, id)
	return scanEvento(row)
}

func (r *eventoRepo) List(ctx context.Context) ([]repository.Evento, error) {
	return r.list(ctx, `SELECT`+eventoCols+eventoFrom+` ORDER BY e.fecha_hora DESC`)
}

func (r *eventoRepo) ListByDispositivo(ctx context.Context, idDispositivo int64) ([]repository.Evento, error) {
	return r.list(ctx,
		`SELECT`+eventoCols+eventoFrom+` WHERE e.id_dispositivo = $1 ORDER BY e.fecha_hora DESC`,
		idDispositivo)
}

func (r *eventoRepo) list(ctx context.Context, q string, args ...any) ([]repository.Evento, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := []repository.Evento{}
	for rows.Next() {
		ev, err := scanEvento(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ev)
	}
	return out, translateErr(rows.Err())
}
