package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type asignacionRepo struct{ pool *pgxpool.Pool }

const asignacionCols = `
	a.id, a.id_abonado, a.id_dispositivo, a.fecha_programada, a.fecha_fin_real,
	a.estado, ab.razon_social, d.serie`

const asignacionFrom = `
	FROM asignaciones a
	JOIN abonados ab ON ab.id = a.id_abonado
	JOIN dispositivos d ON d.id = a.id_dispositivo`

func scanAsignacion(row interface{ Scan(...any) error }) (*repository.Asignacion, error) {
	var a repository.Asignacion
	err := row.Scan(&a.ID, &a.IDAbonado, &a.IDDispositivo, &a.FechaProgramada,
		&a.FechaFinReal, &a.Estado, &a.RazonSocial, &a.Serie)
	if err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

// activa busca la asignación no finalizada del dispositivo, si existe.
func (r *asignacionRepo) activa(ctx context.Context, idDispositivo int64) (*repository.AsignacionActivaError, error) {
	var e repository.AsignacionActivaError
	err := r.pool.QueryRow(ctx, `
		SELECT id, id_abonado FROM asignaciones
		WHERE id_dispositivo = $1 AND estado <> $2`,
		idDispositivo, repository.EstadoFinalizada,
	).Scan(&e.IDAsignacion, &e.IDAbonado)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return &e, nil
}

func (r *asignacionRepo) Create(ctx context.Context, in repository.CreateAsignacion) (*repository.Asignacion, error) {
	// Chequeo previo para poder nombrar al abonado en conflicto.
	if e, err := r.activa(ctx, in.IDDispositivo); err != nil {
		return nil, err
	} else if e != nil {
		return nil, e
	}

	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO asignaciones (id_abonado, id_dispositivo, fecha_programada, estado)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		in.IDAbonado, in.IDDispositivo, in.FechaProgramada, repository.EstadoProgramada,
	).Scan(&id)
	if err != nil {
		// El índice parcial cierra la carrera entre el chequeo y el insert.
		// Si la releída no encuentra la fila en conflicto (p. ej. ya se
		// finalizó), el ConstraintError genérico igual sale como 409.
		if isUniqueOn(err, asignacionActivaIdx) {
			if e, aerr := r.activa(ctx, in.IDDispositivo); aerr == nil && e != nil {
				return nil, e
			}
		}
		return nil, translateErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *asignacionRepo) List(ctx context.Context) ([]repository.Asignacion, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+asignacionCols+asignacionFrom+` ORDER BY a.id`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := []repository.Asignacion{}
	for rows.Next() {
		a, err := scanAsignacion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, translateErr(rows.Err())
}

func (r *asignacionRepo) GetByID(ctx context.Context, id int64) (*repository.Asignacion, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+asignacionCols+asignacionFrom+` WHERE a.id = $1`, id)
	return scanAsignacion(row)
}

func (r *asignacionRepo) Update(ctx context.Context, id int64, p repository.AsignacionPatch) (*repository.Asignacion, error) {
	var b updateBuilder
	setField(&b, "id_abonado", p.IDAbonado)
	setField(&b, "id_dispositivo", p.IDDispositivo)
	setField(&b, "fecha_programada", p.FechaProgramada)
	if b.empty() {
		return nil, repository.ErrInvalid
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE asignaciones SET `+b.setClause()+` WHERE id = `+b.next(id), b.args...)
	if err != nil {
		// Mover la asignación a un dispositivo que ya tiene una activa choca
		// con el mismo índice parcial que el alta: releer para nombrar al
		// abonado en conflicto.
		if isUniqueOn(err, asignacionActivaIdx) && p.IDDispositivo.Set && p.IDDispositivo.Valid {
			if e, aerr := r.activa(ctx, p.IDDispositivo.Value); aerr == nil && e != nil {
				return nil, e
			}
		}
		return nil, translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *asignacionRepo) Finalizar(ctx context.Context, id int64) (*repository.AsignacionCierre, error) {
	var c repository.AsignacionCierre
	// Mismo patrón que los soft deletes: el WHERE sobre el estado garantiza
	// que la transición gana una sola vez.
	err := r.pool.QueryRow(ctx, `
		UPDATE asignaciones
		SET estado = $1, fecha_fin_real = NOW()
		WHERE id = $2 AND estado <> $1
		RETURNING id, estado, fecha_fin_real`,
		repository.EstadoFinalizada, id,
	).Scan(&c.ID, &c.Estado, &c.FechaFinReal)
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}
