package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type abonadoRepo struct{ pool *pgxpool.Pool }

const abonadoCols = `
	id, razon_social, rut, COALESCE(contacto_principal, ''),
	COALESCE(telefono_contacto, ''), COALESCE(email_contacto, ''),
	fecha_alta, activo`

func scanAbonado(row interface{ Scan(...any) error }) (*repository.Abonado, error) {
	var a repository.Abonado
	err := row.Scan(&a.ID, &a.RazonSocial, &a.RUT, &a.ContactoPrincipal,
		&a.TelefonoContacto, &a.EmailContacto, &a.FechaAlta, &a.Activo)
	if err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func (r *abonadoRepo) Create(ctx context.Context, in repository.CreateAbonado) (*repository.Abonado, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO abonados (razon_social, rut, contacto_principal, telefono_contacto, email_contacto)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		RETURNING `+abonadoCols,
		in.RazonSocial, in.RUT, in.ContactoPrincipal, in.TelefonoContacto, in.EmailContacto,
	)
	return scanAbonado(row)
}

func (r *abonadoRepo) List(ctx context.Context) ([]repository.Abonado, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+abonadoCols+` FROM abonados ORDER BY id`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := []repository.Abonado{}
	for rows.Next() {
		a, err := scanAbonado(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, translateErr(rows.Err())
}

func (r *abonadoRepo) GetByID(ctx context.Context, id int64) (*repository.Abonado, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+abonadoCols+` FROM abonados WHERE id = $1`, id)
	return scanAbonado(row)
}

func (r *abonadoRepo) Update(ctx context.Context, id int64, p repository.AbonadoPatch) (*repository.Abonado, error) {
	var b updateBuilder
	setField(&b, "razon_social", p.RazonSocial)
	setField(&b, "rut", p.RUT)
	setField(&b, "contacto_principal", p.ContactoPrincipal)
	setField(&b, "telefono_contacto", p.TelefonoContacto)
	setField(&b, "email_contacto", p.EmailContacto)
	if b.empty() {
		return nil, repository.ErrInvalid
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE abonados SET `+b.setClause()+` WHERE id = `+b.next(id)+` RETURNING `+abonadoCols,
		b.args...)
	return scanAbonado(row)
}

func (r *abonadoRepo) SoftDelete(ctx context.Context, id int64) (*repository.AbonadoBaja, error) {
	var baja repository.AbonadoBaja
	err := r.pool.QueryRow(ctx, `
		UPDATE abonados SET activo = FALSE
		WHERE id = $1 AND activo
		RETURNING id, razon_social, activo`,
		id,
	).Scan(&baja.ID, &baja.RazonSocial, &baja.Activo)
	if err != nil {
		return nil, translateErr(err)
	}
	return &baja, nil
}
