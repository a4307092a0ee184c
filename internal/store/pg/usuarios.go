package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type usuarioRepo struct{ pool *pgxpool.Pool }

// usuarioCols: proyección estándar con rol y sector joineados.
const usuarioCols = `
	u.id, u.nombre, u.email, COALESCE(u.telefono, ''), u.activo,
	u.id_rol, u.id_sector, r.nombre_rol, COALESCE(s.nombre_sector, '')`

const usuarioFrom = `
	FROM usuarios u
	JOIN roles r ON r.id = u.id_rol
	LEFT JOIN sectores s ON s.id = u.id_sector`

func scanUsuario(row interface{ Scan(...any) error }) (*repository.Usuario, error) {
	var u repository.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.Telefono, &u.Activo,
		&u.IDRol, &u.IDSector, &u.NombreRol, &u.NombreSector)
	if err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

func (r *usuarioRepo) Create(ctx context.Context, in repository.CreateUsuario) (*repository.Usuario, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO usuarios (nombre, email, password_hash, telefono, id_sector, id_rol)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		RETURNING id`,
		in.Nombre, in.Email, in.PasswordHash, in.Telefono, in.IDSector, in.IDRol,
	).Scan(&id)
	if err != nil {
		return nil, translateErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *usuarioRepo) List(ctx context.Context, soloActivos bool) ([]repository.Usuario, error) {
	q := `SELECT` + usuarioCols + usuarioFrom
	if soloActivos {
		q += ` WHERE u.activo`
	}
	q += ` ORDER BY u.id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := []repository.Usuario{}
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, translateErr(rows.Err())
}

func (r *usuarioRepo) GetByID(ctx context.Context, id int64) (*repository.Usuario, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+usuarioCols+usuarioFrom+` WHERE u.id = $1`, id)
	return scanUsuario(row)
}

func (r *usuarioRepo) GetByEmailForAuth(ctx context.Context, email string) (*repository.UsuarioAuth, error) {
	var u repository.UsuarioAuth
	err := r.pool.QueryRow(ctx, `
		SELECT u.id, u.nombre, u.email, u.password_hash, u.activo, r.nombre_rol
		FROM usuarios u
		JOIN roles r ON r.id = u.id_rol
		WHERE LOWER(u.email) = LOWER($1)`,
		email,
	).Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Activo, &u.NombreRol)
	if err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

func (r *usuarioRepo) Update(ctx context.Context, id int64, p repository.UsuarioPatch) (*repository.Usuario, error) {
	var b updateBuilder
	setField(&b, "nombre", p.Nombre)
	setField(&b, "telefono", p.Telefono)
	setField(&b, "id_sector", p.IDSector)
	setField(&b, "id_rol", p.IDRol)
	setField(&b, "password_hash", p.PasswordHash)
	if b.empty() {
		return nil, repository.ErrInvalid
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE usuarios SET `+b.setClause()+` WHERE id = `+b.next(id), b.args...)
	if err != nil {
		return nil, translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *usuarioRepo) SoftDelete(ctx context.Context, id int64) (*repository.UsuarioBaja, error) {
	var baja repository.UsuarioBaja
	// El WHERE activo hace de control de concurrencia: dos bajas en paralelo
	// no pueden ganar las dos.
	err := r.pool.QueryRow(ctx, `
		UPDATE usuarios SET activo = FALSE
		WHERE id = $1 AND activo
		RETURNING id, nombre, email, activo`,
		id,
	).Scan(&baja.ID, &baja.Nombre, &baja.Email, &baja.Activo)
	if err != nil {
		return nil, translateErr(err)
	}
	return &baja, nil
}
