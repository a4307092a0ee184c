package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

// constraintFields mapea nombre de constraint en la DB → campo externo.
// Se decide por nombre de constraint y SQLSTATE, nunca por el texto del
// mensaje del servidor (que depende del locale).
var constraintFields = map[string]string{
	"usuarios_email_key":               "email",
	"abonados_rut_key":                 "rut",
	"modelos_nombre_fabricante_key":    "nombreModelo",
	"dispositivos_serie_key":           "serie",
	"usuarios_id_rol_fkey":             "idRol",
	"usuarios_id_sector_fkey":          "idSector",
	"dispositivos_id_modelo_fkey":      "idModelo",
	"asignaciones_id_abonado_fkey":     "idAbonado",
	"asignaciones_id_dispositivo_fkey": "idDispositivo",
	"eventos_id_dispositivo_fkey":      "idDispositivo",
}

// Índice parcial que respalda "un dispositivo, una asignación activa".
// Su violación se trata aparte en asignacionRepo.Create.
const asignacionActivaIdx = "asignaciones_dispositivo_activa_idx"

// translateErr convierte errores del driver en errores del dominio.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return &repository.ConstraintError{
				Kind:       repository.ConstraintUnique,
				Constraint: pgErr.ConstraintName,
				Field:      constraintFields[pgErr.ConstraintName],
			}
		case "23503": // foreign_key_violation
			return &repository.ConstraintError{
				Kind:       repository.ConstraintForeignKey,
				Constraint: pgErr.ConstraintName,
				Field:      constraintFields[pgErr.ConstraintName],
			}
		}
	}
	return err
}

func isUniqueOn(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
