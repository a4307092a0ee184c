package repository

import (
	"errors"
	"fmt"
)

// Errores sentinela que los adapters devuelven hacia los services.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
)

// ConstraintKind clasifica una violación de constraint reportada por la base.
type ConstraintKind int

const (
	ConstraintUnique ConstraintKind = iota
	ConstraintForeignKey
)

// ConstraintError es la violación tipada que el adapter construye a partir
// del error del driver (SQLSTATE 23505/23503). El core nunca inspecciona el
// texto del error de la base: decide por Kind y Field.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string // nombre del constraint en la DB
	Field      string // campo externo al que corresponde, si se pudo mapear
}

func (e *ConstraintError) Error() string {
	kind := "unique"
	if e.Kind == ConstraintForeignKey {
		kind = "foreign key"
	}
	return fmt.Sprintf("%s constraint %q (field %q)", kind, e.Constraint, e.Field)
}

// AsConstraint extrae un *ConstraintError de la cadena de errores.
func AsConstraint(err error) (*ConstraintError, bool) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsignacionActivaError se devuelve al intentar asignar un dispositivo que ya
// tiene una asignación no finalizada. Lleva el abonado en conflicto para que
// el mensaje al cliente pueda nombrarlo.
type AsignacionActivaError struct {
	IDAsignacion int64
	IDAbonado    int64
}

func (e *AsignacionActivaError) Error() string {
	return fmt.Sprintf("dispositivo ya asignado (asignacion=%d, abonado=%d)", e.IDAsignacion, e.IDAbonado)
}
