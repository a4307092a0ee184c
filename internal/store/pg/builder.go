package pg

import (
	"fmt"
	"strings"

	"github.com/dropDatabas3/vigilia/internal/patch"
)

// updateBuilder arma el SET de un UPDATE parcial con placeholders
// posicionales. Las columnas las fija el adapter (allow-list implícita:
// solo existe un setField por columna editable), nunca el request.
type updateBuilder struct {
	sets []string
	args []any
}

func (b *updateBuilder) add(col string, v any) {
	b.args = append(b.args, v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func (b *updateBuilder) addNull(col string) {
	b.sets = append(b.sets, col+" = NULL")
}

func (b *updateBuilder) empty() bool { return len(b.sets) == 0 }

// next reserva el siguiente placeholder (para el WHERE).
func (b *updateBuilder) next(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *updateBuilder) setClause() string { return strings.Join(b.sets, ", ") }

// setField agrega la columna solo si el campo vino en el request.
// Falso, cero y cadena vacía son valores legítimos; null limpia la columna.
func setField[T any](b *updateBuilder, col string, f patch.Field[T]) {
	if !f.Set {
		return
	}
	if !f.Valid {
		b.addNull(col)
		return
	}
	b.add(col, f.Value)
}
