package pg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/vigilia/internal/patch"
)

func TestUpdateBuilderSkipsUnsetFields(t *testing.T) {
	var b updateBuilder
	setField(&b, "nombre", patch.Of("Ana"))
	setField(&b, "telefono", patch.Field[string]{}) // ausente en el request

	require.Equal(t, "nombre = $1", b.setClause())
	require.Equal(t, []any{"Ana"}, b.args)
}

func TestUpdateBuilderKeepsFalsyValues(t *testing.T) {
	var b updateBuilder
	setField(&b, "telefono", patch.Of(""))
	setField(&b, "id_sector", patch.Of(int64(0)))

	require.Equal(t, "telefono = $1, id_sector = $2", b.setClause())
	require.Equal(t, []any{"", int64(0)}, b.args)
}

func TestUpdateBuilderNullClearsColumn(t *testing.T) {
	var b updateBuilder
	setField(&b, "id_sector", patch.Null[int64]())
	setField(&b, "nombre", patch.Of("Ana"))

	require.Equal(t, "id_sector = NULL, nombre = $1", b.setClause())
	require.Equal(t, []any{"Ana"}, b.args)
}

func TestUpdateBuilderWherePlaceholder(t *testing.T) {
	var b updateBuilder
	setField(&b, "nombre", patch.Of("Ana"))
	ph := b.next(int64(7))

	require.Equal(t, "$2", ph)
	require.Equal(t, []any{"Ana", int64(7)}, b.args)
}

func TestUpdateBuilderEmpty(t *testing.T) {
	var b updateBuilder
	require.True(t, b.empty())
	setField(&b, "nombre", patch.Of("x"))
	require.False(t, b.empty())
}
