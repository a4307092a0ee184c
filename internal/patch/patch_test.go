package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type body struct {
	Nombre   Field[string] `json:"nombre"`
	Telefono Field[string] `json:"telefono"`
	IDSector Field[int64]  `json:"idSector"`
}

func TestCampoAusente(t *testing.T) {
	var b body
	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Ana"}`), &b))

	require.True(t, b.Nombre.Set)
	require.True(t, b.Nombre.Valid)
	require.Equal(t, "Ana", b.Nombre.Value)

	require.False(t, b.Telefono.Set, "key ausente no debe marcar Set")
	require.False(t, b.IDSector.Set)
}

func TestNullExplicito(t *testing.T) {
	var b body
	require.NoError(t, json.Unmarshal([]byte(`{"idSector":null}`), &b))

	require.True(t, b.IDSector.Set)
	require.False(t, b.IDSector.Valid)
	require.Zero(t, b.IDSector.Value)
}

func TestValoresFalsySonValidos(t *testing.T) {
	var b body
	require.NoError(t, json.Unmarshal([]byte(`{"telefono":"","idSector":0}`), &b))

	require.True(t, b.Telefono.Set)
	require.True(t, b.Telefono.Valid)
	require.Equal(t, "", b.Telefono.Value)

	require.True(t, b.IDSector.Set)
	require.True(t, b.IDSector.Valid)
	require.Equal(t, int64(0), b.IDSector.Value)
}

func TestTipoIncorrecto(t *testing.T) {
	var b body
	require.Error(t, json.Unmarshal([]byte(`{"idSector":"doce"}`), &b))
}

func TestConstructores(t *testing.T) {
	f := Of("x")
	require.True(t, f.Set)
	require.True(t, f.Valid)

	n := Null[string]()
	require.True(t, n.Set)
	require.False(t, n.Valid)
}
