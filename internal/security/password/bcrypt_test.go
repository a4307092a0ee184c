package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("s3creta!")
	require.NoError(t, err)
	require.NotEmpty(t, h)
	assert.NotContains(t, h, "s3creta!")

	assert.True(t, Verify(h, "s3creta!"))
	assert.False(t, Verify(h, "otra"))
	assert.False(t, Verify(h, ""))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("misma")
	require.NoError(t, err)
	h2, err := Hash("misma")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := Hash("")
	assert.Error(t, err)
}

func TestVerifyGarbageHash(t *testing.T) {
	assert.False(t, Verify("no-es-un-hash", "lo-que-sea"))
}
