package jwt

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "clave-de-prueba-suficientemente-larga"

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer(testSecret, time.Hour)

	in := Claims{ID: 15, Email: "a@x.com", Rol: "Administrador General"}
	raw, exp, err := iss.Issue(in)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	// exp debe ser exactamente 1h después de la emisión (tolerancia chica)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), exp, 5*time.Second)

	got, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, in, *got)
}

func TestParse_WrongSecret(t *testing.T) {
	raw, _, err := NewIssuer(testSecret, time.Hour).Issue(Claims{ID: 1, Email: "a@x.com", Rol: "Técnico"})
	require.NoError(t, err)

	_, err = NewIssuer("otro-secreto", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	// Emitimos a mano un token vencido más allá del leeway del parser.
	now := time.Now().UTC().Add(-2 * time.Hour)
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwtv5.MapClaims{
		"id":    int64(1),
		"email": "a@x.com",
		"rol":   "Técnico",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	raw, err := tk.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewIssuer(testSecret, time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParse_RejectsNoneAlgorithm(t *testing.T) {
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, jwtv5.MapClaims{
		"id": int64(1), "email": "a@x.com", "rol": "Administrador",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := tk.SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer(testSecret, time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := NewIssuer(testSecret, time.Hour).Parse("no.es.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	assert.Equal(t, time.Hour, NewIssuer(testSecret, 0).TTL())
}
