// Package jwt emite y valida los tokens de sesión de la plataforma.
//
// Firma simétrica HS256 con el secreto de proceso: la validez de un token es
// función pura de firma + expiración, sin estado en servidor ni roundtrip a
// la base por request.
package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
)

// Claims son los datos de identidad que viajan dentro del token.
type Claims struct {
	ID    int64
	Email string
	Rol   string
}

// Issuer firma y valida tokens con un secreto simétrico y TTL fijo.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer crea un issuer. ttl en cero usa 1 hora, el TTL del sistema.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL devuelve la vigencia configurada.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue firma un token con las claims {id, email, rol} y expiración
// exactamente ttl después de la emisión.
func (i *Issuer) Issue(c Claims) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(i.ttl)

	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwtv5.MapClaims{
		"id":    c.ID,
		"email": c.Email,
		"rol":   c.Rol,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	})
	signed, err := tk.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse valida firma (solo HS256) y expiración, y devuelve las claims.
// Token expirado o malformado distinguen el sentinel, no el status HTTP:
// ambos casos son 401 para el middleware.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	tk, err := jwtv5.Parse(raw, func(t *jwtv5.Token) (any, error) {
		return i.secret, nil
	},
		jwtv5.WithValidMethods([]string{"HS256"}),
		jwtv5.WithLeeway(30*time.Second),
	)
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	mc, ok := tk.Claims.(jwtv5.MapClaims)
	if !ok || !tk.Valid {
		return nil, ErrInvalidToken
	}

	idf, ok := mc["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := mc["email"].(string)
	rol, _ := mc["rol"].(string)

	return &Claims{ID: int64(idf), Email: email, Rol: rol}, nil
}
