// Package password encapsula el hashing de contraseñas de cuentas.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost es el work factor fijo de bcrypt. Cambiarlo no invalida hashes viejos:
// bcrypt guarda el cost dentro del propio hash.
const Cost = 10

// Hash calcula el hash bcrypt (salteado) de una contraseña en claro.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("empty password")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compara un intento en claro contra el hash almacenado.
// bcrypt hace la comparación en tiempo constante.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
