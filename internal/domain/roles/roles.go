// Package roles centraliza los nombres de rol y su comparación canónica.
//
// El claim "rol" del token es el nombre tal como vive en la tabla ROLES, y
// entre snapshots de datos y tokens viejos la capitalización no es
// consistente. Toda comparación de roles pasa por Equals/Member: minúsculas
// y sin espacios alrededor. Nadie más compara strings de rol a mano.
package roles

import "strings"

const (
	Administrador        = "Administrador"
	AdministradorGeneral = "Administrador General"
	Tecnico              = "Técnico"
)

func canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Equals compara dos nombres de rol de forma canónica.
func Equals(a, b string) bool {
	return canon(a) == canon(b)
}

// Member informa si have pertenece a allowed, con comparación canónica.
func Member(have string, allowed []string) bool {
	for _, r := range allowed {
		if Equals(have, r) {
			return true
		}
	}
	return false
}
