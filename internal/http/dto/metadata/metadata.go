// Package metadata define los contratos JSON de /api/metadata y /api/status.
package metadata

import "github.com/dropDatabas3/vigilia/internal/domain/repository"

type RolView struct {
	ID        int64  `json:"id"`
	NombreRol string `json:"nombreRol"`
}

type SectorView struct {
	ID           int64  `json:"id"`
	NombreSector string `json:"nombreSector"`
}

type Response struct {
	Message  string       `json:"message"`
	Roles    []RolView    `json:"roles"`
	Sectores []SectorView `json:"sectores"`
}

func NewRoles(rs []repository.Rol) []RolView {
	out := make([]RolView, 0, len(rs))
	for _, r := range rs {
		out = append(out, RolView{ID: r.ID, NombreRol: r.NombreRol})
	}
	return out
}

func NewSectores(ss []repository.Sector) []SectorView {
	out := make([]SectorView, 0, len(ss))
	for _, s := range ss {
		out = append(out, SectorView{ID: s.ID, NombreSector: s.NombreSector})
	}
	return out
}

// StatusResponse es la respuesta de GET /api/status.
type StatusResponse struct {
	Message  string `json:"message"`
	Service  string `json:"service"`
	Database string `json:"database"`
}
