package repository

import "context"

// Rol y Sector son catálogos de solo lectura que consume /api/metadata.

type Rol struct {
	ID        int64
	NombreRol string
}

type Sector struct {
	ID           int64
	NombreSector string
}

type MetadataRepository interface {
	Roles(ctx context.Context) ([]Rol, error)
	Sectores(ctx context.Context) ([]Sector, error)
	// Ping verifica conectividad con la base (para /api/status y /readyz).
	Ping(ctx context.Context) error
}
