package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/dropDatabas3/vigilia/internal/cache/memory"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

type fakeMetadataRepo struct {
	rolesCalls int
	pingErr    error
}

func (f *fakeMetadataRepo) Roles(context.Context) ([]repository.Rol, error) {
	f.rolesCalls++
	return []repository.Rol{
		{ID: 1, NombreRol: "Administrador General"},
		{ID: 2, NombreRol: "Administrador"},
	}, nil
}

func (f *fakeMetadataRepo) Sectores(context.Context) ([]repository.Sector, error) {
	return []repository.Sector{{ID: 1, NombreSector: "Monitoreo"}}, nil
}

func (f *fakeMetadataRepo) Ping(context.Context) error { return f.pingErr }

func TestMetadataUsaCache(t *testing.T) {
	repo := &fakeMetadataRepo{}
	svc := NewMetadataService(repo, cachemem.New(time.Minute), time.Minute)

	first, err := svc.Metadata(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Roles, 2)
	require.Equal(t, "Metadata obtenida exitosamente.", first.Message)

	second, err := svc.Metadata(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, repo.rolesCalls, "la segunda lectura debe salir del cache")
}

func TestMetadataSinCache(t *testing.T) {
	repo := &fakeMetadataRepo{}
	svc := NewMetadataService(repo, nil, 0)

	_, err := svc.Metadata(context.Background())
	require.NoError(t, err)
	_, err = svc.Metadata(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, repo.rolesCalls)
}

func TestStatusReportaBaseCaida(t *testing.T) {
	svc := NewMetadataService(&fakeMetadataRepo{pingErr: errors.New("down")}, nil, 0)
	st := svc.Status(context.Background())
	require.Equal(t, "unavailable", st.Database)
	require.Equal(t, "vigilia", st.Service)

	svc = NewMetadataService(&fakeMetadataRepo{}, nil, 0)
	require.Equal(t, "ok", svc.Status(context.Background()).Database)
}
