package services

import (
	"context"

	"github.com/dropDatabas3/vigilia/internal/domain/repository"
)

// Fakes mínimos por interfaz: cada test configura solo los métodos que usa.

type fakeUsuarioRepo struct {
	createFn    func(ctx context.Context, in repository.CreateUsuario) (*repository.Usuario, error)
	listFn      func(ctx context.Context, soloActivos bool) ([]repository.Usuario, error)
	getFn       func(ctx context.Context, id int64) (*repository.Usuario, error)
	getAuthFn   func(ctx context.Context, email string) (*repository.UsuarioAuth, error)
	updateFn    func(ctx context.Context, id int64, p repository.UsuarioPatch) (*repository.Usuario, error)
	softDelFn   func(ctx context.Context, id int64) (*repository.UsuarioBaja, error)
	lastPatch   *repository.UsuarioPatch
	lastSoloAct bool
}

func (f *fakeUsuarioRepo) Create(ctx context.Context, in repository.CreateUsuario) (*repository.Usuario, error) {
	return f.createFn(ctx, in)
}
func (f *fakeUsuarioRepo) List(ctx context.Context, soloActivos bool) ([]repository.Usuario, error) {
	f.lastSoloAct = soloActivos
	return f.listFn(ctx, soloActivos)
}
func (f *fakeUsuarioRepo) GetByID(ctx context.Context, id int64) (*repository.Usuario, error) {
	return f.getFn(ctx, id)
}
func (f *fakeUsuarioRepo) GetByEmailForAuth(ctx context.Context, email string) (*repository.UsuarioAuth, error) {
	return f.getAuthFn(ctx, email)
}
func (f *fakeUsuarioRepo) Update(ctx context.Context, id int64, p repository.UsuarioPatch) (*repository.Usuario, error) {
	f.lastPatch = &p
	return f.updateFn(ctx, id, p)
}
func (f *fakeUsuarioRepo) SoftDelete(ctx context.Context, id int64) (*repository.UsuarioBaja, error) {
	return f.softDelFn(ctx, id)
}

type fakeModeloRepo struct {
	createFn  func(ctx context.Context, in repository.CreateModelo) (*repository.ModeloDispositivo, error)
	listFn    func(ctx context.Context) ([]repository.ModeloDispositivo, error)
	getFn     func(ctx context.Context, id int64) (*repository.ModeloDispositivo, error)
	updateFn  func(ctx context.Context, id int64, p repository.ModeloPatch) (*repository.ModeloDispositivo, error)
	softDelFn func(ctx context.Context, id int64) (*repository.ModeloBaja, error)
}

func (f *fakeModeloRepo) Create(ctx context.Context, in repository.CreateModelo) (*repository.ModeloDispositivo, error) {
	return f.createFn(ctx, in)
}
func (f *fakeModeloRepo) List(ctx context.Context) ([]repository.ModeloDispositivo, error) {
	return f.listFn(ctx)
}
func (f *fakeModeloRepo) GetByID(ctx context.Context, id int64) (*repository.ModeloDispositivo, error) {
	return f.getFn(ctx, id)
}
func (f *fakeModeloRepo) Update(ctx context.Context, id int64, p repository.ModeloPatch) (*repository.ModeloDispositivo, error) {
	return f.updateFn(ctx, id, p)
}
func (f *fakeModeloRepo) SoftDelete(ctx context.Context, id int64) (*repository.ModeloBaja, error) {
	return f.softDelFn(ctx, id)
}

type fakeAsignacionRepo struct {
	createFn    func(ctx context.Context, in repository.CreateAsignacion) (*repository.Asignacion, error)
	listFn      func(ctx context.Context) ([]repository.Asignacion, error)
	getFn       func(ctx context.Context, id int64) (*repository.Asignacion, error)
	updateFn    func(ctx context.Context, id int64, p repository.AsignacionPatch) (*repository.Asignacion, error)
	finalizarFn func(ctx context.Context, id int64) (*repository.AsignacionCierre, error)
}

func (f *fakeAsignacionRepo) Create(ctx context.Context, in repository.CreateAsignacion) (*repository.Asignacion, error) {
	return f.createFn(ctx, in)
}
func (f *fakeAsignacionRepo) List(ctx context.Context) ([]repository.Asignacion, error) {
	return f.listFn(ctx)
}
func (f *fakeAsignacionRepo) GetByID(ctx context.Context, id int64) (*repository.Asignacion, error) {
	return f.getFn(ctx, id)
}
func (f *fakeAsignacionRepo) Update(ctx context.Context, id int64, p repository.AsignacionPatch) (*repository.Asignacion, error) {
	return f.updateFn(ctx, id, p)
}
func (f *fakeAsignacionRepo) Finalizar(ctx context.Context, id int64) (*repository.AsignacionCierre, error) {
	return f.finalizarFn(ctx, id)
}
