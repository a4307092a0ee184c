package controllers

import (
	"net/http"

	dto "github.com/dropDatabas3/vigilia/internal/http/dto/usuarios"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/http/services"
)

type UsuarioController struct {
	svc *services.UsuarioService
}

func NewUsuarioController(svc *services.UsuarioService) *UsuarioController {
	return &UsuarioController{svc: svc}
}

// Register maneja POST /api/register.
func (c *UsuarioController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}
	out, err := c.svc.Register(r.Context(), req)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusCreated, out)
}

// List maneja GET /api/usuarios.
func (c *UsuarioController) List(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.List(r.Context(), false)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}

// ListActive maneja GET /api/usuarios/active.
func (c *UsuarioController) ListActive(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.List(r.Context(), true)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}

// Get maneja GET /api/usuarios/{id}.
func (c *UsuarioController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	out, err := c.svc.Get(r.Context(), id)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}

// Update maneja PUT /api/usuarios/{id}.
func (c *UsuarioController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	var req dto.UpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}
	out, err := c.svc.Update(r.Context(), id, req)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}

// Baja maneja DELETE /api/usuarios/{id} (borrado lógico).
func (c *UsuarioController) Baja(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	out, err := c.svc.Baja(r.Context(), id)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}
