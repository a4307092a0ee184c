package controllers

import (
	"net/http"

	dto "github.com/dropDatabas3/vigilia/internal/http/dto/asignaciones"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/http/services"
)

type AsignacionController struct {
	svc *services.AsignacionService
}

func NewAsignacionController(svc *services.AsignacionService) *AsignacionController {
	return &AsignacionController{svc: svc}
}

func (c *AsignacionController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}
	out, err := c.svc.Create(r.Context(), req)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusCreated, out)
}

func (c *AsignacionController) List(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.List(r.Context())
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}

func (c *AsignacionController) Get(w http.ResponseWriter, r *http.Request) {
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

func (c *AsignacionController) Update(w http.ResponseWriter, r *http.Request) {
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

// Finalizar maneja PUT /api/asignaciones/{id}/deactivate.
func (c *AsignacionController) Finalizar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	out, err := c.svc.Finalizar(r.Context(), id)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}
