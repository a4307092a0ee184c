package controllers

import (
	"net/http"

	dto "github.com/dropDatabas3/vigilia/internal/http/dto/dispositivos"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/http/services"
)

type DispositivoController struct {
	svc *services.DispositivoService
}

func NewDispositivoController(svc *services.DispositivoService) *DispositivoController {
	return &DispositivoController{svc: svc}
}

func (c *DispositivoController) Create(w http.ResponseWriter, r *http.Request) {
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

func (c *DispositivoController) List(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.List(r.Context())
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}

func (c *DispositivoController) Get(w http.ResponseWriter, r *http.Request) {
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

func (c *DispositivoController) Update(w http.ResponseWriter, r *http.Request) {
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

func (c *DispositivoController) Baja(w http.ResponseWriter, r *http.Request) {
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
