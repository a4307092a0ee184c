package controllers

import (
	"net/http"

	dto "github.com/dropDatabas3/vigilia/internal/http/dto/abonados"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/http/services"
)

type AbonadoController struct {
	svc *services.AbonadoService
}

func NewAbonadoController(svc *services.AbonadoService) *AbonadoController {
	return &AbonadoController{svc: svc}
}

func (c *AbonadoController) Create(w http.ResponseWriter, r *http.Request) {
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

func (c *AbonadoController) List(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.List(r.Context())
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}

func (c *AbonadoController) Get(w http.ResponseWriter, r *http.Request) {
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

func (c *AbonadoController) Update(w http.ResponseWriter, r *http.Request) {
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

func (c *AbonadoController) Baja(w http.ResponseWriter, r *http.Request) {
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
