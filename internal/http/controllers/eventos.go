package controllers

import (
	"net/http"

	dto "github.com/dropDatabas3/vigilia/internal/http/dto/eventos"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/http/services"
)

type EventoController struct {
	svc *services.EventoService
}

func NewEventoController(svc *services.EventoService) *EventoController {
	return &EventoController{svc: svc}
}

func (c *EventoController) Create(w http.ResponseWriter, r *http.Request) {
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

func (c *EventoController) List(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.List(r.Context())
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}

// ListByDispositivo maneja GET /api/eventos/dispositivo/{id}.
func (c *EventoController) ListByDispositivo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	out, err := c.svc.ListByDispositivo(r.Context(), id)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}
