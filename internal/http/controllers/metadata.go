package controllers

import (
	"net/http"

	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/http/services"
)

type MetadataController struct {
	svc *services.MetadataService
}

func NewMetadataController(svc *services.MetadataService) *MetadataController {
	return &MetadataController{svc: svc}
}

// Metadata maneja GET /api/metadata.
func (c *MetadataController) Metadata(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.Metadata(r.Context())
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}

// Status maneja GET /api/status.
func (c *MetadataController) Status(w http.ResponseWriter, r *http.Request) {
	apperr.WriteJSON(w, http.StatusOK, c.svc.Status(r.Context()))
}
