// Package controllers adapta HTTP a los services: deserializa, delega y
// escribe. Acá no vive lógica de negocio.
package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
)

const maxBodySize = 64 * 1024 // 64KB

// decodeJSON deserializa el body con límite de tamaño y campos al pie de la
// letra del contrato.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apperr.ErrInvalidJSON.WithCause(err)
	}
	return nil
}

// pathID parsea el parámetro :id de la ruta. Cualquier cosa que no sea un
// entero positivo es 400, nunca llega a la base.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.ErrInvalidID
	}
	return id, nil
}
