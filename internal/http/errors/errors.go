package errors

import (
	"encoding/json"
	"net/http"
)

// envelope es la forma del error en el wire: {message, error}.
type envelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// WriteError escribe la respuesta HTTP para el error dado. Maneja tanto
// *AppError como errores genéricos (que colapsan en 500 sin detalle).
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(envelope{
		Message: appErr.Message,
		Error:   appErr.Code,
	})
}

// WriteJSON escribe una respuesta JSON estándar.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
