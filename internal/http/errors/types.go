package errors

import (
	"fmt"
	"net/http"
)

// AppError define la estructura estándar para errores de la aplicación.
// Code es el identificador estable para clientes; Message es el texto en
// castellano que ve el usuario final.
type AppError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // causa original, para logs; no se expone al cliente
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap permite acceder al error original.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithMessage devuelve una COPIA con otro mensaje, para no mutar las
// variables globales base.
func (e *AppError) WithMessage(format string, args ...any) *AppError {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// WithCause devuelve una COPIA con la causa adjunta.
func (e *AppError) WithCause(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// FromError convierte un error genérico en AppError. Si no lo es, devuelve
// un error interno conservando la causa: nunca filtramos internals de la
// base en la respuesta.
func FromError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrInternal.WithCause(err)
}

// =================================================================================
// LISTA DE ERRORES PREDEFINIDOS
// =================================================================================

var (
	// 400
	ErrValidation = &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "La solicitud contiene datos inválidos o faltantes.",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidJSON = &AppError{
		Code:       "INVALID_JSON",
		Message:    "El cuerpo de la solicitud no es un JSON válido.",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidID = &AppError{
		Code:       "INVALID_ID",
		Message:    "El ID debe ser un número válido.",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrEmptyUpdate = &AppError{
		Code:       "EMPTY_UPDATE",
		Message:    "Se requiere al menos un campo para actualizar.",
		HTTPStatus: http.StatusBadRequest,
	}

	// 401
	ErrInvalidCredentials = &AppError{
		Code:       "INVALID_CREDENTIALS",
		Message:    "Credenciales inválidas.",
		HTTPStatus: http.StatusUnauthorized,
	}
	ErrUserInactive = &AppError{
		Code:       "USER_INACTIVE",
		Message:    "Usuario inactivo. Contacte al administrador.",
		HTTPStatus: http.StatusUnauthorized,
	}
	ErrTokenMissing = &AppError{
		Code:       "TOKEN_MISSING",
		Message:    "Acceso denegado. Se requiere un token de autenticación.",
		HTTPStatus: http.StatusUnauthorized,
	}
	ErrTokenInvalid = &AppError{
		Code:       "TOKEN_INVALID",
		Message:    "Token de autenticación inválido o expirado.",
		HTTPStatus: http.StatusUnauthorized,
	}

	// 403
	ErrForbidden = &AppError{
		Code:       "FORBIDDEN",
		Message:    "Acceso denegado. No tiene los permisos necesarios.",
		HTTPStatus: http.StatusForbidden,
	}

	// 404
	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "El recurso solicitado no fue encontrado.",
		HTTPStatus: http.StatusNotFound,
	}

	// 409
	ErrConflict = &AppError{
		Code:       "CONFLICT",
		Message:    "La solicitud entra en conflicto con el estado actual.",
		HTTPStatus: http.StatusConflict,
	}

	// 429
	ErrRateLimited = &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "Demasiados intentos. Intente más tarde.",
		HTTPStatus: http.StatusTooManyRequests,
	}

	// 500
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "Error interno del servidor.",
		HTTPStatus: http.StatusInternalServerError,
	}
)
