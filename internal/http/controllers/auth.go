package controllers

import (
	"net/http"

	dto "github.com/dropDatabas3/vigilia/internal/http/dto/auth"
	apperr "github.com/dropDatabas3/vigilia/internal/http/errors"
	"github.com/dropDatabas3/vigilia/internal/http/services"
	"github.com/dropDatabas3/vigilia/internal/observability/logger"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// Login maneja POST /api/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apperr.WriteError(w, err)
		return
	}

	out, err := c.svc.Login(r.Context(), req)
	if err != nil {
		logger.From(r.Context()).Debug("login falló", logger.Err(err))
		apperr.WriteError(w, err)
		return
	}
	apperr.WriteJSON(w, http.StatusOK, out)
}
