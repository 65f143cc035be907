package handlers

import (
	"violation-tracker/internal/services"

	"go.uber.org/zap"
)

// Handler holds what the route handlers need. It carries no request state.
type Handler struct {
	auth       *services.AuthService
	violations *services.ViolationService
	log        *zap.SugaredLogger
}

func New(auth *services.AuthService, violations *services.ViolationService, log *zap.SugaredLogger) *Handler {
	return &Handler{
		auth:       auth,
		violations: violations,
		log:        log,
	}
}
