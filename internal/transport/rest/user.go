package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateTargetLevel(ctx context.Context, input user.UpdateTargetLevelInput) (*domain.User, error)
}

// UserHandler serves user profile REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateTargetLevelRequest struct {
	TargetLevel string `json:"targetLevel"`
}

// Profile handles GET /users/me.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateTargetLevel handles PATCH /users/me/target-level.
func (h *UserHandler) UpdateTargetLevel(w http.ResponseWriter, r *http.Request) {
	var req updateTargetLevelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateTargetLevel(r.Context(), user.UpdateTargetLevelInput{
		TargetLevel: domain.Level(req.TargetLevel),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}
