package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/middlewares"
	"github.com/arvyax/wellness-sessions/internal/models"
)

// MeUserGetter resolves the authenticated user's record.
type MeUserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// MeResponse represents the current-user response
// swagger:model MeResponse
type MeResponse struct {
	User *models.UserPublic `json:"user"`
}

// NewMeHandler returns an HTTP handler for the current-user endpoint.
// @Summary Current user
// @Description Returns the profile of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(users MeUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get user", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{User: user.Public()})
	}
}
