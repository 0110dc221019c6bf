package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/middlewares"
	"github.com/arvyax/wellness-sessions/internal/models"
	"github.com/arvyax/wellness-sessions/internal/services"
)

// OwnedGetter defines the interface that the service must implement.
type OwnedGetter interface {
	GetOwned(ctx context.Context, ownerID, sessionID uuid.UUID) (*models.SessionDB, error)
}

// SessionResponse represents a single-session response
// swagger:model SessionResponse
type SessionResponse struct {
	// Optional success message
	Message string `json:"message,omitempty"`

	Session *models.SessionPublic `json:"session"`
}

// NewGetMySessionHandler returns an HTTP handler for fetching one owned
// session. Records owned by other users surface as 404, never 403.
// @Summary Get an owned session
// @Description Returns a single session owned by the authenticated user
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} handlers.SessionResponse "Owned session"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Router /sessions/my-sessions/{id} [get]
// @Security BearerAuth
func NewGetMySessionHandler(svc OwnedGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ownerID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Session not found"})
			return
		}

		session, err := svc.GetOwned(ctx, ownerID, sessionID)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Session not found"})
				return
			}
			logger.Log.Errorw("failed to get session", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{Session: session.Public()})
	}
}
