package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/middlewares"
	"github.com/arvyax/wellness-sessions/internal/services"
)

// OwnedDeleter defines the interface that the service must implement.
type OwnedDeleter interface {
	DeleteOwned(ctx context.Context, ownerID, sessionID uuid.UUID) error
}

// DeleteSessionResponse represents a successful deletion
// swagger:model DeleteSessionResponse
type DeleteSessionResponse struct {
	// Success message
	// example: Session deleted successfully
	Message string `json:"message"`
}

// NewDeleteSessionHandler returns an HTTP handler for deleting an owned
// session. Other users' records surface as 404, never 403.
// @Summary Delete an owned session
// @Description Permanently removes a session owned by the authenticated user
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} handlers.DeleteSessionResponse "Session deleted"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Router /sessions/my-sessions/{id} [delete]
// @Security BearerAuth
func NewDeleteSessionHandler(svc OwnedDeleter) http.HandlerFunc {
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

		if err := svc.DeleteOwned(ctx, ownerID, sessionID); err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Session not found"})
				return
			}
			logger.Log.Errorw("failed to delete session", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, DeleteSessionResponse{Message: "Session deleted successfully"})
	}
}
