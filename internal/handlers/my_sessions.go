package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/middlewares"
	"github.com/arvyax/wellness-sessions/internal/models"
)

// OwnedLister defines the interface that the service must implement.
type OwnedLister interface {
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]models.SessionDB, error)
}

// NewMySessionsHandler returns an HTTP handler listing the authenticated
// user's sessions, drafts included.
// @Summary List own sessions
// @Description Returns the authenticated user's sessions in both draft and published state
// @Tags sessions
// @Produce json
// @Success 200 {object} handlers.SessionsResponse "Owned sessions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /sessions/my-sessions [get]
// @Security BearerAuth
func NewMySessionsHandler(svc OwnedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ownerID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		sessions, err := svc.ListOwned(ctx, ownerID)
		if err != nil {
			logger.Log.Errorw("failed to list owned sessions", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		out := make([]*models.SessionPublic, 0, len(sessions))
		for i := range sessions {
			out = append(out, sessions[i].Public())
		}

		writeJSON(w, http.StatusOK, SessionsResponse{Sessions: out})
	}
}
