package handlers

import (
	"context"
	"net/http"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/models"
)

// PublishedLister defines the interface that the service must implement.
type PublishedLister interface {
	ListPublished(ctx context.Context) ([]models.SessionWithAuthor, error)
}

// SessionsResponse represents a list of sessions
// swagger:model SessionsResponse
type SessionsResponse struct {
	Sessions []*models.SessionPublic `json:"sessions"`
}

// NewListSessionsHandler returns an HTTP handler for the public session feed.
// @Summary List published sessions
// @Description Returns all published wellness sessions with their authors, newest first
// @Tags sessions
// @Produce json
// @Success 200 {object} handlers.SessionsResponse "Published sessions"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /sessions [get]
func NewListSessionsHandler(svc PublishedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := svc.ListPublished(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list published sessions", "err", err)
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
