package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/middlewares"
	"github.com/arvyax/wellness-sessions/internal/models"
	"github.com/arvyax/wellness-sessions/internal/services"
)

// SessionPublisher defines the interface that the service must implement.
type SessionPublisher interface {
	Publish(ctx context.Context, ownerID uuid.UUID, in services.SessionInput) (*models.SessionDB, error)
}

// PublishSessionRequest represents the JSON body for publishing a session
// swagger:model PublishSessionRequest
type PublishSessionRequest struct {
	// Existing session id; omitted to publish a brand new session
	SessionID *uuid.UUID `json:"sessionId,omitempty"`

	// Title
	// required: true
	// example: Morning Yoga
	Title string `json:"title"`

	// Ordered tags
	// example: ["calm","stretch"]
	Tags []string `json:"tags,omitempty"`

	// Resource URL, required and validated for published sessions
	// required: true
	// example: https://cdn.example.com/sessions/yoga.json
	JSONFileURL string `json:"json_file_url"`
}

// NewPublishSessionHandler returns an HTTP handler for publishing a session.
// @Summary Publish a session
// @Description Publishes a session; the resource URL becomes required and must be a valid URL
// @Tags sessions
// @Accept json
// @Produce json
// @Param publishSessionRequest body handlers.PublishSessionRequest true "Publish payload"
// @Success 200 {object} handlers.SessionResponse "Session published"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Router /sessions/my-sessions/publish [post]
// @Security BearerAuth
func NewPublishSessionHandler(svc SessionPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ownerID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req PublishSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		session, err := svc.Publish(ctx, ownerID, services.SessionInput{
			SessionID:   req.SessionID,
			Title:       req.Title,
			Tags:        req.Tags,
			JSONFileURL: req.JSONFileURL,
		})
		if err != nil {
			switch {
			case writeValidationErrors(w, err):
			case errors.Is(err, services.ErrSessionNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Session not found"})
			default:
				logger.Log.Errorw("failed to publish session", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{
			Message: "Session published successfully",
			Session: session.Public(),
		})
	}
}
