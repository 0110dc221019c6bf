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

// DraftSaver defines the interface that the service must implement.
type DraftSaver interface {
	SaveDraft(ctx context.Context, ownerID uuid.UUID, in services.SessionInput) (*models.SessionDB, error)
}

// SaveDraftRequest represents the JSON body for an autosave call
// swagger:model SaveDraftRequest
type SaveDraftRequest struct {
	// Existing session id, omitted while the editor has not been assigned one
	SessionID *uuid.UUID `json:"sessionId,omitempty"`

	// Title
	// required: true
	// example: Morning Yoga
	Title string `json:"title"`

	// Ordered tags
	// example: ["calm","stretch"]
	Tags []string `json:"tags,omitempty"`

	// Resource URL, optional for drafts
	JSONFileURL string `json:"json_file_url,omitempty"`
}

// NewSaveDraftHandler returns an HTTP handler for the autosave endpoint.
// Repeated saves with the same title and no session id converge onto one
// draft row.
// @Summary Save a draft session
// @Description Creates or updates a draft; saves without an id dedupe by exact title
// @Tags sessions
// @Accept json
// @Produce json
// @Param saveDraftRequest body handlers.SaveDraftRequest true "Draft payload"
// @Success 200 {object} handlers.SessionResponse "Draft saved"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Router /sessions/my-sessions/save-draft [post]
// @Security BearerAuth
func NewSaveDraftHandler(svc DraftSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ownerID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SaveDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		session, err := svc.SaveDraft(ctx, ownerID, services.SessionInput{
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
				logger.Log.Errorw("failed to save draft", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{
			Message: "Draft saved successfully",
			Session: session.Public(),
		})
	}
}
