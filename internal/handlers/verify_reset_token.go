package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/services"
)

// ResetTokenVerifier defines the interface that the service must implement.
type ResetTokenVerifier interface {
	VerifyResetToken(ctx context.Context, token string) error
}

// VerifyResetTokenResponse represents a successful verification response
// swagger:model VerifyResetTokenResponse
type VerifyResetTokenResponse struct {
	// Success message
	// example: Valid reset token
	Message string `json:"message"`
}

// NewVerifyResetTokenHandler returns an HTTP handler that checks a reset
// token without consuming it, so the client can gate the reset form.
// @Summary Verify a password-reset token
// @Description Succeeds only for a matching, non-expired reset token; has no side effects
// @Tags auth
// @Produce json
// @Param token path string true "Reset token"
// @Success 200 {object} handlers.VerifyResetTokenResponse "Token is valid"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired reset token"
// @Router /auth/verify-reset-token/{token} [get]
func NewVerifyResetTokenHandler(svc ResetTokenVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		if err := svc.VerifyResetToken(r.Context(), token); err != nil {
			if errors.Is(err, services.ErrInvalidOrExpiredToken) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired reset token"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, VerifyResetTokenResponse{Message: "Valid reset token"})
	}
}
