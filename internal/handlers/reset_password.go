package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/services"
)

// PasswordResetConsumer defines the interface that the service must implement.
type PasswordResetConsumer interface {
	ConsumePasswordReset(ctx context.Context, token, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for consuming a reset token
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Reset token from the emailed link
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// ResetPasswordResponse represents a successful password reset
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	// Success message
	// example: Password has been reset successfully
	Message string `json:"message"`
}

// NewResetPasswordHandler returns an HTTP handler that consumes a reset
// token and sets the new password.
// @Summary Reset password
// @Description Consumes a single-use reset token; a second attempt with the same token fails
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} handlers.ResetPasswordResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired reset token / validation"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetConsumer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.ConsumePasswordReset(r.Context(), req.Token, req.Password); err != nil {
			switch {
			case writeValidationErrors(w, err):
			case errors.Is(err, services.ErrInvalidOrExpiredToken):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired reset token"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, ResetPasswordResponse{Message: "Password has been reset successfully"})
	}
}
