package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arvyax/wellness-sessions/internal/logger"
)

// PasswordResetRequester defines the interface that the service must implement.
type PasswordResetRequester interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// ForgotPasswordRequest represents the JSON body for a reset request
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`
}

// ForgotPasswordResponse represents the generic reset-request response
// swagger:model ForgotPasswordResponse
type ForgotPasswordResponse struct {
	// Generic message returned whether or not the email is registered
	// example: If an account with that email exists, a password reset link has been sent.
	Message string `json:"message"`
}

// NewForgotPasswordHandler returns an HTTP handler for reset requests.
// The response is identical whether or not the email is registered.
// @Summary Request a password reset
// @Description Issues a single-use, time-boxed reset token and emails the reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Reset request"
// @Success 200 {object} handlers.ForgotPasswordResponse "Generic confirmation"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid email"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordResetRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.RequestPasswordReset(r.Context(), req.Email); err != nil {
			if writeValidationErrors(w, err) {
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, ForgotPasswordResponse{
			Message: "If an account with that email exists, a password reset link has been sent.",
		})
	}
}
