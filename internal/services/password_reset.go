package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/models"
)

// ErrInvalidOrExpiredToken collapses wrong, expired and already-consumed
// reset tokens into one indistinguishable outcome.
var ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

const resetTokenBytes = 32

// ResetUserReader defines user lookups needed by the reset flow.
type ResetUserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error)
	GetByValidResetToken(ctx context.Context, token string) (*models.UserDB, error)
}

// ResetTokenWriter defines the reset-token mutations.
type ResetTokenWriter interface {
	SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, token, passwordHash string) (bool, error)
}

// ResetMailer delivers the reset link. Send is fire-and-forget from the
// caller's point of view.
type ResetMailer interface {
	Send(ctx context.Context, email, username, token string) error
}

// PasswordResetService handles the forgot-password token lifecycle.
type PasswordResetService struct {
	reader   ResetUserReader
	writer   ResetTokenWriter
	mailer   ResetMailer
	tokenTTL time.Duration
}

// NewPasswordResetService creates a new PasswordResetService instance.
func NewPasswordResetService(reader ResetUserReader, writer ResetTokenWriter, mailer ResetMailer, tokenTTL time.Duration) *PasswordResetService {
	return &PasswordResetService{
		reader:   reader,
		writer:   writer,
		mailer:   mailer,
		tokenTTL: tokenTTL,
	}
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// RequestPasswordReset issues a fresh reset token for the account behind
// email, overwriting any outstanding one, and mails the reset link. The
// outcome is identical whether or not the email is registered; delivery
// failures are logged and swallowed. The token is never returned or logged.
func (svc *PasswordResetService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return ValidationErrors{{Field: "email", Message: "Please provide a valid email"}}
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to look up user for password reset", "err", err)
		return err
	}
	if user == nil {
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return err
	}

	if err := svc.writer.SetResetToken(ctx, user.UserID, token, time.Now().Add(svc.tokenTTL)); err != nil {
		return err
	}

	// Delivery must not block or fail the response.
	go func(email, username, token string) {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := svc.mailer.Send(sendCtx, email, username, token); err != nil {
			logger.Log.Errorw("failed to send reset email", "err", err)
		}
	}(user.Email, user.Username, token)

	return nil
}

// VerifyResetToken checks that exactly one user holds the token and it has
// not expired. It has no side effects, so the client can gate the reset form
// without consuming the token.
func (svc *PasswordResetService) VerifyResetToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidOrExpiredToken
	}

	user, err := svc.reader.GetByValidResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidOrExpiredToken
	}

	return nil
}

// ConsumePasswordReset replaces the user's password and clears the reset
// token in one conditional write. Of two concurrent consumptions of the same
// token exactly one succeeds; the other fails with ErrInvalidOrExpiredToken.
func (svc *PasswordResetService) ConsumePasswordReset(ctx context.Context, token, newPassword string) error {
	var errs ValidationErrors
	if token == "" {
		errs = append(errs, FieldError{Field: "token", Message: "Reset token is required"})
	}
	if len(newPassword) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	}
	if len(errs) > 0 {
		return errs
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	claimed, err := svc.writer.ConsumeResetToken(ctx, token, string(hashedPassword))
	if err != nil {
		return err
	}
	if !claimed {
		return ErrInvalidOrExpiredToken
	}

	return nil
}
