package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/models"
)

// UserReadRepository provides read-only access to user rows.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first user matching the given username or
// email. Either argument may be nil. Returns nil without error when no user
// matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, reset_token, reset_token_expires_at, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, reset_token, reset_token_expires_at, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get user by id", "user_id", userID, "error", err)
		return nil, err
	}

	return &user, nil
}

// GetByValidResetToken returns the user holding the given reset token if it
// has not expired yet. Returns nil without error when no such user exists.
// The token value itself is never logged.
func (r *UserReadRepository) GetByValidResetToken(ctx context.Context, token string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, reset_token, reset_token_expires_at, created_at, updated_at
		FROM users
		WHERE reset_token = $1
		  AND reset_token_expires_at > NOW()
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to look up reset token", "error", err)
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository provides write access to user rows.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its generated id. Uniqueness of
// username and email is enforced by the schema.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING user_id
	`

	var userID uuid.UUID
	err := r.db.GetContext(ctx, &userID, query, username, email, passwordHash)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		return uuid.Nil, mapUniqueViolation(err)
	}

	return userID, nil
}

// SetResetToken stores a reset token on the user, overwriting any
// outstanding one. Only the newest token is ever valid.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	const query = `
		UPDATE users
		SET reset_token = $2,
		    reset_token_expires_at = $3,
		    updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, token, expiresAt)
	if err != nil {
		logger.Log.Errorw("failed to set reset token", "user_id", userID, "error", err)
	}
	return err
}

// ConsumeResetToken atomically replaces the password hash and clears the
// reset-token fields, but only while the token still matches and has not
// expired. Reports whether a row was claimed; under concurrent consumption
// of the same token exactly one caller wins.
func (r *UserWriteRepository) ConsumeResetToken(ctx context.Context, token, passwordHash string) (bool, error) {
	const query = `
		UPDATE users
		SET password_hash = $2,
		    reset_token = NULL,
		    reset_token_expires_at = NULL,
		    updated_at = NOW()
		WHERE reset_token = $1
		  AND reset_token_expires_at > NOW()
	`

	res, err := r.db.ExecContext(ctx, query, token, passwordHash)
	if err != nil {
		logger.Log.Errorw("failed to consume reset token", "error", err)
		return false, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}
