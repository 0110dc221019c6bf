package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/models"
)

const sessionColumns = `session_id, user_id, title, tags, json_file_url, status, created_at, updated_at`

// SessionReadRepository provides read-only access to session rows.
type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// ListPublished returns all published sessions joined with the owner's
// username, newest first.
func (r *SessionReadRepository) ListPublished(ctx context.Context) ([]models.SessionWithAuthor, error) {
	const query = `
		SELECT s.session_id, s.user_id, s.title, s.tags, s.json_file_url, s.status, s.created_at, s.updated_at,
		       u.username AS author
		FROM sessions s
		JOIN users u ON u.user_id = s.user_id
		WHERE s.status = 'published'
		ORDER BY s.created_at DESC
	`

	sessions := []models.SessionWithAuthor{}
	err := r.db.SelectContext(ctx, &sessions, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(sessions),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// ListByOwner returns all sessions owned by ownerID, drafts included,
// most recently updated first.
func (r *SessionReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.SessionDB, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	sessions := []models.SessionDB{}
	err := r.db.SelectContext(ctx, &sessions, query, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list sessions by owner", "user_id", ownerID, "error", err)
		return nil, err
	}

	return sessions, nil
}

// GetOwned returns the session with the given id only when it is owned by
// ownerID. Returns nil without error when no such row exists; a row owned by
// someone else is indistinguishable from a missing one.
func (r *SessionReadRepository) GetOwned(ctx context.Context, ownerID, sessionID uuid.UUID) (*models.SessionDB, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE session_id = $1 AND user_id = $2
	`

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, sessionID, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get session", "session_id", sessionID, "error", err)
		return nil, err
	}

	return &session, nil
}

// SessionWriteRepository provides write access to session rows.
type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Insert creates a new session row with the given status.
func (r *SessionWriteRepository) Insert(ctx context.Context, ownerID uuid.UUID, title string, tags models.Tags, jsonFileURL, status string) (*models.SessionDB, error) {
	const query = `
		INSERT INTO sessions (session_id, user_id, title, tags, json_file_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + sessionColumns

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, uuid.New(), ownerID, title, tags, jsonFileURL, status)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, title, status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// UpsertDraftByTitle creates a draft or, when the owner already has a draft
// with the exact same title, updates that draft in place. The conflict target
// is the partial unique index on (user_id, title) WHERE status='draft', so two
// concurrent autosaves with the same title converge onto one row.
func (r *SessionWriteRepository) UpsertDraftByTitle(ctx context.Context, ownerID uuid.UUID, title string, tags models.Tags, jsonFileURL string) (*models.SessionDB, error) {
	const query = `
		INSERT INTO sessions (session_id, user_id, title, tags, json_file_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'draft', NOW(), NOW())
		ON CONFLICT (user_id, title) WHERE status = 'draft'
		DO UPDATE SET tags = EXCLUDED.tags,
		              json_file_url = EXCLUDED.json_file_url,
		              updated_at = NOW()
		RETURNING ` + sessionColumns

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, uuid.New(), ownerID, title, tags, jsonFileURL)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// UpdateOwned overwrites title, tags and url of an id-addressed session,
// only when owned by ownerID. An empty status keeps the current one;
// otherwise the row transitions to the given status. Returns nil without
// error when the row does not exist or is owned by someone else.
func (r *SessionWriteRepository) UpdateOwned(ctx context.Context, ownerID, sessionID uuid.UUID, title string, tags models.Tags, jsonFileURL, status string) (*models.SessionDB, error) {
	const query = `
		UPDATE sessions
		SET title = $3,
		    tags = $4,
		    json_file_url = $5,
		    status = CASE WHEN $6 = '' THEN status ELSE $6 END,
		    updated_at = NOW()
		WHERE session_id = $1 AND user_id = $2
		RETURNING ` + sessionColumns

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, sessionID, ownerID, title, tags, jsonFileURL, status)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID, ownerID, title, status},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	return &session, nil
}

// DeleteOwned removes the session permanently when owned by ownerID.
// Reports whether a row was deleted.
func (r *SessionWriteRepository) DeleteOwned(ctx context.Context, ownerID, sessionID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM sessions
		WHERE session_id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, sessionID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", sessionID, "error", err)
		return false, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}
