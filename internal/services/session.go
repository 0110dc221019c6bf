package services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/models"
	"github.com/arvyax/wellness-sessions/internal/repositories"
)

// ErrSessionNotFound covers both nonexistent sessions and sessions owned by
// another user, so callers cannot probe for other users' records.
var ErrSessionNotFound = errors.New("session not found")

const (
	maxTitleLen = 100
	maxTagLen   = 20
)

// SessionInput carries the client-supplied fields of a save-draft or publish
// call. SessionID is nil when the editor has not been assigned one yet.
type SessionInput struct {
	SessionID   *uuid.UUID
	Title       string
	Tags        []string
	JSONFileURL string
}

// SessionReader defines read-only operations for sessions.
type SessionReader interface {
	ListPublished(ctx context.Context) ([]models.SessionWithAuthor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.SessionDB, error)
	GetOwned(ctx context.Context, ownerID, sessionID uuid.UUID) (*models.SessionDB, error)
}

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Insert(ctx context.Context, ownerID uuid.UUID, title string, tags models.Tags, jsonFileURL, status string) (*models.SessionDB, error)
	UpsertDraftByTitle(ctx context.Context, ownerID uuid.UUID, title string, tags models.Tags, jsonFileURL string) (*models.SessionDB, error)
	UpdateOwned(ctx context.Context, ownerID, sessionID uuid.UUID, title string, tags models.Tags, jsonFileURL, status string) (*models.SessionDB, error)
	DeleteOwned(ctx context.Context, ownerID, sessionID uuid.UUID) (bool, error)
}

// SessionService implements the draft/publish workflow.
type SessionService struct {
	reader SessionReader
	writer SessionWriter
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(reader SessionReader, writer SessionWriter) *SessionService {
	return &SessionService{
		reader: reader,
		writer: writer,
	}
}

// ListPublished returns every published session with its author's username,
// newest first. No authentication required.
func (svc *SessionService) ListPublished(ctx context.Context) ([]models.SessionWithAuthor, error) {
	return svc.reader.ListPublished(ctx)
}

// ListOwned returns all sessions owned by ownerID, drafts included.
func (svc *SessionService) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]models.SessionDB, error) {
	return svc.reader.ListByOwner(ctx, ownerID)
}

// GetOwned returns a single owned session or ErrSessionNotFound.
func (svc *SessionService) GetOwned(ctx context.Context, ownerID, sessionID uuid.UUID) (*models.SessionDB, error) {
	session, err := svc.reader.GetOwned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func validateSessionInput(in *SessionInput) (models.Tags, ValidationErrors) {
	var errs ValidationErrors

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	} else if len(in.Title) > maxTitleLen {
		errs = append(errs, FieldError{Field: "title", Message: "Title cannot exceed 100 characters"})
	}

	tags := make(models.Tags, 0, len(in.Tags))
	for _, tag := range in.Tags {
		tag = strings.TrimSpace(tag)
		if len(tag) > maxTagLen {
			errs = append(errs, FieldError{Field: "tags", Message: "Each tag cannot exceed 20 characters"})
			break
		}
		tags = append(tags, tag)
	}

	return tags, errs
}

// SaveDraft upserts a draft. With a session id it overwrites the owned
// record in place, keeping its status. Without one, repeated saves with the
// same title converge onto a single draft row instead of spawning
// duplicates; the editor autosaves before it knows its server-side id.
func (svc *SessionService) SaveDraft(ctx context.Context, ownerID uuid.UUID, in SessionInput) (*models.SessionDB, error) {
	tags, errs := validateSessionInput(&in)
	if len(errs) > 0 {
		return nil, errs
	}

	if in.SessionID != nil {
		session, err := svc.writer.UpdateOwned(ctx, ownerID, *in.SessionID, in.Title, tags, in.JSONFileURL, "")
		if err != nil {
			if errors.Is(err, repositories.ErrUniqueViolation) {
				return nil, ValidationErrors{{Field: "title", Message: "A draft with this title already exists"}}
			}
			logger.Log.Errorw("failed to update session", "session_id", *in.SessionID, "err", err)
			return nil, err
		}
		if session == nil {
			return nil, ErrSessionNotFound
		}
		return session, nil
	}

	session, err := svc.writer.UpsertDraftByTitle(ctx, ownerID, in.Title, tags, in.JSONFileURL)
	if err != nil {
		logger.Log.Errorw("failed to upsert draft", "err", err)
		return nil, err
	}
	return session, nil
}

// Publish stores the session as published. The resource URL becomes
// mandatory and must parse as an absolute URL. Unlike SaveDraft there is no
// title-based dedup: published records are addressed by id from then on.
// Published sessions never transition back to draft.
func (svc *SessionService) Publish(ctx context.Context, ownerID uuid.UUID, in SessionInput) (*models.SessionDB, error) {
	tags, errs := validateSessionInput(&in)

	in.JSONFileURL = strings.TrimSpace(in.JSONFileURL)
	if in.JSONFileURL == "" {
		errs = append(errs, FieldError{Field: "json_file_url", Message: "JSON file URL is required"})
	} else if u, err := url.Parse(in.JSONFileURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, FieldError{Field: "json_file_url", Message: "Please provide a valid URL"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if in.SessionID != nil {
		session, err := svc.writer.UpdateOwned(ctx, ownerID, *in.SessionID, in.Title, tags, in.JSONFileURL, models.StatusPublished)
		if err != nil {
			logger.Log.Errorw("failed to publish session", "session_id", *in.SessionID, "err", err)
			return nil, err
		}
		if session == nil {
			return nil, ErrSessionNotFound
		}
		return session, nil
	}

	session, err := svc.writer.Insert(ctx, ownerID, in.Title, tags, in.JSONFileURL, models.StatusPublished)
	if err != nil {
		logger.Log.Errorw("failed to create published session", "err", err)
		return nil, err
	}
	return session, nil
}

// DeleteOwned permanently removes an owned session, or fails with
// ErrSessionNotFound under the same ownership rule as GetOwned.
func (svc *SessionService) DeleteOwned(ctx context.Context, ownerID, sessionID uuid.UUID) error {
	deleted, err := svc.writer.DeleteOwned(ctx, ownerID, sessionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}
