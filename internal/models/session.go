package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Tags is an ordered list of tag strings stored as a JSONB column.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("unsupported type for tags")
	}
}

// SessionDB represents a wellness session record in the database
type SessionDB struct {
	SessionID   uuid.UUID `db:"session_id"`    // Primary key
	UserID      uuid.UUID `db:"user_id"`       // Owner, immutable
	Title       string    `db:"title"`         // Required, max 100 chars
	Tags        Tags      `db:"tags"`          // Ordered tag list
	JSONFileURL string    `db:"json_file_url"` // Required and valid URL once published
	Status      string    `db:"status"`        // draft or published
	CreatedAt   time.Time `db:"created_at"`    // Creation timestamp
	UpdatedAt   time.Time `db:"updated_at"`    // Last update timestamp
}

// SessionWithAuthor is a session row joined with the owner's username.
type SessionWithAuthor struct {
	SessionDB
	Author string `db:"author"`
}

// SessionPublic is the projection of a session returned by the API.
// Author is set only on the public listing.
type SessionPublic struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Tags        Tags      `json:"tags"`
	JSONFileURL string    `json:"json_file_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Author      string    `json:"author,omitempty"`
}

// Public returns the API projection of the session.
func (s *SessionDB) Public() *SessionPublic {
	tags := s.Tags
	if tags == nil {
		tags = Tags{}
	}
	return &SessionPublic{
		ID:          s.SessionID,
		Title:       s.Title,
		Tags:        tags,
		JSONFileURL: s.JSONFileURL,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// Public returns the API projection of the session including the author.
func (s *SessionWithAuthor) Public() *SessionPublic {
	p := s.SessionDB.Public()
	p.Author = s.Author
	return p
}
