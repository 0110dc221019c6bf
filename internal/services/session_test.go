package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/arvyax/wellness-sessions/internal/models"
	"github.com/arvyax/wellness-sessions/internal/repositories"
	"github.com/arvyax/wellness-sessions/internal/services"
)

func TestSessionService_SaveDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	sessionID := uuid.New()

	tests := []struct {
		name      string
		input     services.SessionInput
		mockSetup func(w *services.MockSessionWriter)
		wantErr   error
		wantField string
	}{
		{
			name:  "new draft goes through the title upsert",
			input: services.SessionInput{Title: "  Morning Yoga  ", Tags: []string{" calm ", "yoga"}},
			mockSetup: func(w *services.MockSessionWriter) {
				w.EXPECT().
					UpsertDraftByTitle(gomock.Any(), ownerID, "Morning Yoga", models.Tags{"calm", "yoga"}, "").
					Return(&models.SessionDB{SessionID: uuid.New(), Title: "Morning Yoga", Status: models.StatusDraft}, nil)
			},
		},
		{
			name:  "existing draft updated in place",
			input: services.SessionInput{SessionID: &sessionID, Title: "Morning Yoga"},
			mockSetup: func(w *services.MockSessionWriter) {
				w.EXPECT().
					UpdateOwned(gomock.Any(), ownerID, sessionID, "Morning Yoga", models.Tags{}, "", "").
					Return(&models.SessionDB{SessionID: sessionID, Title: "Morning Yoga", Status: models.StatusDraft}, nil)
			},
		},
		{
			name:  "session id not owned",
			input: services.SessionInput{SessionID: &sessionID, Title: "Morning Yoga"},
			mockSetup: func(w *services.MockSessionWriter) {
				w.EXPECT().
					UpdateOwned(gomock.Any(), ownerID, sessionID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: services.ErrSessionNotFound,
		},
		{
			name:  "rename collides with another draft",
			input: services.SessionInput{SessionID: &sessionID, Title: "Morning Yoga"},
			mockSetup: func(w *services.MockSessionWriter) {
				w.EXPECT().
					UpdateOwned(gomock.Any(), ownerID, sessionID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, repositories.ErrUniqueViolation)
			},
			wantField: "title",
		},
		{
			name:      "empty title",
			input:     services.SessionInput{Title: "   "},
			wantField: "title",
		},
		{
			name:      "title too long",
			input:     services.SessionInput{Title: strings.Repeat("x", 101)},
			wantField: "title",
		},
		{
			name:      "tag too long",
			input:     services.SessionInput{Title: "Morning Yoga", Tags: []string{strings.Repeat("x", 21)}},
			wantField: "tags",
		},
		{
			name:  "writer error propagates",
			input: services.SessionInput{Title: "Morning Yoga"},
			mockSetup: func(w *services.MockSessionWriter) {
				w.EXPECT().
					UpsertDraftByTitle(gomock.Any(), ownerID, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockSessionWriter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockWriter)
			}

			svc := services.NewSessionService(services.NewMockSessionReader(ctrl), mockWriter)

			session, err := svc.SaveDraft(context.Background(), ownerID, tt.input)
			switch {
			case tt.wantField != "":
				var verrs services.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
				assert.Equal(t, tt.wantField, verrs[0].Field)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, session)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, session)
			}
		})
	}
}

func TestSessionService_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	sessionID := uuid.New()
	fileURL := "https://cdn.example.com/sessions/yoga.json"

	tests := []struct {
		name      string
		input     services.SessionInput
		mockSetup func(w *services.MockSessionWriter)
		wantErr   error
		wantField string
	}{
		{
			name:  "publish without id inserts a new published row",
			input: services.SessionInput{Title: "Morning Yoga", JSONFileURL: fileURL},
			mockSetup: func(w *services.MockSessionWriter) {
				w.EXPECT().
					Insert(gomock.Any(), ownerID, "Morning Yoga", models.Tags{}, fileURL, models.StatusPublished).
					Return(&models.SessionDB{SessionID: uuid.New(), Status: models.StatusPublished}, nil)
			},
		},
		{
			name:  "publish with id promotes the draft",
			input: services.SessionInput{SessionID: &sessionID, Title: "Morning Yoga", JSONFileURL: fileURL},
			mockSetup: func(w *services.MockSessionWriter) {
				w.EXPECT().
					UpdateOwned(gomock.Any(), ownerID, sessionID, "Morning Yoga", models.Tags{}, fileURL, models.StatusPublished).
					Return(&models.SessionDB{SessionID: sessionID, Status: models.StatusPublished}, nil)
			},
		},
		{
			name:  "session id not owned",
			input: services.SessionInput{SessionID: &sessionID, Title: "Morning Yoga", JSONFileURL: fileURL},
			mockSetup: func(w *services.MockSessionWriter) {
				w.EXPECT().
					UpdateOwned(gomock.Any(), ownerID, sessionID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: services.ErrSessionNotFound,
		},
		{
			name:      "missing url",
			input:     services.SessionInput{Title: "Morning Yoga"},
			wantField: "json_file_url",
		},
		{
			name:      "relative url",
			input:     services.SessionInput{Title: "Morning Yoga", JSONFileURL: "/sessions/yoga.json"},
			wantField: "json_file_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockSessionWriter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockWriter)
			}

			svc := services.NewSessionService(services.NewMockSessionReader(ctrl), mockWriter)

			session, err := svc.Publish(context.Background(), ownerID, tt.input)
			switch {
			case tt.wantField != "":
				var verrs services.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
				assert.Equal(t, tt.wantField, verrs[0].Field)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, session)
			default:
				assert.NoError(t, err)
				assert.Equal(t, models.StatusPublished, session.Status)
			}
		})
	}
}

func TestSessionService_GetOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	sessionID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader := services.NewMockSessionReader(ctrl)
		mockReader.EXPECT().
			GetOwned(gomock.Any(), ownerID, sessionID).
			Return(&models.SessionDB{SessionID: sessionID}, nil)

		svc := services.NewSessionService(mockReader, services.NewMockSessionWriter(ctrl))

		session, err := svc.GetOwned(context.Background(), ownerID, sessionID)
		assert.NoError(t, err)
		assert.Equal(t, sessionID, session.SessionID)
	})

	t.Run("not owned", func(t *testing.T) {
		mockReader := services.NewMockSessionReader(ctrl)
		mockReader.EXPECT().
			GetOwned(gomock.Any(), ownerID, sessionID).
			Return(nil, nil)

		svc := services.NewSessionService(mockReader, services.NewMockSessionWriter(ctrl))

		_, err := svc.GetOwned(context.Background(), ownerID, sessionID)
		assert.ErrorIs(t, err, services.ErrSessionNotFound)
	})
}

func TestSessionService_DeleteOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	sessionID := uuid.New()

	tests := []struct {
		name    string
		deleted bool
		repoErr error
		wantErr error
	}{
		{name: "deleted", deleted: true},
		{name: "not owned", deleted: false, wantErr: services.ErrSessionNotFound},
		{name: "writer error", repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockSessionWriter(ctrl)
			mockWriter.EXPECT().
				DeleteOwned(gomock.Any(), ownerID, sessionID).
				Return(tt.deleted, tt.repoErr)

			svc := services.NewSessionService(services.NewMockSessionReader(ctrl), mockWriter)

			err := svc.DeleteOwned(context.Background(), ownerID, sessionID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionService_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	mockReader := services.NewMockSessionReader(ctrl)
	mockReader.EXPECT().
		ListPublished(gomock.Any()).
		Return([]models.SessionWithAuthor{{Author: "alice"}}, nil)
	mockReader.EXPECT().
		ListByOwner(gomock.Any(), ownerID).
		Return([]models.SessionDB{{Title: "Morning Yoga"}}, nil)

	svc := services.NewSessionService(mockReader, services.NewMockSessionWriter(ctrl))

	published, err := svc.ListPublished(context.Background())
	assert.NoError(t, err)
	assert.Len(t, published, 1)

	owned, err := svc.ListOwned(context.Background(), ownerID)
	assert.NoError(t, err)
	assert.Len(t, owned, 1)
}
