package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/arvyax/wellness-sessions/internal/models"
)

func TestListSessionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns published sessions with authors", func(t *testing.T) {
		mockSvc := NewMockPublishedLister(ctrl)
		mockSvc.EXPECT().
			ListPublished(gomock.Any()).
			Return([]models.SessionWithAuthor{
				{
					SessionDB: models.SessionDB{
						SessionID:   uuid.New(),
						Title:       "Morning Yoga",
						Tags:        models.Tags{"calm"},
						JSONFileURL: "https://cdn.example.com/yoga.json",
						Status:      models.StatusPublished,
					},
					Author: "alice",
				},
				{
					SessionDB: models.SessionDB{
						SessionID: uuid.New(),
						Title:     "Evening Meditation",
						Status:    models.StatusPublished,
					},
					Author: "bob",
				},
			}, nil)

		handler := NewListSessionsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp SessionsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Sessions, 2)
		assert.Equal(t, "alice", resp.Sessions[0].Author)
		assert.Equal(t, "Morning Yoga", resp.Sessions[0].Title)
	})

	t.Run("empty list stays a list", func(t *testing.T) {
		mockSvc := NewMockPublishedLister(ctrl)
		mockSvc.EXPECT().
			ListPublished(gomock.Any()).
			Return(nil, nil)

		handler := NewListSessionsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"sessions":[]}`, rr.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockPublishedLister(ctrl)
		mockSvc.EXPECT().
			ListPublished(gomock.Any()).
			Return(nil, errors.New("database failure"))

		handler := NewListSessionsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
