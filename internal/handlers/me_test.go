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

	"github.com/arvyax/wellness-sessions/internal/middlewares"
	"github.com/arvyax/wellness-sessions/internal/models"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		authenticated bool
		mockSetup     func(m *MockMeUserGetter)
		expectedCode  int
		checkBody     func(t *testing.T, body []byte)
	}{
		{
			name:          "success",
			authenticated: true,
			mockSetup: func(m *MockMeUserGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, Username: "john", Email: "john@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp MeResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "john", resp.User.Username)
				assert.Equal(t, userID, resp.User.ID)
			},
		},
		{
			name:          "no user id in context",
			authenticated: false,
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "user deleted after token issued",
			authenticated: true,
			mockSetup: func(m *MockMeUserGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(nil, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:          "lookup error",
			authenticated: true,
			mockSetup: func(m *MockMeUserGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := NewMockMeUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockUsers)
			}

			handler := NewMeHandler(mockUsers)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.authenticated {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
