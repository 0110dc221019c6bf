package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/arvyax/wellness-sessions/internal/models"
	"github.com/arvyax/wellness-sessions/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserPublic{ID: userID, Username: "john", Email: "john@example.com"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		checkBody    func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			body: `{"username":"john","email":"john@example.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret1").
					Return("token123", user, nil)
			},
			expectedCode: http.StatusCreated,
			checkBody: func(t *testing.T, body []byte) {
				var resp RegisterResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "User registered successfully", resp.Message)
				assert.Equal(t, "token123", resp.Token)
				assert.Equal(t, "john", resp.User.Username)
			},
		},
		{
			name: "user already exists",
			body: `{"username":"john","email":"john@example.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret1").
					Return("", nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "User with this email or username already exists", resp.Error)
			},
		},
		{
			name: "validation errors",
			body: `{"username":"jo","email":"bad","password":"123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "jo", "bad", "123").
					Return("", nil, services.ValidationErrors{
						{Field: "username", Message: "Username must be between 3 and 30 characters"},
						{Field: "email", Message: "Please provide a valid email"},
						{Field: "password", Message: "Password must be at least 6 characters long"},
					})
			},
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				var resp ValidationErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Len(t, resp.Errors, 3)
				assert.Equal(t, "username", resp.Errors[0].Field)
			},
		},
		{
			name: "internal server error",
			body: `{"username":"john","email":"john@example.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Internal server error", resp.Error)
			},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
