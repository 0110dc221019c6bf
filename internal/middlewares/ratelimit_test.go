package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewFixedWindowLimiter(client, "ratelimit", limit, window), mr
}

func TestFixedWindowLimiter_Allow(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed, "request over the limit must be rejected")

	// A different key has its own counter.
	allowed, err = limiter.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_WindowExpiry(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)

	mr.FastForward(time.Minute + time.Second)

	allowed, err = limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed, "counter must reset after the window")
}

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		mockSetup      func(m *MockLimiter)
		expectedStatus int
	}{
		{
			name: "allowed",
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().
					Allow(gomock.Any(), "1.2.3.4").
					Return(true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "over the limit",
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().
					Allow(gomock.Any(), "1.2.3.4").
					Return(false, nil)
			},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name: "limiter error fails open",
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().
					Allow(gomock.Any(), "1.2.3.4").
					Return(false, errors.New("redis down"))
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLimiter := NewMockLimiter(ctrl)
			tt.mockSetup(mockLimiter)

			mw := RateLimitMiddleware(mockLimiter)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "1.2.3.4:5678"
			rr := httptest.NewRecorder()
			mw(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
