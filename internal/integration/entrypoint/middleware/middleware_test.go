package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/backend/internal/application/adapter"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

type stubTokenService struct{}

func (stubTokenService) GenerateSessionToken(context.Context) (*adapter.SessionToken, error) {
	return &adapter.SessionToken{Token: "good"}, nil
}

func (stubTokenService) ValidateSessionToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	switch token {
	case "good":
		return &adapter.TokenClaims{SessionID: "s1"}, nil
	case "old":
		return nil, domainerror.ErrExpiredToken
	default:
		return nil, domainerror.ErrInvalidToken
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(stubTokenService{}).Authenticate(), func(c *gin.Context) {
		id, _ := GetSessionIDFromContext(c)
		c.String(http.StatusOK, id)
	})

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantBody: "s1"},
		{name: "query token", query: "?access_token=good", wantStatus: http.StatusOK, wantBody: "s1"},
		{name: "invalid query token", query: "?access_token=nope", wantStatus: http.StatusUnauthorized},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer old", wantStatus: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeExpiredToken)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("expected body to contain %q, got %s", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiterWithConfig("SES-010004", 2, time.Minute)
	current := time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	router := gin.New()
	router.POST("/session", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	var last *httptest.ResponseRecorder
	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/session", nil)
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
		return last.Code
	}

	if code := send(); code != http.StatusOK {
		t.Errorf("expected first request allowed, got %d", code)
	}
	if code := send(); code != http.StatusOK {
		t.Errorf("expected second request allowed, got %d", code)
	}
	current = current.Add(15 * time.Second)
	if code := send(); code != http.StatusTooManyRequests {
		t.Errorf("expected third request throttled, got %d", code)
	}
	if got := last.Header().Get("Retry-After"); got != "45" {
		t.Errorf("expected Retry-After 45, got %q", got)
	}
	if !strings.Contains(last.Body.String(), "SES-010004") {
		t.Errorf("expected error code in body, got %s", last.Body.String())
	}

	current = current.Add(2 * time.Minute)
	if code := send(); code != http.StatusOK {
		t.Errorf("expected request allowed after window, got %d", code)
	}

	current = current.Add(2 * time.Minute)
	limiter.Cleanup()
	if len(limiter.windows) != 0 {
		t.Errorf("expected expired entries removed, got %d", len(limiter.windows))
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiterWithConfig("VOI-020003", 0, time.Minute)
	router := gin.New()
	router.POST("/voice", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/voice", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected request %d allowed, got %d", i, w.Code)
		}
	}
}
