package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobtracker_backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var stubVerifier = auth.VerifierFunc(func(_ context.Context, raw string) (*auth.Identity, error) {
	switch raw {
	case "good":
		return &auth.Identity{Subject: "user-1", Email: "u@example.com"}, nil
	case "outage":
		return nil, fmt.Errorf("%w: provider returned 502", auth.ErrProviderUnavailable)
	}
	return nil, auth.ErrInvalidToken
})

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(stubVerifier, nil)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": GetUserID(c), "email": c.GetString(EmailKey)})
	})
	r.GET("/me", handlers...)
	return r
}

func doGet(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := protectedRouter()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic Zm9vOmJhcg==", http.StatusUnauthorized},
		{"empty bearer", "Bearer   ", http.StatusUnauthorized},
		{"rejected token", "Bearer bad", http.StatusForbidden},
		{"provider outage", "Bearer outage", http.StatusServiceUnavailable},
		{"valid token", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAuthMiddleware_SetsIdentity(t *testing.T) {
	w := doGet(protectedRouter(), "Bearer good")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["user"])
	assert.Equal(t, "u@example.com", body["email"])
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestAuthMiddleware_ErrorBody(t *testing.T) {
	w := doGet(protectedRouter(), "")

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	assert.Equal(t, "No token provided", body.Error.Message)
}

func TestAuthMiddleware_ProviderOutage(t *testing.T) {
	w := doGet(protectedRouter(), "Bearer outage")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	assert.NotContains(t, w.Body.String(), "502")
}

func TestRateLimit(t *testing.T) {
	r := protectedRouter(RateLimit(NewRateLimiter(0.001, 2)))

	assert.Equal(t, http.StatusOK, doGet(r, "Bearer good").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "Bearer good").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "Bearer good").Code)
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	assert.True(t, rl.Allow("alice"))
	assert.False(t, rl.Allow("alice"))
	assert.True(t, rl.Allow("bob"))
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	generated := w.Header().Get("X-Request-ID")
	assert.NotEqual(t, "<script>", generated)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
