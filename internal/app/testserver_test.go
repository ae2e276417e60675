package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

// testServer runs the full router against the in-memory store.
type testServer struct {
	Server *httptest.Server
}

func newTestServer(t *testing.T, tweak ...func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Auth.JWTSecret = testSecret
	cfg.RateLimit.Enabled = false
	for _, fn := range tweak {
		fn(cfg)
	}

	verifier, err := NewVerifier(cfg)
	require.NoError(t, err)

	router := SetupRouter(cfg, Dependencies{Verifier: verifier})
	ts := &testServer{Server: httptest.NewServer(router)}
	t.Cleanup(ts.Server.Close)
	return ts
}

func tokenFor(t *testing.T, subject string) string {
	t.Helper()
	token, err := auth.MakeToken(subject, subject+"@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

// sendRequest sends body as JSON (a string is sent verbatim) and returns the
// response with its body read.
func (ts *testServer) sendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBody, err := json.Marshal(b)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(resBody)
}

func decode(t *testing.T, raw string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(raw), v), raw)
}
