package app

import (
	"net/http"
	"strings"
	"testing"

	"jobtracker_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationBody struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Company      string  `json:"company"`
	Position     string  `json:"position"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
	ReminderDate *string `json:"reminderDate"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func TestApplicationsLifecycle(t *testing.T) {
	ts := newTestServer(t)
	alice := tokenFor(t, "alice")

	res, body := ts.sendRequest(t, http.MethodPost, "/api/v1/applications", alice, map[string]interface{}{
		"company":      "Acme",
		"position":     "Backend Engineer",
		"status":       "Interview",
		"reminderDate": "2025-03-01",
		"ownerId":      "mallory",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created applicationBody
	decode(t, body, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.OwnerID)
	assert.Equal(t, "interview", created.Status)
	require.NotNil(t, created.ReminderDate)

	res, body = ts.sendRequest(t, http.MethodGet, "/applications", alice, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list []applicationBody
	decode(t, body, &list)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	res, body = ts.sendRequest(t, http.MethodPut, "/api/v1/applications/"+created.ID, alice,
		`{"notes":"second round","reminderDate":null,"id":"00000000-0000-0000-0000-000000000000","createdAt":"2000-01-01T00:00:00Z","ownerId":"mallory"}`)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated applicationBody
	decode(t, body, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "alice", updated.OwnerID)
	assert.Equal(t, "second round", updated.Notes)
	assert.Equal(t, "Acme", updated.Company)
	assert.Nil(t, updated.ReminderDate)

	res, body = ts.sendRequest(t, http.MethodGet, "/applications", alice, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	list = nil
	decode(t, body, &list)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "second round", list[0].Notes)

	res, body = ts.sendRequest(t, http.MethodDelete, "/applications/"+created.ID, alice, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Application deleted successfully.")

	res, _ = ts.sendRequest(t, http.MethodDelete, "/applications/"+created.ID, alice, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestApplications_OwnerIsolation(t *testing.T) {
	ts := newTestServer(t)
	alice := tokenFor(t, "alice")
	bob := tokenFor(t, "bob")

	res, body := ts.sendRequest(t, http.MethodPost, "/applications", alice, map[string]string{"company": "Acme", "position": "Engineer"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created applicationBody
	decode(t, body, &created)

	res, body = ts.sendRequest(t, http.MethodGet, "/applications", bob, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `[]`, body)

	res, _ = ts.sendRequest(t, http.MethodPut, "/applications/"+created.ID, bob, map[string]string{"company": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.sendRequest(t, http.MethodDelete, "/applications/"+created.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = ts.sendRequest(t, http.MethodGet, "/applications", alice, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"company":"Acme"`)
}

func TestApplications_Validation(t *testing.T) {
	ts := newTestServer(t)
	alice := tokenFor(t, "alice")

	res, body := ts.sendRequest(t, http.MethodPost, "/applications", alice, map[string]string{"company": "A", "status": "ghosted"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	var errResp errorBody
	decode(t, body, &errResp)
	assert.Equal(t, "VALIDATION_FAILED", errResp.Error.Code)
	assert.Contains(t, errResp.Error.Details, "company")
	assert.Contains(t, errResp.Error.Details, "position")
	assert.Contains(t, errResp.Error.Details, "status")

	res, _ = ts.sendRequest(t, http.MethodPost, "/applications", alice, `{"company":`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.sendRequest(t, http.MethodPut, "/applications/not-a-uuid", alice, map[string]string{"company": "Acme"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAuthentication(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, http.MethodGet, "/api/v1/applications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "No token provided")

	res, _ = ts.sendRequest(t, http.MethodGet, "/reminders", "not-a-jwt", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.sendRequest(t, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRemindersLifecycle(t *testing.T) {
	ts := newTestServer(t)
	alice := tokenFor(t, "alice")

	for _, r := range []map[string]string{
		{"title": "later", "dueDate": "2025-06-01"},
		{"title": "sooner", "dueDate": "2025-01-15"},
	} {
		res, body := ts.sendRequest(t, http.MethodPost, "/api/v1/reminders", alice, r)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body := ts.sendRequest(t, http.MethodGet, "/reminders", alice, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var reminders []struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	decode(t, body, &reminders)
	require.Len(t, reminders, 2)
	assert.Equal(t, "sooner", reminders[0].Title)
	assert.Equal(t, "later", reminders[1].Title)

	res, body = ts.sendRequest(t, http.MethodPut, "/reminders/"+reminders[0].ID, alice, map[string]bool{"completed": true})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"completed":true`)

	res, _ = ts.sendRequest(t, http.MethodDelete, "/reminders/"+reminders[0].ID, tokenFor(t, "bob"), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = ts.sendRequest(t, http.MethodDelete, "/reminders/"+reminders[0].ID, alice, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Reminder deleted")
}

func TestDashboardRoutes(t *testing.T) {
	ts := newTestServer(t)
	alice := tokenFor(t, "alice")

	for _, a := range []map[string]string{
		{"company": "Acme", "position": "Engineer", "status": "interview", "reminderDate": "2025-03-01"},
		{"company": "Globex", "position": "SRE", "status": "denied"},
	} {
		res, body := ts.sendRequest(t, http.MethodPost, "/applications", alice, a)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body := ts.sendRequest(t, http.MethodGet, "/api/v1/applications/summary", alice, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var summary struct {
		Total int `json:"total"`
	}
	decode(t, body, &summary)
	assert.Equal(t, 2, summary.Total)

	res, body = ts.sendRequest(t, http.MethodGet, "/applications/export", alice, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, strings.HasPrefix(res.Header.Get("Content-Type"), "text/csv"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "job_application_report.csv")
	assert.True(t, strings.HasPrefix(body, "Job Application Report\n"))

	res, body = ts.sendRequest(t, http.MethodGet, "/applications/due?date=2025-03-01", alice, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var due []applicationBody
	decode(t, body, &due)
	require.Len(t, due, 1)
	assert.Equal(t, "Acme", due[0].Company)
	assert.Contains(t, body, `"notification":"Reminder for Acme`)

	res, _ = ts.sendRequest(t, http.MethodGet, "/applications/due?date=someday", alice, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRateLimitedRoutes(t *testing.T) {
	ts := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.RequestsPerSecond = 0.001
		cfg.RateLimit.Burst = 1
	})
	alice := tokenFor(t, "alice")

	res, _ := ts.sendRequest(t, http.MethodGet, "/applications", alice, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.sendRequest(t, http.MethodGet, "/applications", alice, nil)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)

	res, _ = ts.sendRequest(t, http.MethodGet, "/applications", tokenFor(t, "bob"), nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.sendRequest(t, http.MethodGet, "/applications", "", nil)
	res, body := ts.sendRequest(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "jobtracker_auth_rejected_total")
	assert.Contains(t, body, "jobtracker_http_requests_total")
}

func TestNewVerifier_RequiresMethod(t *testing.T) {
	_, err := NewVerifier(config.Default())
	assert.Error(t, err)
}
