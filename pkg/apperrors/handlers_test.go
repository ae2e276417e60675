package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, err)

	var body struct {
		Error map[string]interface{} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body.Error
}

func TestHandleError_NotFound(t *testing.T) {
	code, body := render(t, fmt.Errorf("update: %w", ErrApplicationNotFound))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Application not found", body["message"])
}

func TestHandleError_Validation(t *testing.T) {
	code, body := render(t, ValidationError(map[string]string{"company": "This field is required"}))

	assert.Equal(t, http.StatusBadRequest, code)
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "This field is required", details["company"])
}

func TestHandleError_HidesCause(t *testing.T) {
	code, body := render(t, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	raw, _ := json.Marshal(body)
	assert.NotContains(t, string(raw), "password")
}

func TestStoreError(t *testing.T) {
	cause := errors.New("disk full")
	err := StoreError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)

	code, body := render(t, err)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Server error", body["message"])
}
