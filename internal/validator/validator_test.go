package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Company  string  `json:"company" validate:"required,trimmed-min=2,max=100"`
	Status   string  `json:"status" validate:"omitempty,is-application-status"`
	Due      string  `json:"dueDate" validate:"omitempty,is-date"`
	Position *string `json:"position" validate:"omitnil,trimmed-min=1,max=5"`
}

func ptr(s string) *string { return &s }

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Company: "Acme", Status: "Offer Received", Due: "2025-01-31"})
	assert.NoError(t, err)

	err = v.Validate(&sample{Company: "Acme", Due: "2025-01-31T10:00:00Z", Position: ptr("Dev")})
	assert.NoError(t, err)
}

func TestValidate_FieldMessagesUseJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Company: " A ", Status: "pending", Due: "31/01/2025", Position: ptr("  ")})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be at least 2 characters long", vErr.Errors["company"])
	assert.Contains(t, vErr.Errors["status"], "waiting_for_response")
	assert.Contains(t, vErr.Errors["dueDate"], "YYYY-MM-DD")
	assert.Equal(t, "This field is required", vErr.Errors["position"])
}

func TestValidate_Required(t *testing.T) {
	v := New()

	err := v.Validate(&sample{})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "This field is required", vErr.Errors["company"])
	assert.Len(t, vErr.Errors, 1)
}

func TestVar(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("reminderDate", "2025-02-28", "is-date"))

	err := v.Var("reminderDate", "tomorrow", "is-date")
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "reminderDate")
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2025-03-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDate("2025-03-01T23:30:00+05:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("March 1st")
	assert.False(t, ok)
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	err := NewValidationError("title", "required").Add("dueDate", "bad")
	assert.Equal(t, "Validation failed: field 'dueDate': bad; field 'title': required", err.Error())
}
