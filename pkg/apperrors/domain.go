package apperrors

import "net/http"

// Ownership mismatches end up as these too, so the message never says which
// one happened.
var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrReminderNotFound = New(
	CodeNotFound,
	"reminder",
	"Reminder not found",
	http.StatusNotFound,
)

// ErrMissingToken is returned when the Authorization header is absent or not a Bearer credential.
var ErrMissingToken = New(
	CodeUnauthorized,
	"auth",
	"No token provided",
	http.StatusUnauthorized,
)

// ErrInvalidToken is returned when the identity provider rejects the credential.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Unauthorized or invalid token",
	http.StatusForbidden,
)

// ErrIdentityUnavailable is returned when the identity provider cannot be
// reached; the credential was not judged either way.
var ErrIdentityUnavailable = New(
	CodeUnavailable,
	"auth",
	"Identity provider unavailable, try again later",
	http.StatusServiceUnavailable,
)

var ErrTooManyRequests = New(
	CodeLimitExceeded,
	"rate_limit",
	"Too many requests",
	http.StatusTooManyRequests,
)
