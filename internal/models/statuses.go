package models

import "strings"

type ApplicationStatus string

const (
	StatusWaitingForResponse ApplicationStatus = "waiting_for_response"
	StatusInterview          ApplicationStatus = "interview"
	StatusOfferReceived      ApplicationStatus = "offer_received"
	StatusAccepted           ApplicationStatus = "accepted"
	StatusDenied             ApplicationStatus = "denied"

	DefaultApplicationStatus = StatusWaitingForResponse
)

// ApplicationStatuses lists the canonical enumeration in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusWaitingForResponse,
	StatusInterview,
	StatusOfferReceived,
	StatusAccepted,
	StatusDenied,
}

func foldStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// NormalizeStatus maps raw onto the canonical enumeration, ignoring case and
// treating spaces and hyphens as underscores. Values outside the enumeration
// are rejected, never coerced.
func NormalizeStatus(raw string) (ApplicationStatus, bool) {
	folded := ApplicationStatus(foldStatus(raw))
	for _, s := range ApplicationStatuses {
		if s == folded {
			return s, true
		}
	}
	return "", false
}

// legacyStatuses covers values written by older clients, keyed by folded form.
var legacyStatuses = map[string]ApplicationStatus{
	"applied":           StatusWaitingForResponse,
	"awaiting_response": StatusWaitingForResponse,
	"offer":             StatusOfferReceived,
	"offer_sent":        StatusOfferReceived,
	"rejected":          StatusDenied,
}

// MigrateLegacyStatus returns the canonical value for a stored status,
// including historical spellings. Only the data migration uses this; request
// validation goes through NormalizeStatus.
func MigrateLegacyStatus(stored string) (ApplicationStatus, bool) {
	if s, ok := NormalizeStatus(stored); ok {
		return s, true
	}
	s, ok := legacyStatuses[foldStatus(stored)]
	return s, ok
}
