// Package reports derives dashboard figures and exports from an owner's
// application list. Every function is pure.
package reports

import (
	"sort"
	"strings"
	"time"

	"jobtracker_backend/internal/models"
)

const monthLayout = "Jan 2006"

type StatusCount struct {
	Status models.ApplicationStatus `json:"status"`
	Label  string                   `json:"label"`
	Count  int                      `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type FunnelStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// Summary is the dashboard payload.
type Summary struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"byStatus"`
	Monthly  []MonthCount  `json:"monthly"`
	Funnel   []FunnelStage `json:"funnel"`
}

var statusLabels = map[models.ApplicationStatus]string{
	models.StatusWaitingForResponse: "Waiting For Response",
	models.StatusInterview:          "Interview",
	models.StatusOfferReceived:      "Offer Received",
	models.StatusAccepted:           "Accepted",
	models.StatusDenied:             "Denied",
}

// StatusLabel returns the display label for status. Unknown values are
// returned unchanged.
func StatusLabel(status models.ApplicationStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

func normalized(raw models.ApplicationStatus) models.ApplicationStatus {
	if s, ok := models.MigrateLegacyStatus(string(raw)); ok {
		return s
	}
	return models.ApplicationStatus(strings.ToLower(strings.TrimSpace(string(raw))))
}

// StatusCounts counts applications per normalized status. Records without a
// status are skipped.
func StatusCounts(apps []models.Application) map[models.ApplicationStatus]int {
	counts := make(map[models.ApplicationStatus]int)
	for _, app := range apps {
		if strings.TrimSpace(string(app.Status)) == "" {
			continue
		}
		counts[normalized(app.Status)]++
	}
	return counts
}

// MonthlyCounts buckets applications by creation month, in the order each
// month is first seen.
func MonthlyCounts(apps []models.Application) []MonthCount {
	result := []MonthCount{}
	index := make(map[string]int)
	for _, app := range apps {
		if app.CreatedAt.IsZero() {
			continue
		}
		month := app.CreatedAt.Format(monthLayout)
		if i, ok := index[month]; ok {
			result[i].Count++
			continue
		}
		index[month] = len(result)
		result = append(result, MonthCount{Month: month, Count: 1})
	}
	return result
}

// Funnel reports the pipeline stages. "Applied" is the total.
func Funnel(apps []models.Application) []FunnelStage {
	counts := StatusCounts(apps)
	return []FunnelStage{
		{Stage: "Applied", Count: len(apps)},
		{Stage: StatusLabel(models.StatusInterview), Count: counts[models.StatusInterview]},
		{Stage: StatusLabel(models.StatusOfferReceived), Count: counts[models.StatusOfferReceived]},
		{Stage: StatusLabel(models.StatusAccepted), Count: counts[models.StatusAccepted]},
		{Stage: StatusLabel(models.StatusDenied), Count: counts[models.StatusDenied]},
	}
}

// BuildSummary assembles the dashboard figures. ByStatus lists only statuses
// that occur, canonical ones first in pipeline order.
func BuildSummary(apps []models.Application) *Summary {
	counts := StatusCounts(apps)

	byStatus := []StatusCount{}
	for _, s := range models.ApplicationStatuses {
		if n := counts[s]; n > 0 {
			byStatus = append(byStatus, StatusCount{Status: s, Label: StatusLabel(s), Count: n})
			delete(counts, s)
		}
	}
	var rest []string
	for s := range counts {
		rest = append(rest, string(s))
	}
	sort.Strings(rest)
	for _, s := range rest {
		status := models.ApplicationStatus(s)
		byStatus = append(byStatus, StatusCount{Status: status, Label: StatusLabel(status), Count: counts[status]})
	}

	return &Summary{
		Total:    len(apps),
		ByStatus: byStatus,
		Monthly:  MonthlyCounts(apps),
		Funnel:   Funnel(apps),
	}
}

// FilterByCompany keeps applications whose company contains term, ignoring
// case. An empty term keeps everything.
func FilterByCompany(apps []models.Application, term string) []models.Application {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return apps
	}
	result := []models.Application{}
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Company), term) {
			result = append(result, app)
		}
	}
	return result
}

// DueOn keeps applications whose reminder falls on the calendar day of day.
func DueOn(apps []models.Application, day time.Time) []models.Application {
	y, m, d := day.Date()
	result := []models.Application{}
	for _, app := range apps {
		if app.ReminderDate == nil {
			continue
		}
		ry, rm, rd := time.Time(*app.ReminderDate).Date()
		if ry == y && rm == m && rd == d {
			result = append(result, app)
		}
	}
	return result
}

// NotificationText is the reminder line shown to the user for app.
func NotificationText(app models.Application) string {
	text := "Reminder for " + app.Company + " — " + app.Position
	if msg := strings.TrimSpace(app.ReminderMessage); msg != "" {
		text += ":\n" + msg
	}
	return text
}
