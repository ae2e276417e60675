package reports

import (
	"strings"
	"time"

	"jobtracker_backend/internal/models"
)

const (
	ReportTitle    = "Job Application Report"
	ReportFilename = "job_application_report.csv"

	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
	noDate          = "—"
)

var csvHeader = []string{"Company", "Position", "Status", "Notes", "Reminder Date", "Date Created"}

// CSV renders the application report. Values are joined with commas as they
// are; a comma or newline inside a value is not quoted and will shift columns.
func CSV(apps []models.Application, generatedAt time.Time) string {
	lines := []string{
		ReportTitle,
		"Generated: " + generatedAt.Format(timestampLayout),
		"",
		strings.Join(csvHeader, ","),
	}

	for _, app := range apps {
		reminder := noDate
		if app.ReminderDate != nil {
			reminder = time.Time(*app.ReminderDate).Format(dateLayout)
		}
		lines = append(lines, strings.Join([]string{
			app.Company,
			app.Position,
			string(app.Status),
			app.Notes,
			reminder,
			app.CreatedAt.Format(timestampLayout),
		}, ","))
	}

	return strings.Join(lines, "\n")
}
