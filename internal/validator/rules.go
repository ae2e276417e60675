package validator

import (
	"log"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"jobtracker_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// DateLayouts are the accepted input formats for calendar dates.
var DateLayouts = []string{"2006-01-02", time.RFC3339}

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-application-status': canonical status after normalization
	mustRegister("is-application-status", validateApplicationStatus)

	// 'is-date': YYYY-MM-DD or RFC3339
	mustRegister("is-date", validateDate)

	// 'trimmed-min=N': at least N characters once surrounding whitespace is removed
	mustRegister("trimmed-min", validateTrimmedMin)
}

// ParseDate parses s using DateLayouts and returns the calendar day in UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	_, ok := models.NormalizeStatus(value)
	return ok
}

func validateDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := ParseDate(value)
	return ok
}

func validateTrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= min
}

func statusList() string {
	names := make([]string, 0, len(models.ApplicationStatuses))
	for _, s := range models.ApplicationStatuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
