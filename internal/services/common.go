package services

import (
	"context"
	"errors"
	"time"

	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// validationErrors collects field failures from the struct validator and any
// extra per-field checks into a single response.
type validationErrors struct {
	fields map[string]string
}

func (v *validationErrors) merge(err error) error {
	if err == nil {
		return nil
	}
	var vErr *validator.ValidationError
	if !errors.As(err, &vErr) {
		return err
	}
	if v.fields == nil {
		v.fields = make(map[string]string)
	}
	for field, msg := range vErr.Errors {
		v.fields[field] = msg
	}
	return nil
}

func (v *validationErrors) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return apperrors.ValidationError(v.fields)
}

// validRecordID reports whether id can name a stored record. Anything else is
// answered with the resource's not-found error.
func validRecordID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func requireOwner(ownerID string) error {
	if ownerID == "" {
		return apperrors.NewUnauthorizedError("User not authenticated")
	}
	return nil
}

func parseDate(field, raw string) (datatypes.Date, error) {
	t, ok := validator.ParseDate(raw)
	if !ok {
		return datatypes.Date{}, validator.NewValidationError(field, "Must be a date in YYYY-MM-DD or RFC3339 format")
	}
	return datatypes.Date(t), nil
}

func storeError(ctx context.Context, op string, err error) error {
	logger.CtxWithError(ctx, "store operation failed", err, "operation", op)
	return apperrors.StoreError(err)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
