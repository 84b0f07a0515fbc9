package service

import (
	"context"
	"strings"
	"time"

	"todo_manager/internal/models"
	"todo_manager/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type ActivityService struct {
	activity repository.Activity
	now      func() time.Time
}

func NewActivityService(activity repository.Activity, now func() time.Time) *ActivityService {
	if now == nil {
		now = time.Now
	}
	return &ActivityService{activity: activity, now: now}
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeActivityType trims spaces and uppercases the activity type.
func normalizeActivityType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f ActivityFilter) (ActivityFilter, error) {
	f.From = normalizeToUTC(f.From)
	f.To = normalizeToUTC(f.To)

	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return ActivityFilter{}, ErrInvalidTimeRange
	}

	f.Type = normalizeActivityType(f.Type)
	switch {
	case f.Limit <= 0:
		f.Limit = defaultHistoryLimit
	case f.Limit > maxHistoryLimit:
		f.Limit = maxHistoryLimit
	}
	return f, nil
}

// Record appends an entry to the user's trail, assigning id and timestamp when missing.
func (s *ActivityService) Record(ctx context.Context, a models.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = s.now()
	}
	a.OccurredAt = a.OccurredAt.UTC()
	a.Type = normalizeActivityType(a.Type)
	return s.activity.Append(ctx, a)
}

// History lists the user's entries newest first.
func (s *ActivityService) History(ctx context.Context, userID int, f ActivityFilter) ([]models.Activity, error) {
	f, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.activity.List(ctx, userID, f.From, f.To, f.Type, f.Limit)
}
