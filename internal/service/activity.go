package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"inventory_dashboard/internal/logger"
	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/repository"
)

// Page bounds for activity listings.
const (
	DefaultLogLimit = 100
	MaxLogLimit     = 1000
)

// activityRecorder is the write side of the activity log used by other services.
type activityRecorder interface {
	Record(ctx context.Context, typ models.ActivityType, message string, meta map[string]any)
}

type ActivityLogService struct {
	repo repository.ActivityRepo
	log  *logger.Logger
	now  func() time.Time
}

func NewActivityLogService(repo repository.ActivityRepo, log *logger.Logger) *ActivityLogService {
	return &ActivityLogService{repo: repo, log: log, now: time.Now}
}

// List returns the entries matching f, newest first unless f.Oldest is set.
func (s *ActivityLogService) List(ctx context.Context, f LogFilter) ([]models.ActivityEvent, error) {
	q, err := toActivityQuery(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, q)
}

// toActivityQuery validates f and turns it into a repository query:
// bounds in UTC, types deduplicated in canonical order, limit defaulted
// and capped.
func toActivityQuery(f LogFilter) (models.ActivityQuery, error) {
	q := models.ActivityQuery{From: f.From, To: f.To, Oldest: f.Oldest}
	if !q.From.IsZero() {
		q.From = q.From.UTC()
	}
	if !q.To.IsZero() {
		q.To = q.To.UTC()
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return models.ActivityQuery{}, ErrInvalidTimeRange
	}

	switch {
	case f.Limit < 0:
		return models.ActivityQuery{}, ErrInvalidLimit
	case f.Limit == 0:
		q.Limit = DefaultLogLimit
	default:
		q.Limit = min(f.Limit, MaxLogLimit)
	}

	for _, t := range f.Types {
		if !slices.Contains(models.ActivityTypes, t) {
			return models.ActivityQuery{}, fmt.Errorf("%w: %q", ErrUnknownActivityType, t)
		}
	}
	for _, t := range models.ActivityTypes {
		if slices.Contains(f.Types, t) {
			q.Types = append(q.Types, t)
		}
	}
	return q, nil
}

// Record appends an event. It outlives request cancellation and never
// fails the caller: append errors are only logged.
func (s *ActivityLogService) Record(ctx context.Context, typ models.ActivityType, message string, meta map[string]any) {
	ev := models.ActivityEvent{
		At:      s.now().UTC(),
		Type:    typ,
		Message: message,
		Meta:    meta,
	}
	if err := s.repo.Append(context.WithoutCancel(ctx), ev); err != nil {
		s.log.Warnw("activity_append_failed", "type", typ, "err", err)
	}
}
