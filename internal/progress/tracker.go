package progress

import (
	"context"
	"fmt"

	"manuscrito/internal/course"
	applog "manuscrito/internal/log"
	"manuscrito/models"
)

// UserStore is the session slot the tracker reads from and commits to.
type UserStore interface {
	Load(ctx context.Context) (models.User, bool)
	Set(ctx context.Context, u models.User) error
}

// Tracker applies completions to the current session user.
type Tracker struct {
	store UserStore
}

// NewTracker builds a Tracker over store.
func NewTracker(store UserStore) *Tracker {
	return &Tracker{store: store}
}

// Complete records that the current user finished day d. It returns false without
// error when the session holds no user.
func (t *Tracker) Complete(ctx context.Context, d int) (models.User, bool, error) {
	if d < 1 || d > course.TotalDays {
		return models.User{}, false, fmt.Errorf("day %d out of range 1..%d", d, course.TotalDays)
	}

	current, ok := t.store.Load(ctx)
	if !ok {
		applog.Debug(ctx, "completion ignored without current user", "day", d)
		return models.User{}, false, nil
	}

	updated := Advance(current, d)
	if err := t.store.Set(ctx, updated); err != nil {
		return current, false, fmt.Errorf("commit progress: %w", err)
	}

	applog.Debug(ctx, "progress advanced",
		"userID", updated.ID,
		"day", d,
		"lastUnlockedDay", updated.LastUnlockedDay,
		"progress", updated.ProgressPercentage,
	)
	return updated, true, nil
}
