// Package progress implements the day-unlock rules of the course.
package progress

import (
	"math"

	"manuscrito/internal/course"
	"manuscrito/models"
)

// FirstDay is the watermark every new user starts with.
const FirstDay = 1

// Status describes how a module relates to a user's watermark.
type Status string

const (
	StatusLocked    Status = "locked"
	StatusUnlocked  Status = "unlocked"
	StatusCompleted Status = "completed"
)

// Percentage is the completion percentage after finishing day d.
func Percentage(d int) int {
	return int(math.Round(float64(d) / float64(course.TotalDays) * 100))
}

// Advance returns u after completing day d. The watermark never moves backwards and
// the percentage is recomputed from d alone.
func Advance(u models.User, d int) models.User {
	u.LastUnlockedDay = max(u.LastUnlockedDay, d+1)
	u.ProgressPercentage = Percentage(d)
	return u
}

// CanAccess reports whether day is within the catalog and at or below the watermark.
func CanAccess(u models.User, day int) bool {
	return day >= 1 && day <= course.TotalDays && day <= u.LastUnlockedDay
}

// IsCurrent reports whether day is the one the user may complete next.
func IsCurrent(u models.User, day int) bool {
	return day == u.LastUnlockedDay && day <= course.TotalDays
}

// IsComplete reports whether every module has been completed.
func IsComplete(u models.User) bool {
	return u.LastUnlockedDay > course.TotalDays
}

// StatusOf classifies day for u.
func StatusOf(u models.User, day int) Status {
	switch {
	case day < u.LastUnlockedDay:
		return StatusCompleted
	case day == u.LastUnlockedDay:
		return StatusUnlocked
	default:
		return StatusLocked
	}
}
