package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"manuscrito/internal/course"
	applog "manuscrito/internal/log"
	"manuscrito/internal/progress"
	"manuscrito/internal/views/pages"
)

func dayFromPath(r *http.Request) (int, bool) {
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		return 0, false
	}
	return day, true
}

// Module renders the reader for an unlocked day. Unknown and locked days go back to
// the dashboard.
func Module(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		redirectToLogin(w, r)
		return
	}

	day, ok := dayFromPath(r)
	if !ok {
		redirectToDashboard(w, r)
		return
	}
	m, found := course.Get(day)
	if !found || !progress.CanAccess(user, day) {
		applog.Debug(r.Context(), "module not accessible", "day", day, "found", found, "lastUnlockedDay", user.LastUnlockedDay)
		redirectToDashboard(w, r)
		return
	}

	var component templ.Component
	if isHTMX(r) {
		component = pages.ModuleDetailPartial(user, m)
	} else {
		component = pages.ModuleDetail(user, m)
	}
	render(w, r, component)
}

// CompleteModule marks the current day as done and moves on to the next module.
// Only the day at the user's watermark can be completed.
func CompleteModule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if tracker == nil {
		http.Error(w, "progress not available", http.StatusServiceUnavailable)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		redirectToLogin(w, r)
		return
	}
	day, ok := dayFromPath(r)
	if !ok || !progress.IsCurrent(user, day) {
		applog.Debug(r.Context(), "completion refused", "day", r.PathValue("day"), "lastUnlockedDay", user.LastUnlockedDay)
		redirectToDashboard(w, r)
		return
	}

	updated, ok, err := tracker.Complete(r.Context(), day)
	if err != nil {
		applog.Error(r.Context(), "failed to record module completion", "day", day, "error", err)
		http.Error(w, "unable to save progress", http.StatusInternalServerError)
		return
	}
	if !ok {
		redirectToLogin(w, r)
		return
	}
	applog.Debug(r.Context(), "module completed", "userID", updated.ID, "day", day, "progress", updated.ProgressPercentage)

	if day < course.TotalDays {
		redirect(w, r, fmt.Sprintf("/modulo/%d", day+1))
		return
	}
	redirectToDashboard(w, r)
}
