package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"manuscrito/internal/course"
	applog "manuscrito/internal/log"
	"manuscrito/internal/views/pages"
)

// Dashboard renders the learner's progress and the module list.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, ok := currentUser(r)
	if !ok {
		redirectToLogin(w, r)
		return
	}
	applog.Debug(r.Context(), "rendering dashboard", "userID", user.ID, "lastUnlockedDay", user.LastUnlockedDay)

	var component templ.Component
	if isHTMX(r) {
		component = pages.DashboardPartial(user, course.Modules())
	} else {
		component = pages.Dashboard(user, course.Modules())
	}
	render(w, r, component)
}
