package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"manuscrito/internal/course"
	applog "manuscrito/internal/log"
	"manuscrito/internal/views/pages"
	"manuscrito/internal/views/unlock"
	"manuscrito/models"
)

const msgEditsDiscarded = "Los cambios del módulo no se guardan en esta versión."

type unlockModeResponse struct {
	UnlockMode string `json:"unlockMode"`
}

// Admin renders the admin panel tab named by the tab query parameter.
func Admin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	view := pages.AdminView{
		Tab:        pages.NormalizeAdminTab(r.URL.Query().Get("tab")),
		Modules:    course.Modules(),
		UnlockMode: unlock.DefaultKey,
	}
	if sessionManager != nil {
		if mode := sessionManager.GetString(r.Context(), sessionUnlockModeKey); mode != "" {
			view.UnlockMode = mode
		}
		view.Notice = sessionManager.PopString(r.Context(), sessionAdminNoticeKey)
	}

	if view.Tab == pages.TabUsers {
		roster, err := loadRoster(r)
		if err != nil {
			applog.Error(r.Context(), "failed to load roster", "error", err)
			http.Error(w, "unable to load users", http.StatusInternalServerError)
			return
		}
		view.Roster = roster
	}

	var component templ.Component
	if isHTMX(r) {
		component = pages.AdminPartial(view)
	} else {
		component = pages.Admin(view)
	}
	render(w, r, component)
}

func loadRoster(r *http.Request) ([]models.Account, error) {
	if directory == nil {
		applog.Debug(r.Context(), "directory not configured; roster is empty")
		return nil, nil
	}
	return directory.Roster(r.Context())
}

// AdminModule shows the module editor. Submitted edits are acknowledged and dropped;
// module copy is compiled into the catalog.
func AdminModule(w http.ResponseWriter, r *http.Request) {
	day, ok := dayFromPath(r)
	m, found := course.Get(day)
	if !ok || !found {
		redirect(w, r, "/admin")
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		render(w, r, pages.ModuleEditor(m))
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		applog.Debug(r.Context(), "module edits discarded", "day", day, "title", strings.TrimSpace(r.PostFormValue("title")))
		if sessionManager != nil {
			sessionManager.Put(r.Context(), sessionAdminNoticeKey, msgEditsDiscarded)
		}
		redirect(w, r, "/admin?tab="+pages.TabModules)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// UpdateUnlockMode stores the unlock mode shown in the settings tab. It is a display
// preference of the admin's session and does not change module gating.
func UpdateUnlockMode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "unlock mode update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse settings form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	value := r.FormValue("unlock_mode")
	mode, ok := unlock.Resolve(value)
	if !ok {
		applog.Debug(r.Context(), "received invalid unlock mode", "value", value)
		http.Error(w, "invalid unlock mode", http.StatusBadRequest)
		return
	}
	if sessionManager != nil {
		sessionManager.Put(r.Context(), sessionUnlockModeKey, mode.Value)
	}
	applog.Debug(r.Context(), "unlock mode updated", "mode", mode.Value)

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(unlockModeResponse{UnlockMode: mode.Value}); err != nil {
			applog.Error(r.Context(), "failed to encode unlock mode response", "error", err)
		}
		return
	}
	redirect(w, r, "/admin?tab="+pages.TabSettings)
}
