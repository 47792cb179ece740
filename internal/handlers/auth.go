package handlers

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"manuscrito/internal/db"
	"manuscrito/internal/identity"
	applog "manuscrito/internal/log"
	"manuscrito/internal/progress"
	"manuscrito/internal/session"
	"manuscrito/models"
)

const (
	sessionFlashKey       = "flash:message"
	sessionAdminNoticeKey = "admin:notice"
	sessionUnlockModeKey  = "admin:unlock_mode"
)

var (
	sessionManager *scs.SessionManager
	users          *session.Store
	resolver       *identity.Resolver
	tracker        *progress.Tracker
	directory      *db.Directory
)

// Configure installs the shared dependencies used by the HTTP handlers. dir may be nil,
// in which case every login synthesizes a new user and the admin roster is empty.
func Configure(sm *scs.SessionManager, dir *db.Directory, opts identity.Options) {
	sessionManager = sm
	directory = dir
	users = nil
	resolver = nil
	tracker = nil
	if sm == nil {
		return
	}

	users = session.NewStore(session.NewManagerSlot(sm))
	var lookup identity.Directory
	if dir != nil {
		lookup = dir
	}
	resolver = identity.NewResolver(lookup, users, opts)
	tracker = progress.NewTracker(users)
}

// currentUser returns the user held by the request's session.
func currentUser(r *http.Request) (models.User, bool) {
	if users == nil {
		return models.User{}, false
	}
	return users.Load(r.Context())
}

// ActiveSession returns true when the current request carries a user.
func ActiveSession(r *http.Request) bool {
	_, ok := currentUser(r)
	return ok
}

// RequireAuthentication ensures the user has an active session before accessing the resource.
func RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			applog.Debug(r.Context(), "unauthenticated request redirected", "path", r.URL.Path)
			redirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin sends everyone but administrators back to the dashboard. It expects to
// run behind RequireAuthentication.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(r)
		if !ok {
			redirectToLogin(w, r)
			return
		}
		if !user.IsAdmin {
			applog.Debug(r.Context(), "non-admin request redirected", "path", r.URL.Path, "userID", user.ID)
			redirectToDashboard(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logout clears the current user and returns to the landing page.
func Logout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if resolver != nil {
		if err := resolver.Logout(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to clear session user", "error", err)
		}
		if err := sessionManager.RenewToken(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to renew session token on logout", "error", err)
		}
	}

	redirect(w, r, "/")
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, "/login")
}

func redirectToDashboard(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, "/dashboard")
}
