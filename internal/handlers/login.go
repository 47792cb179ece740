package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"manuscrito/internal/identity"
	applog "manuscrito/internal/log"
	"manuscrito/internal/views/pages"
)

const (
	msgLoginRequired = "El correo y la contraseña son obligatorios."
	msgLoginInvalid  = "Credenciales inválidas"
	msgLoginFailed   = "Error al iniciar sesión"
)

// Login renders the authentication view and processes sign-in submissions.
func Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	applog.Debug(r.Context(), "handling login request", "method", r.Method, "htmx", isHTMX(r))

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			applog.Debug(r.Context(), "active session detected, redirecting to dashboard")
			redirectToDashboard(w, r)
			return
		}
		message := ""
		if sessionManager != nil {
			message = sessionManager.PopString(r.Context(), sessionFlashKey)
		}
		renderLogin(w, r, message, "")
	case http.MethodPost:
		if resolver == nil {
			applog.Debug(r.Context(), "authentication dependencies unavailable")
			http.Error(w, "authentication not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse login form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(r.PostFormValue("email"))
		password := r.PostFormValue("password")

		if email == "" || password == "" {
			applog.Debug(r.Context(), "login form missing credentials", "emailPresent", email != "", "passwordPresent", password != "")
			renderLogin(w, r, msgLoginRequired, email)
			return
		}

		if err := sessionManager.RenewToken(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to renew session token", "error", err)
			renderLogin(w, r, msgLoginFailed, email)
			return
		}

		user, err := resolver.Login(r.Context(), email, password)
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			applog.Debug(r.Context(), "login rejected", "email", strings.ToLower(email))
			renderLogin(w, r, msgLoginInvalid, email)
			return
		case err != nil:
			applog.Error(r.Context(), "login failed", "error", err)
			renderLogin(w, r, msgLoginFailed, email)
			return
		}

		applog.Debug(r.Context(), "login succeeded", "userID", user.ID, "admin", user.IsAdmin)
		redirectToDashboard(w, r)
	default:
		applog.Debug(r.Context(), "method not allowed for login", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderLogin(w http.ResponseWriter, r *http.Request, message, email string) {
	var component templ.Component
	if isHTMX(r) {
		component = pages.LoginPartial(message, email)
	} else {
		component = pages.Login(message, email)
	}
	render(w, r, component)
}
