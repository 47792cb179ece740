package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"

	"manuscrito/internal/identity"
	applog "manuscrito/internal/log"
	"manuscrito/internal/views/pages"
)

// MinPasswordLength is the shortest password the signup form accepts.
const MinPasswordLength = 6

const (
	msgSignupName      = "Introduce tu nombre."
	msgSignupEmail     = "Introduce un correo electrónico válido."
	msgSignupPassword  = "La contraseña debe tener al menos 6 caracteres"
	msgSignupDuplicate = "Ya existe una cuenta con ese correo."
	msgSignupFailed    = "Error al crear la cuenta"
)

// Signup displays the account creation form and processes new registrations.
func Signup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	applog.Debug(r.Context(), "handling signup request", "method", r.Method, "htmx", isHTMX(r))

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			applog.Debug(r.Context(), "active session detected during signup, redirecting to dashboard")
			redirectToDashboard(w, r)
			return
		}
		renderSignup(w, r, "", "", "")
	case http.MethodPost:
		if resolver == nil {
			applog.Debug(r.Context(), "registration dependencies unavailable")
			http.Error(w, "registration not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse signup form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}

		name := strings.TrimSpace(r.PostFormValue("name"))
		email := strings.TrimSpace(r.PostFormValue("email"))
		password := r.PostFormValue("password")

		if name == "" {
			renderSignup(w, r, msgSignupName, name, email)
			return
		}
		if email == "" || !strings.Contains(email, "@") {
			applog.Debug(r.Context(), "invalid signup email", "email", email)
			renderSignup(w, r, msgSignupEmail, name, email)
			return
		}
		if utf8.RuneCountInString(password) < MinPasswordLength {
			applog.Debug(r.Context(), "password too short for signup", "length", utf8.RuneCountInString(password))
			renderSignup(w, r, msgSignupPassword, name, email)
			return
		}

		if err := sessionManager.RenewToken(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to renew session token", "error", err)
			renderSignup(w, r, msgSignupFailed, name, email)
			return
		}

		user, err := resolver.Signup(r.Context(), name, email, password)
		switch {
		case errors.Is(err, identity.ErrEmailAlreadyRegistered):
			applog.Debug(r.Context(), "signup attempted with existing email", "email", strings.ToLower(email))
			renderSignup(w, r, msgSignupDuplicate, name, email)
			return
		case err != nil:
			applog.Error(r.Context(), "signup failed", "error", err)
			renderSignup(w, r, msgSignupFailed, name, email)
			return
		}

		applog.Debug(r.Context(), "signup completed successfully", "userID", user.ID)
		redirectToDashboard(w, r)
	default:
		applog.Debug(r.Context(), "method not allowed for signup", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderSignup(w http.ResponseWriter, r *http.Request, message, name, email string) {
	var component templ.Component
	if isHTMX(r) {
		component = pages.SignupPartial(message, name, email)
	} else {
		component = pages.Signup(message, name, email)
	}
	render(w, r, component)
}
