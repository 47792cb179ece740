package middleware

import (
	"net/http"

	"filippo.io/csrf/gorilla"

	applog "manuscrito/internal/log"
)

// CSRFConfig holds configuration for cross-origin form protection.
type CSRFConfig struct {
	// AuthKey is accepted for API compatibility; checks rely on Fetch metadata headers.
	AuthKey []byte
	// TrustedOrigins are host[:port] values, not full URLs.
	TrustedOrigins []string
	ErrorHandler   http.Handler
}

// CSRF rejects cross-origin unsafe requests.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	errorHandler := cfg.ErrorHandler
	if errorHandler == nil {
		errorHandler = http.HandlerFunc(csrfFailure)
	}

	opts := []csrf.Option{csrf.ErrorHandler(errorHandler)}
	if len(cfg.TrustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(cfg.TrustedOrigins))
	}
	return csrf.Protect(cfg.AuthKey, opts...)
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	reason := "unknown"
	if err := csrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	applog.Warn(r.Context(), "cross-origin request rejected",
		"reason", reason,
		"method", r.Method,
		"path", r.URL.Path,
		"origin", r.Header.Get("Origin"),
		"secFetchSite", r.Header.Get("Sec-Fetch-Site"),
	)
	http.Error(w, "Forbidden", http.StatusForbidden)
}
