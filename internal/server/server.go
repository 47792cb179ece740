package server

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"manuscrito/internal/db"
	"manuscrito/internal/handlers"
	"manuscrito/internal/identity"
	applog "manuscrito/internal/log"
	"manuscrito/internal/middleware"
	"manuscrito/internal/session"
)

// Config captures the runtime configuration for the HTTP server.
type Config struct {
	Addr     string
	Session  SessionConfig
	Auth     AuthConfig
	Database *gorm.DB
	// TrustedOrigins are host[:port] values allowed to post forms cross-origin.
	TrustedOrigins []string
}

// SessionConfig controls session behavior for the HTTP server.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// AuthConfig controls login behavior.
type AuthConfig struct {
	VerifyCredentials bool
	// RateLimit is the number of login or signup submissions per client per minute.
	RateLimit int
}

// Server wraps an http.Server and exposes helpers for bootstrapping a
// production-ready web service.
type Server struct {
	config     Config
	httpServer *http.Server
	sessions   *scs.SessionManager
}

// New builds a new Server using the provided configuration.
func New(cfg Config) (*Server, error) {
	applog.Debug(context.Background(), "initializing server",
		"addr", cfg.Addr,
		"sessionLifetime", cfg.Session.Lifetime.String(),
		"sessionCookie", cfg.Session.CookieName,
		"verifyCredentials", cfg.Auth.VerifyCredentials,
	)

	sessionCfg := cfg.Session
	if sessionCfg.Lifetime <= 0 {
		applog.Debug(context.Background(), "session lifetime not provided, using default")
		sessionCfg.Lifetime = 30 * 24 * time.Hour
	}
	if strings.TrimSpace(sessionCfg.CookieName) == "" {
		applog.Debug(context.Background(), "session cookie name not provided, using default")
		sessionCfg.CookieName = "manuscrito_session"
	}

	sessionManager, err := session.NewManager(session.Config{
		Lifetime:     sessionCfg.Lifetime,
		CookieName:   sessionCfg.CookieName,
		CookieDomain: sessionCfg.CookieDomain,
		CookieSecure: sessionCfg.CookieSecure,
	}, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("configure sessions: %w", err)
	}

	applog.Debug(context.Background(), "session manager configured",
		"cookieName", sessionCfg.CookieName,
		"cookieDomain", sessionCfg.CookieDomain,
		"cookieSecure", sessionCfg.CookieSecure,
		"durable", cfg.Database != nil,
	)

	var directory *db.Directory
	if cfg.Database != nil {
		directory = db.NewDirectory(cfg.Database)
	}
	handlers.Configure(sessionManager, directory, identity.Options{VerifyCredentials: cfg.Auth.VerifyCredentials})

	applog.Debug(context.Background(), "handler dependencies configured")

	csrfKey := make([]byte, 32)
	if _, err := rand.Read(csrfKey); err != nil {
		return nil, fmt.Errorf("generate csrf key: %w", err)
	}
	limiter := middleware.NewRateLimiter(cfg.Auth.RateLimit)

	var handler http.Handler = sessionManager.LoadAndSave(newRouter(limiter))
	handler = middleware.CSRF(middleware.CSRFConfig{AuthKey: csrfKey, TrustedOrigins: cfg.TrustedOrigins})(handler)
	handler = middleware.SecurityHeaders(handler)

	applog.Debug(context.Background(), "http handler chain prepared")

	return &Server{
		config:   cfg,
		sessions: sessionManager,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Start begins serving HTTP traffic using the underlying http.Server.
func (s *Server) Start() error {
	applog.Info(context.Background(), "server starting listener", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server with a timeout and stops the session
// store's background cleanup.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	applog.Debug(ctx, "server initiating graceful shutdown")
	err := s.httpServer.Shutdown(ctx)
	if cleaner, ok := s.sessions.Store.(interface{ StopCleanup() }); ok {
		cleaner.StopCleanup()
	}
	return err
}

// Handler exposes the configured HTTP handler, enabling integration tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
