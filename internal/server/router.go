package server

import (
	"context"
	"net/http"

	"manuscrito/internal/handlers"
	applog "manuscrito/internal/log"
	"manuscrito/internal/middleware"
)

func authenticated(h http.HandlerFunc) http.Handler {
	return handlers.RequireAuthentication(h)
}

func adminOnly(h http.HandlerFunc) http.Handler {
	return handlers.RequireAuthentication(handlers.RequireAdmin(h))
}

func newRouter(limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")

	mux.HandleFunc("GET /healthz", handlers.Health)
	mux.HandleFunc("GET /{$}", handlers.Home)

	mux.Handle("/login", limiter.Limit(http.HandlerFunc(handlers.Login)))
	mux.Handle("/signup", limiter.Limit(http.HandlerFunc(handlers.Signup)))
	mux.HandleFunc("/logout", handlers.Logout)

	mux.Handle("GET /dashboard", authenticated(handlers.Dashboard))
	mux.Handle("GET /modulo/{day}", authenticated(handlers.Module))
	mux.Handle("POST /modulo/{day}/completar", authenticated(handlers.CompleteModule))
	applog.Debug(context.Background(), "route registered", "path", "/dashboard", "protected", true)

	mux.Handle("GET /admin", adminOnly(handlers.Admin))
	mux.Handle("/admin/modulos/{day}", adminOnly(handlers.AdminModule))
	mux.Handle("POST /admin/ajustes", adminOnly(handlers.UpdateUnlockMode))
	applog.Debug(context.Background(), "route registered", "path", "/admin", "protected", true, "admin", true)

	return mux
}
