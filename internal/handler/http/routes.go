package http

import (
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	router.Use(middleware.SetHeader("X-Frame-Options", "DENY"))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)
	router.Get("/api/version", h.getServerVersion)

	// routes reading the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.home)
		r.With(h.withRateLimit(metrics.OperationSignup)).Post("/api/user/signup", h.signup)
		r.With(h.withRateLimit(metrics.OperationLogin)).Post("/api/user/login", h.login)
		r.With(h.withRateLimit(metrics.OperationLogout)).Post("/api/user/logout", h.logout)
	})

	// routes with bearer authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
