package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Get("/health", h.health)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/me", h.me)
		r.Put("/api/auth/me", h.updateMe)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
