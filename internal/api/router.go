package api

import (
	"net/http"

	"github.com/dom/adboard/internal/api/handlers"
	"github.com/dom/adboard/internal/api/middleware"
	"github.com/dom/adboard/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	adHandler := handlers.NewAdHandler(services.Ad, services.Auth)
	userHandler := handlers.NewUserHandler(services.User)
	authHandler := handlers.NewAuthHandler(services.Auth)

	r.Route("/ads", func(r chi.Router) {
		// Reads need no auth
		r.Get("/{id}", adHandler.Get)

		// Mutations authenticate with body credentials; a bearer token may
		// stand in for them
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(services.Auth))
			r.Post("/", adHandler.Create)
			r.Patch("/{id}", adHandler.Update)
			r.Delete("/{id}", adHandler.Delete)
		})
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/{id}", userHandler.Get)
		r.Patch("/{id}", userHandler.Update)
	})

	// Token layer
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(services.Auth))
			r.Get("/me", authHandler.Me)
			r.Post("/logout", authHandler.Logout)
		})
	})

	return r
}
