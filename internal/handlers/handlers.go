package handlers

import (
	"arsipku/internal/config"
	"arsipku/internal/middleware"
	"arsipku/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires the routes for the local HTTP API.
func NewHandler(
	authService *service.AuthService,
	docService *service.DocumentService,
	statsService *service.StatsService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(authService, logger, config)
	docHandler := NewDocumentHandler(docService, statsService, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)

	// Document routes
	r.Get("/api/documents", docHandler.List)
	r.Post("/api/documents", docHandler.Upload)
	r.Get("/api/documents/recent", docHandler.Recent)
	r.Patch("/api/documents/{id}", docHandler.Rename)
	r.Delete("/api/documents/{id}", docHandler.Delete)
	r.Get("/api/documents/{id}/download", docHandler.Download)
	r.Get("/api/stats", docHandler.Stats)

	return &Handler{Router: r}
}
