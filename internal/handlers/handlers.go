package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"KisiKart/internal/config"
	"KisiKart/internal/middleware"
	"KisiKart/internal/service"
	"KisiKart/internal/session"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	cardService *service.CardService,
	authService *service.AuthService,
	authority *session.Authority,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithSessions(authority))

	// Handlers
	authHandler := NewAuthHandler(authService, authority, logger)
	cardHandler := NewCardHandler(cardService, logger)

	// Session routes
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)

	// Card routes
	r.Get("/api/cards", cardHandler.List)
	r.Post("/api/cards", cardHandler.Create)
	r.Get("/api/cards/{id}", cardHandler.Get)
	r.Delete("/api/cards/{id}", cardHandler.Delete)
	r.Put("/api/cards/{id}/update", cardHandler.UpdateProfile)
	r.Post("/api/cards/{id}/auth", cardHandler.VerifyPIN)
	r.Post("/api/cards/{id}/note", cardHandler.UpdateNote)

	return &Handler{Router: r}
}
