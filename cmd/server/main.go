package main

import (
	"net/http"

	"go.uber.org/zap"

	"KisiKart/internal/config"
	"KisiKart/internal/handlers"
	"KisiKart/internal/middleware"
	"KisiKart/internal/repo"
	"KisiKart/internal/service"
	"KisiKart/internal/session"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	cardRepo := repo.NewCardRepository(gormDB)
	adminRepo := repo.NewAdminRepository(gormDB)

	verifier := service.NewVerifier(cfg.AuthHash)
	cardService := service.NewCardService(cardRepo, sugar)
	authService := service.NewAuthService(adminRepo, cardRepo, verifier)

	authority := session.NewAuthority(cfg.AuthSecret, cfg.AdminSessionTTL, cfg.OwnerSessionTTL)

	h := handlers.NewHandler(cardService, authService, authority, sugar, cfg)

	sugar.Infow(
		"Starting server",
		"addr", cfg.RunAddr,
	)

	sugar.Infow("Config",
		"RunAddr", cfg.RunAddr,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"PublicBaseURL", cfg.PublicBaseURL,
		"AuthHash", cfg.AuthHash,
	)

	if err := http.ListenAndServe(cfg.RunAddr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
