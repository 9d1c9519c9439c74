package main

import (
	"net/http"

	"go.uber.org/zap"

	"arsipku/internal/config"
	"arsipku/internal/handlers"
	"arsipku/internal/middleware"
	"arsipku/internal/service"
	"arsipku/internal/store"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		sugar.Fatalw("failed to open archive database", "path", cfg.DatabasePath, "error", err)
	}
	defer st.Close()

	authService := service.NewAuthService(st.Users())
	docService := service.NewDocumentService(st.Documents())
	statsService := service.NewStatsService(st.Documents())

	h := handlers.NewHandler(authService, docService, statsService, sugar, cfg)

	sugar.Infow("Starting server",
		"addr", cfg.RunAddress,
		"db", cfg.DatabasePath,
	)

	if err := http.ListenAndServe(cfg.RunAddress, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
