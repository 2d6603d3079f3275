package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/config"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/db"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/handlers"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/middleware"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/router"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/services"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/storage/postgres"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Load()
	if cfg.ProxySecret == "" {
		log.Fatal("PROXY_SHARED_SECRET is required")
	}
	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// The pool is opened once per process and reused by all requests.
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}
	store := postgres.New(conn)

	settingsService, err := services.NewSettingsService(store, cfg.Defaults, logger)
	if err != nil {
		logger.Fatal("settings service init failed", zap.Error(err))
	}
	forumService := services.NewForumService(store, settingsService, logger)
	pollService := services.NewPollService(store, logger)
	moderationService := services.NewModerationService(store, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Setup Sessions (admin surface only, but the store is engine-wide)
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("community_session", sessionStore))

	router.RegisterRoutes(r, cfg.ProxySecret, cfg.RequestTimeout, router.Handlers{
		Forum: handlers.NewForumHandler(forumService, logger),
		Poll:  handlers.NewPollHandler(pollService, logger),
		Admin: handlers.NewAdminHandler(moderationService, pollService, settingsService, cfg.AdminPassword, logger),
	})

	logger.Info("community server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
