package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/widyatama/credential-service/config"
	"github.com/widyatama/credential-service/db"
	"github.com/widyatama/credential-service/internal/auth/handler"
	repo "github.com/widyatama/credential-service/internal/auth/repository/postgres"
	"github.com/widyatama/credential-service/internal/auth/service"
	"github.com/widyatama/credential-service/internal/mailer"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	log.Logger = logger

	cfg := config.Load()

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.SessionTokenExpiryMin, cfg.VerificationTokenExpiryH)
	hasher := service.NewBcryptHasher()
	notifier := mailer.NewMailer(&logger)
	userService := service.NewUserService(userRepo, tokenService, hasher, notifier, cfg)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Content-Type,Authorization",
		AllowMethods: "OPTIONS,POST,GET",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := dbPool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handler.RegisterRoutes(app, authHandler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}
