package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lunelabs/cyclefem/internal/api"
	"github.com/lunelabs/cyclefem/internal/assistant"
	"github.com/lunelabs/cyclefem/internal/cli"
	"github.com/lunelabs/cyclefem/internal/config"
	"github.com/lunelabs/cyclefem/internal/db"
	"github.com/lunelabs/cyclefem/internal/services"
)

func main() {
	cfg := config.Load()
	configureLogging(cfg.LogLevel)

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if len(os.Args) != 3 {
			log.Fatal().Msg("usage: cyclefem reset-password <email>")
		}
		if err := cli.RunResetPasswordCommand(cfg.DatabasePath, os.Args[2]); err != nil {
			log.Fatal().Err(err).Msg("password reset failed")
		}
		return
	}

	database, err := db.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	repos := db.NewRepositories(database)

	var backend services.AssistantCompletion
	if cfg.AssistantEnabled() {
		backend = assistant.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, assistant runs in fallback mode")
	}
	assistantService := services.NewAssistantService(backend, repos.Chats)

	handler := api.NewHandler(repos, cfg.JWTSecret, assistantService)

	app := fiber.New(fiber.Config{
		AppName:               "CycleFem",
		DisableStartupMessage: true,
		ReadTimeout:           time.Duration(cfg.RequestTimeout) * time.Second,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("db", cfg.DatabasePath).
		Bool("assistant", cfg.AssistantEnabled()).
		Msg("CycleFem listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func configureLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
