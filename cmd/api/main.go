package main

import (
	"context"
	"net/http"
	"os"

	"github.com/agrobert/agrobert-backend/api/routes"
	"github.com/agrobert/agrobert-backend/internal/chatbot"
	"github.com/agrobert/agrobert-backend/internal/identity"
	"github.com/agrobert/agrobert-backend/internal/otp"
	"github.com/agrobert/agrobert-backend/internal/simulation"
	"github.com/agrobert/agrobert-backend/internal/users"
	"github.com/agrobert/agrobert-backend/pkg/config"
	"github.com/agrobert/agrobert-backend/pkg/db"
	"github.com/agrobert/agrobert-backend/pkg/logger"
	"github.com/agrobert/agrobert-backend/pkg/migrate"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())

	if cfg.App.IsDev() && cfg.App.SeedUsers {
		if err := identity.SeedDemoUsers(context.Background(), userRepo, cfg.Password, logg); err != nil {
			logg.Error(context.Background(), "failed to seed demo users", err)
			os.Exit(1)
		}
	}

	var notifier otp.Notifier
	logOnly := !cfg.SMS.Enabled()
	if logOnly {
		logg.Warn(context.Background(), "twilio credentials not configured, otp codes will be logged")
		notifier = otp.NewLogNotifier(logg)
	} else {
		notifier = otp.NewTwilioNotifier(cfg.SMS)
	}
	deliverer := otp.NewDeliverer(notifier, logOnly, logg, cfg.SMS.Timeout)

	identityService, err := identity.NewService(identity.ServiceParams{
		UserRepo:       userRepo,
		OTPManager:     otp.NewManager(cfg.SMS.OTPTTL),
		Deliverer:      deliverer,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create identity service", err)
		os.Exit(1)
	}

	engine := simulation.NewEngine()

	var generator chatbot.Generator
	if cfg.Gemini.Enabled() {
		gemini, err := chatbot.NewGeminiGenerator(context.Background(), cfg.Gemini)
		if err != nil {
			logg.Error(context.Background(), "failed to initialize gemini, chat fallback disabled", err)
		} else {
			defer gemini.Close()
			generator = gemini
		}
	} else {
		logg.Warn(context.Background(), "gemini api key not set, chat fallback disabled")
	}
	chatRouter := chatbot.NewRouter(engine, generator, logg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, identityService, chatRouter, engine),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
