package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/api"
	"github.com/symposiahq/symposia/internal/config"
	"github.com/symposiahq/symposia/internal/db"
	"github.com/symposiahq/symposia/internal/mail"
	"github.com/symposiahq/symposia/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	log := logrus.New()
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("configuration invalid")
	}

	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	store, err := openStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("store init failed")
	}

	var sender mail.Sender
	if cfg.SMTP.Enabled() {
		sender = mail.NewSMTPSender(cfg.SMTP)
	} else {
		log.Warn("SMTP not configured, outbound email is log-only")
	}
	notifier := mail.NewNotifier(sender, log, cfg.ClientURL)

	handler, err := api.NewHandler(store, notifier, log, api.Options{
		SecretKey:    cfg.SessionSecret,
		CookieSecure: cfg.EnableHTTPS,
		UploadDir:    cfg.UploadDir,
	})
	if err != nil {
		log.WithError(err).Fatal("handler init failed")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Symposia",
		DisableStartupMessage: true,
		BodyLimit:             25 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	app.Static("/uploads", cfg.UploadDir)
	api.RegisterRoutes(app, handler)

	maintenance := services.NewMaintenanceService(store.Sessions, log)
	if err := maintenance.Start(); err != nil {
		log.WithError(err).Fatal("maintenance scheduler init failed")
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		maintenance.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
		notifier.Drain()
	}()

	log.WithFields(logrus.Fields{
		"port":   cfg.Port,
		"driver": cfg.StoreDriver,
		"tz":     location.String(),
	}).Info("symposia listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func openStore(cfg *config.Config) (*db.Store, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return db.NewMemoryStore()
	}
	database, err := db.OpenSQLite(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return db.NewRepositories(database), nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
