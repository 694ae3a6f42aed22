package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/internal/handler"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/notify"
	"github.com/MKhiriev/go-expense-keeper/internal/server"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/internal/workers"
	"github.com/MKhiriev/go-expense-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log := logger.NewLogger("expense-keeper", "info")
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("expense-keeper", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("notifier", cfg.Notifier.Kind).
		Dur("token_duration", cfg.App.TokenDuration).
		Dur("reset_code_ttl", cfg.App.ResetCodeTTL).
		Msg("received configs")

	db, err := store.NewConnectDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
		log.Info().Str("dialect", string(db.Dialect())).Msg("migrations applied")
	}

	channel, err := notify.NewNotifier(cfg.Notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notifier")
	}
	notifications := workers.NewNotificationWorker(channel, cfg.Workers.NotificationQueueSize, log)

	services, err := service.NewServices(store.NewStorages(db, log), service.Dependencies{
		Hasher:        crypto.NewPasswordHasher(bcrypt.DefaultCost),
		CodeGenerator: crypto.NewCodeGenerator(),
		Notifier:      notifications,
		Clock:         utils.SystemClock{},
	}, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(notifications), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("version", buildInfo.Version).Msg("starting expense-keeper server")
	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
