package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"work_exchange/configs"
	"work_exchange/internal/db"
	"work_exchange/internal/db/repositories"
	"work_exchange/internal/di"
	"work_exchange/internal/notifications"
	"work_exchange/internal/services"
	"work_exchange/internal/storage"

	"github.com/go-co-op/gocron"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := configs.LoadNotificationsServiceConfig()
	logger := di.NewLogger(config.Logger, config.App.Environment)
	defer func() { _ = logger.Sync() }()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	minioClient, err := di.NewMinioClient(config.Storage)
	if err != nil {
		logger.Fatalw("failed to create storage client", "error", err)
	}

	api, err := di.NewBotAPI(config.Bot, config.App)
	if err != nil {
		logger.Fatalw("failed to create bot api", "error", err)
	}

	broadcaster := notifications.NewBroadcaster(
		repositories.NewBroadcastRepository(database),
		repositories.NewUserRepository(database),
		services.NewTranslateService(config.Translator, logger),
		storage.NewPhotoStorage(minioClient, di.NewHTTPClient(), config.Storage),
		api,
		config.Notifications.RecipientDelay,
		logger,
	)

	s := gocron.NewScheduler(time.UTC)

	_, err = s.Every(1).Minute().SingletonMode().Do(func() {
		started, err := broadcaster.SendDue(ctx)
		if err != nil {
			logger.Errorw("failed to send broadcasts", "error", err)
			return
		}
		if started > 0 {
			logger.Infow("broadcasts sent", "count", started)
		}
	})
	if err != nil {
		logger.Fatalw("failed to schedule broadcasts", "error", err)
	}

	s.StartAsync()
	logger.Info("notifications service started")

	<-ctx.Done()
	s.Stop()
	logger.Info("notifications service stopped")
}
