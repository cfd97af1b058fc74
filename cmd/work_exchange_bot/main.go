package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"work_exchange/configs"
	"work_exchange/internal/catalog"
	"work_exchange/internal/db"
	"work_exchange/internal/db/repositories"
	"work_exchange/internal/di"
	"work_exchange/internal/fsm"
	"work_exchange/internal/health"
	"work_exchange/internal/notifications"
	"work_exchange/internal/services"
	"work_exchange/internal/storage"
	tgbot "work_exchange/internal/tg_bot"
	"work_exchange/internal/tg_bot/commands"
	"work_exchange/internal/tg_bot/handlers"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	"golang.org/x/sync/errgroup"
)

const (
	catalogTTL      = 5 * time.Minute
	shutdownTimeout = 10 * time.Second
	healthCheckPath = "/work-exchange-bot/healthcheck"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := configs.LoadWorkExchangeBotConfig()
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

	redisClient, err := di.NewRedisClient(ctx, config.Redis)
	if err != nil {
		logger.Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	minioClient, err := di.NewMinioClient(config.Storage)
	if err != nil {
		logger.Fatalw("failed to create storage client", "error", err)
	}
	photoStorage := storage.NewPhotoStorage(minioClient, di.NewHTTPClient(), config.Storage)
	if err := photoStorage.EnsureBuckets(ctx); err != nil {
		logger.Fatalw("failed to prepare buckets", "error", err)
	}

	api, err := di.NewBotAPI(config.Bot, config.App)
	if err != nil {
		logger.Fatalw("failed to create bot api", "error", err)
	}

	logger.Info("initializing repositories and services")
	userRepository := repositories.NewUserRepository(database)
	workerRepository := repositories.NewWorkerRepository(database)
	employerRepository := repositories.NewEmployerRepository(database)
	jobRepository := repositories.NewJobRepository(database)
	proposalRepository := repositories.NewProposalRepository(database)
	reviewRepository := repositories.NewReviewRepository(database)
	channelRepository := repositories.NewChannelRepository(database)
	catalogRepository := repositories.NewCatalogRepository(database)

	textCatalog := catalog.NewCatalog(catalogRepository, catalogTTL, logger)
	renderer := views.NewRenderer(textCatalog)
	keyboardSet := keyboards.New(textCatalog, config.App.BotName)
	sessionStore := fsm.NewRedisStore(redisClient, config.Redis.StateTTL)

	dispatcher := notifications.NewDispatcher(
		config.Notifications.Workers,
		config.Notifications.QueueSize,
		config.Notifications.DrainTimeout,
		logger,
	)
	notifier := notifications.NewNotifier(
		config.Admin,
		config.Notifications,
		dispatcher,
		api,
		renderer,
		keyboardSet,
		channelRepository,
		workerRepository,
		employerRepository,
		proposalRepository,
		logger,
	)

	translateService := services.NewTranslateService(config.Translator, logger)
	userService := services.NewUserService(userRepository, workerRepository, employerRepository, logger)
	workerService := services.NewWorkerService(config.App, workerRepository, photoStorage, notifier, logger)
	employerService := services.NewEmployerService(employerRepository, logger)
	jobService := services.NewJobService(config.App, jobRepository, notifier, logger)
	proposalService := services.NewProposalService(proposalRepository, jobRepository, workerRepository, notifier, logger)
	reviewService := services.NewReviewService(config.App, reviewRepository, workerRepository, employerRepository, notifier, logger)
	listingService := services.NewListingService(config.App, workerRepository, jobRepository, proposalRepository, reviewRepository)
	moderationService := services.NewModerationService(workerRepository, jobRepository, reviewRepository, translateService, notifier, logger)

	bot := tgbot.NewBot(
		api,
		config.Bot,
		handlers.NewWorkExchangeBotCommandHandler(
			config.Admin,
			userService,
			sessionStore,
			renderer,
			logger,
			[]commands.Command{
				commands.NewStartCommand(userService, sessionStore, renderer, keyboardSet, logger),
				commands.NewCancelCommand(sessionStore, renderer, keyboardSet, logger),
				commands.NewWorkerProfileCommand(workerService, api, sessionStore, renderer, keyboardSet, logger),
				commands.NewEmployerProfileCommand(employerService, sessionStore, renderer, keyboardSet, logger),
				commands.NewJobCommand(employerService, jobService, sessionStore, renderer, keyboardSet, logger),
				commands.NewReviewCommand(workerService, employerService, reviewService, sessionStore, renderer, keyboardSet, logger),
				commands.NewMenuCommand(workerService, employerService, reviewService, sessionStore, renderer, keyboardSet, logger),
				commands.NewListingCommand(workerService, employerService, listingService, sessionStore, renderer, keyboardSet, logger),
				commands.NewDetailsCommand(workerService, employerService, jobService, proposalService, reviewService, sessionStore, renderer, keyboardSet, logger),
				commands.NewControlCommand(workerService, employerService, jobService, proposalService, reviewService, sessionStore, renderer, keyboardSet, logger),
				commands.NewModerationCommand(moderationService, sessionStore, renderer, keyboardSet, logger),
			},
		),
		logger,
	)

	server := &http.Server{
		Addr: config.App.HealthCheckAddr,
		Handler: health.NewRouter(healthCheckPath, map[string]health.Check{
			"db":    func(ctx context.Context) error { return database.Ping(ctx) },
			"redis": func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		}, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return dispatcher.Run(groupCtx)
	})
	group.Go(func() error {
		return bot.Start(groupCtx)
	})
	group.Go(func() error {
		logger.Infow("health check listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Errorw("work exchange bot stopped with error", "error", err)
		return
	}
	logger.Info("work exchange bot stopped")
}
