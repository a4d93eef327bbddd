package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"sound_tracker/internal/api"
	"sound_tracker/internal/config"
	"sound_tracker/internal/enrich"
	"sound_tracker/internal/oembed"
	"sound_tracker/internal/publisher"
	"sound_tracker/internal/scheduler"
	"sound_tracker/internal/service"
	"sound_tracker/internal/source/apify"
	"sound_tracker/internal/source/creative"
	"sound_tracker/internal/source/tikapi"
	"sound_tracker/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// The publisher is optional: collection runs without a broker.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	soundStore := postgres.NewSoundStore(db)
	snapshotStore := postgres.NewSnapshotStore(db)
	videoStore := postgres.NewVideoStore(db)
	hashtagStore := postgres.NewHashtagStore(db)
	logStore := postgres.NewCollectionLogStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Sources in strict priority order.
	cascade := service.NewCascade(logger,
		tikapi.New(tikapi.Config{
			BaseURL: cfg.Sources.TikAPI.BaseURL,
			APIKey:  cfg.Sources.TikAPI.APIKey,
			Timeout: cfg.Sources.TikAPI.Timeout,
		}, logger),
		creative.New(creative.Config{
			PageURL: cfg.Sources.Creative.PageURL,
			Timeout: cfg.Sources.Creative.Timeout,
		}, logger),
		apify.New(apify.Config{
			BaseURL: cfg.Sources.Apify.BaseURL,
			Token:   cfg.Sources.Apify.Token,
			ActorID: cfg.Sources.Apify.ActorID,
			Timeout: cfg.Sources.Apify.Timeout,
		}, logger),
	)

	embeds := oembed.New(oembed.Config{
		Endpoint:   cfg.OEmbed.Endpoint,
		Timeout:    cfg.OEmbed.Timeout,
		BatchSize:  cfg.OEmbed.BatchSize,
		BatchPause: cfg.OEmbed.BatchPause,
		MaxRetries: cfg.OEmbed.MaxRetries,
	}, logger)

	guard := service.NewRunGuard()

	collector := service.NewCollector(
		cascade,
		soundStore,
		snapshotStore,
		videoStore,
		hashtagStore,
		logStore,
		embeds,
		txManager,
		events,
		guard,
		logger,
	)

	enricher := enrich.New(enrich.Config{
		BaseURL:     cfg.Enrichment.BaseURL,
		MetaTimeout: cfg.Enrichment.MetaTimeout,
		PageTimeout: cfg.Enrichment.PageTimeout,
		MaxVideos:   cfg.Enrichment.MaxVideos,
	}, logger)

	enrichment := service.NewEnrichmentService(
		enricher,
		soundStore,
		snapshotStore,
		videoStore,
		hashtagStore,
		embeds,
		txManager,
		guard,
		cfg.Enrichment.StaleAfter,
		logger,
	)

	dashboard := service.NewDashboardService(
		soundStore,
		snapshotStore,
		videoStore,
		hashtagStore,
		logStore,
		logger,
	)

	handler := api.NewHandler(collector, enrichment, dashboard, cfg.HTTP.CronSecret, logger)
	server := api.NewServer(handler, logger)

	sched := scheduler.NewScheduler(collector, cfg.Collection.Interval, cfg.Collection.RunTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
		}
	}()

	logger.Info("starting sound tracker",
		"addr", cfg.HTTP.Addr,
		"interval", cfg.Collection.Interval,
	)

	go func() {
		if err := server.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
