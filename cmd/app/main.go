package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"freshdispatch/cmd"
	httpadapter "freshdispatch/internal/adapters/in/http"
	kafkain "freshdispatch/internal/adapters/in/kafka"
	kafkaout "freshdispatch/internal/adapters/out/kafka"
	"freshdispatch/internal/adapters/out/postgres"
	"freshdispatch/internal/logger"
	"freshdispatch/internal/metrics"
	"freshdispatch/internal/workers"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.New(config.LogLevel)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	slogger := logger.Slog(zapLogger)

	gormDB, err := gorm.Open(gormpostgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	queue, err := kafkaout.NewNotificationQueue(config.KafkaBrokers, config.KafkaNotificationsTopic, slogger)
	if err != nil {
		log.Fatalf("create notification queue: %v", err)
	}
	defer func() { _ = queue.Close() }()

	metrics.Register(prometheus.DefaultRegisterer)

	app := cmd.NewCompositionRoot(config, gormDB, queue, slogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := workers.NewPool(config.WorkerPoolSize, config.WorkerPoolBacklog, slogger)
	pool.Start(ctx)
	defer pool.Stop()

	consumer, err := kafkain.NewNotificationJobsConsumer(
		config.KafkaBrokers,
		config.KafkaConsumerGroup,
		config.KafkaNotificationsTopic,
		app.CreateDispatcher(),
		pool,
		slogger,
	)
	if err != nil {
		log.Fatalf("create notification consumer: %v", err)
	}
	defer func() { _ = consumer.Close() }()
	go func() {
		if runErr := consumer.Run(ctx); runErr != nil {
			slogger.Error("notification consumer stopped", "error", runErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := httpadapter.NewRouter(httpadapter.RouterConfig{
		Server:   app.CreateHTTPServer(),
		Realtime: app.CreateRealtimeHandler(),
		Gatherer: prometheus.DefaultGatherer,
		Logger:   slogger,
	})
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("http server: %v", startErr)
		}
	}()
	slogger.Info("service started", "port", config.HTTPPort)

	<-ctx.Done()
	slogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		slogger.Error("http server shutdown failed", "error", err)
	}
	slogger.Info("service stopped")
}
