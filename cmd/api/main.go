package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/database/postgres"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/metaclient"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/queue/qstash"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/api"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/scheduler"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/account"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/metering"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %s, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	jobRepo := repository.NewBackgroundJobRepository(pgConn)
	cronLogRepo := repository.NewCronLogRepository(pgConn)
	rateLimitRepo := repository.NewRateLimitRepository(pgConn)
	apiMetricRepo := repository.NewAPIMetricRepository(pgConn)

	recorder := metering.NewRecorder(apiMetricRepo, rateLimitRepo)
	tracker := metaclient.NewUsageTracker(cfg.RateLimit)
	metaClient := metaclient.NewClient(cfg, tracker, recorder)
	metaIntegrator := meta.New(cfg, metaClient)

	publisher := qstash.NewClient(cfg)
	receiver := qstash.NewReceiver(cfg.QStash.CurrentSigningKey, cfg.QStash.NextSigningKey)

	accountService := account.NewService(cfg, metaIntegrator, accountRepo, campaignRepo, adSetRepo, adRepo)
	jobService := jobs.NewService(cfg, jobRepo, publisher)
	syncService := syncing.NewService(cfg, metaIntegrator, accountRepo, campaignRepo, adSetRepo, adRepo, jobRepo)

	metaMarketingSyncService := scheduler.NewMetaMarketingSyncService(cfg, accountRepo, cronLogRepo, jobService)
	maintenanceService := scheduler.NewMaintenanceService(cfg, jobRepo, apiMetricRepo, cronLogRepo)

	if err := metaMarketingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting meta marketing sync scheduler")
	} else {
		logrus.Info("meta marketing sync scheduler started")
	}

	if err := maintenanceService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting maintenance scheduler")
	} else {
		logrus.Info("maintenance scheduler started")
	}

	server, err := api.New(
		cfg,
		receiver,
		metaIntegrator,
		accountRepo,
		accountService,
		jobService,
		syncService,
		metaMarketingSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
