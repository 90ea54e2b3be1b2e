package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/queue/qstash"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/api/handler"
	"github.com/rfwatson44/MindfulAI-sub001/internal/api/handler/router"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/scheduler"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/account"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/syncing"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	receiver *qstash.Receiver,
	integrator meta.Integrator,
	accountRepo repository.AccountRepository,
	accountService account.Service,
	jobService jobs.Service,
	syncService syncing.Service,
	metaMarketingSyncService *scheduler.MetaMarketingSyncService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.MetaMarketing(cfg, receiver, jobService, syncService)...),
		router.WithRoutes(handler.JobStatus(jobService)...),
		router.WithRoutes(handler.CronJobs(cfg, metaMarketingSyncService)...),
		router.WithRoutes(handler.MetaWebhooks(cfg, accountRepo, jobService)...),
		router.WithRoutes(handler.Accounts(cfg, accountService)...),
		router.WithRoutes(handler.MetaTokens(cfg, integrator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("http server shut down")
	return nil
}
