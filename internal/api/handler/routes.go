package handler

import (
	"net/http"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/queue/qstash"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/api/handler/router"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/scheduler"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/account"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/syncing"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func MetaMarketing(
	cfg *config.Config,
	receiver *qstash.Receiver,
	jobService jobs.Service,
	syncService syncing.Service,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta-marketing/sync",
			Method:  http.MethodPost,
			Handler: EnqueueSync(jobService),
		},
		{
			Path:    "/v1/meta-marketing/worker",
			Method:  http.MethodPost,
			Handler: SyncWorker(cfg, receiver, syncService),
		},
	}
}

func JobStatus(jobService jobs.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/job-status/:id",
			Method:  http.MethodGet,
			Handler: GetJobStatus(jobService),
		},
		{
			Path:    "/v1/jobs/:id/cancel",
			Method:  http.MethodPost,
			Handler: CancelJob(jobService),
		},
	}
}

func CronJobs(cfg *config.Config, service *scheduler.MetaMarketingSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/meta-marketing",
			Method:      http.MethodPost,
			Handler:     RunMetaMarketingCron(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronSecret(cfg.CronSecret)},
		},
		{
			Path:        "/v1/cron/meta-marketing",
			Method:      http.MethodGet,
			Handler:     GetMetaMarketingCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronSecret(cfg.CronSecret)},
		},
	}
}

func MetaWebhooks(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	jobService jobs.Service,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta-webhooks",
			Method:  http.MethodGet,
			Handler: VerifyMetaWebhook(cfg),
		},
		{
			Path:    "/v1/meta-webhooks",
			Method:  http.MethodPost,
			Handler: ReceiveMetaWebhook(cfg, accountRepo, jobService),
		},
	}
}

func Accounts(cfg *config.Config, service account.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AccountList(service),
		},
		{
			Path:    "/v1/accounts/:id/status",
			Method:  http.MethodGet,
			Handler: AccountStatus(service),
		},
		{
			Path:        "/v1/accounts/discover",
			Method:      http.MethodPost,
			Handler:     DiscoverAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronSecret(cfg.CronSecret)},
		},
	}
}

func MetaTokens(cfg *config.Config, integrator meta.Integrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meta/token/exchange",
			Method:      http.MethodPost,
			Handler:     ExchangeMetaToken(integrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronSecret(cfg.CronSecret)},
		},
	}
}
