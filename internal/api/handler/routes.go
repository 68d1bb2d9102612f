package handler

import (
	"net/http"

	"github.com/Myudi422/backend-adsense/infrastructure/repository"
	"github.com/Myudi422/backend-adsense/internal/api/handler/router"
	"github.com/Myudi422/backend-adsense/internal/usecases/registry"
	"github.com/Myudi422/backend-adsense/internal/usecases/summarizing"
	"github.com/Myudi422/backend-adsense/pkg/cache"
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

func Earnings(services EarningsServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/today-earnings/:accountKey",
			Method:  http.MethodGet,
			Handler: TodayEarnings(services),
		},
		{
			Path:    "/api/domain-earnings/:accountKey",
			Method:  http.MethodGet,
			Handler: DomainEarnings(services),
		},
	}
}

func SummaryRoutes(service summarizing.Summarizer, responseCache *cache.Cache) []router.Route {
	return []router.Route{
		{
			Path:    "/api/summary",
			Method:  http.MethodGet,
			Handler: Summary(service, responseCache),
		},
	}
}

func Accounts(service registry.AccountManager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/accounts",
			Method:  http.MethodGet,
			Handler: AccountList(service),
		},
		{
			Path:    "/api/accounts",
			Method:  http.MethodPost,
			Handler: CreateAccount(service),
		},
		{
			Path:    "/api/accounts/:accountKey",
			Method:  http.MethodGet,
			Handler: GetAccount(service),
		},
		{
			Path:    "/api/accounts/:accountKey",
			Method:  http.MethodPut,
			Handler: UpdateAccount(service),
		},
		{
			Path:    "/api/accounts/:accountKey",
			Method:  http.MethodDelete,
			Handler: DeleteAccount(service),
		},
	}
}

func Database(service registry.AccountManager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/database/backup",
			Method:  http.MethodPost,
			Handler: DatabaseBackup(service),
		},
		{
			Path:    "/api/database/restore",
			Method:  http.MethodPost,
			Handler: DatabaseRestore(service),
		},
		{
			Path:    "/api/database/stats",
			Method:  http.MethodGet,
			Handler: DatabaseStats(service),
		},
	}
}

func History(snapshotRepo repository.EarningsSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/history/:accountKey",
			Method:  http.MethodGet,
			Handler: EarningsHistory(snapshotRepo),
		},
	}
}

func CacheRoutes(responseCache *cache.Cache) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cache/stats",
			Method:  http.MethodGet,
			Handler: CacheStats(responseCache),
		},
		{
			Path:    "/api/cache/clear",
			Method:  http.MethodPost,
			Handler: CacheClear(responseCache),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
