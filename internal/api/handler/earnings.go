package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	pkgerrors "github.com/pkg/errors"

	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense"
	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
	"github.com/Myudi422/backend-adsense/internal/usecases/aggregating"
	"github.com/Myudi422/backend-adsense/internal/usecases/registry"
	"github.com/Myudi422/backend-adsense/internal/usecases/resolving"
	"github.com/Myudi422/backend-adsense/pkg/apiErrors"
	"github.com/Myudi422/backend-adsense/pkg/cache"
	"github.com/Myudi422/backend-adsense/pkg/log"
	"github.com/Myudi422/backend-adsense/pkg/utils"
)

// EarningsServices agrupa as dependências dos handlers de receita
type EarningsServices struct {
	Config     *config.Config
	Accounts   registry.AccountManager
	Resolver   resolving.Resolver
	Aggregator aggregating.Aggregator
	Integrator adsense.AdSenseIntegrator
	Cache      *cache.Cache
}

// TodayEarnings retorna a receita do dia de uma conta, recuando para
// dias anteriores quando o dia pedido ainda não tem dados
func TodayEarnings(services EarningsServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountKey := httprouter.ParamsFromContext(r.Context()).ByName("accountKey")
		logger.WithField("account_key", accountKey).Info("earnings: fetching today earnings")

		asOf, ok := parseDateOrToday(w, r, "date")
		if !ok {
			return
		}

		cacheKey := fmt.Sprintf("earnings:%s:%s", accountKey, asOf.Format(time.DateOnly))
		if cached, found := services.Cache.Get(cacheKey); found {
			writeJSON(w, cached)
			return
		}

		account, ok := loadActiveAccount(w, services.Accounts, accountKey)
		if !ok {
			return
		}

		ctx, cancel := requestContext(r, services.Config)
		defer cancel()

		result, err := services.Resolver.Resolve(ctx, account, asOf)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_key": accountKey,
				"error":       err.Error(),
			}).Error("earnings: failed to resolve earnings")

			writeResolutionError(w, err)
			return
		}

		services.Cache.Set(cacheKey, result)
		writeJSON(w, result)
	})
}

// DomainEarnings retorna a receita agrupada por domínio em um período
func DomainEarnings(services EarningsServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountKey := httprouter.ParamsFromContext(r.Context()).ByName("accountKey")
		domainFilter := r.URL.Query().Get("domain")

		logger.WithFields(log.Fields{
			"account_key": accountKey,
			"domain":      domainFilter,
		}).Info("earnings: fetching domain earnings")

		startDate, endDate, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		cacheKey := fmt.Sprintf("domains:%s:%s:%s:%s", accountKey, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly), domainFilter)
		if cached, found := services.Cache.Get(cacheKey); found {
			writeJSON(w, cached)
			return
		}

		account, ok := loadActiveAccount(w, services.Accounts, accountKey)
		if !ok {
			return
		}

		ctx, cancel := requestContext(r, services.Config)
		defer cancel()

		rows, err := services.Integrator.FetchRange(ctx, account, startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_key": accountKey,
				"error":       err.Error(),
			}).Error("earnings: failed to fetch domain metrics")

			writeUpstreamError(w, ctx, err)
			return
		}

		report := services.Aggregator.Aggregate(accountKey, startDate, endDate, domainFilter, rows)

		services.Cache.Set(cacheKey, report)
		writeJSON(w, report)
	})
}

// parseDateOrToday lê um parâmetro de data opcional; ausente vira hoje
func parseDateOrToday(w http.ResponseWriter, r *http.Request, param string) (time.Time, bool) {
	raw := r.URL.Query().Get(param)

	date, err := utils.ParseDate(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, fmt.Sprintf("invalid %s parameter, expected YYYY-MM-DD", param), nil)
		return time.Time{}, false
	}

	if date.IsZero() {
		return utils.Midnight(time.Now()), true
	}

	return *date, true
}

// parsePeriod lê date ou o par start_date/end_date
func parsePeriod(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	if r.URL.Query().Get("date") != "" {
		date, ok := parseDateOrToday(w, r, "date")
		if !ok {
			return time.Time{}, time.Time{}, false
		}
		return date, date, true
	}

	startDate, ok := parseDateOrToday(w, r, "start_date")
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	endDate, ok := parseDateOrToday(w, r, "end_date")
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	if endDate.Before(startDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date must not be before start_date", nil)
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}

func loadActiveAccount(w http.ResponseWriter, accounts registry.AccountManager, accountKey string) (*domain.Account, bool) {
	account, err := accounts.GetAccount(accountKey)
	if err != nil {
		apiErrors.WriteError(w, registry.CodeFor(err), err.Error(), nil)
		return nil, false
	}

	if !account.IsActive() {
		apiErrors.WriteError(w, apiErrors.ErrAccountDisabled, fmt.Sprintf("account %s is inactive", accountKey), nil)
		return nil, false
	}

	return account, true
}

func requestContext(r *http.Request, cfg *config.Config) (context.Context, context.CancelFunc) {
	timeout := time.Duration(cfg.Summary.AccountTimeoutSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

func writeResolutionError(w http.ResponseWriter, err error) {
	resErr := &resolving.ResolutionError{}
	if pkgerrors.As(err, &resErr) && resErr.IsTimeout() {
		apiErrors.WriteError(w, apiErrors.ErrUpstreamTimeout, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrUpstreamService, err.Error(), nil)
}

func writeUpstreamError(w http.ResponseWriter, ctx context.Context, err error) {
	if ctx.Err() == context.DeadlineExceeded {
		apiErrors.WriteError(w, apiErrors.ErrUpstreamTimeout, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrUpstreamService, err.Error(), nil)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithField("error", err.Error()).Error("handler: failed to encode response")
	}
}
