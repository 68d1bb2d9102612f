package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Myudi422/backend-adsense/internal/usecases/summarizing"
	"github.com/Myudi422/backend-adsense/pkg/apiErrors"
	"github.com/Myudi422/backend-adsense/pkg/cache"
	"github.com/Myudi422/backend-adsense/pkg/log"
)

// Summary retorna o resumo de receita de todas as contas cadastradas.
// As contas que falharem entram no resumo como entradas de erro.
func Summary(service summarizing.Summarizer, responseCache *cache.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("summary: building earnings summary")

		asOf, ok := parseDateOrToday(w, r, "date")
		if !ok {
			return
		}

		cacheKey := fmt.Sprintf("summary:%s", asOf.Format(time.DateOnly))
		if cached, found := responseCache.Get(cacheKey); found {
			writeJSON(w, cached)
			return
		}

		summary, err := service.Summarize(r.Context(), asOf)
		if err != nil {
			logger.WithField("error", err.Error()).Error("summary: failed to build summary")

			apiErrors.WriteError(w, apiErrors.ErrRegistryOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_count": summary.AccountCount,
			"failed_count":  summary.FailedCount,
		}).Info("summary: summary built")

		responseCache.Set(cacheKey, summary)
		writeJSON(w, summary)
	})
}
