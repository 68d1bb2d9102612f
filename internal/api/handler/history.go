package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/Myudi422/backend-adsense/infrastructure/repository"
	"github.com/Myudi422/backend-adsense/pkg/apiErrors"
	"github.com/Myudi422/backend-adsense/pkg/log"
	"github.com/Myudi422/backend-adsense/pkg/utils"
)

// Sem período informado, o histórico cobre os últimos 30 dias
const defaultHistoryDays = 30

// EarningsHistory retorna os snapshots diários persistidos pelo
// sincronizador para uma conta
func EarningsHistory(snapshotRepo repository.EarningsSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountKey := httprouter.ParamsFromContext(r.Context()).ByName("accountKey")
		logger.WithField("account_key", accountKey).Info("history: fetching earnings history")

		startRaw := r.URL.Query().Get("start_date")
		endRaw := r.URL.Query().Get("end_date")

		startDate, err := utils.ParseDate(startRaw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "invalid start_date parameter, expected YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(endRaw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "invalid end_date parameter, expected YYYY-MM-DD", nil)
			return
		}

		end := *endDate
		if end.IsZero() {
			end = utils.Midnight(time.Now())
		}

		start := *startDate
		if start.IsZero() {
			start = end.AddDate(0, 0, -defaultHistoryDays)
		}

		if end.Before(start) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date must not be before start_date", nil)
			return
		}

		snapshots, err := snapshotRepo.GetByDateRange(r.Context(), accountKey, start, end)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_key": accountKey,
				"error":       err.Error(),
			}).Error("history: failed to fetch snapshots")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, map[string]any{
			"account_key": accountKey,
			"start_date":  start.Format(time.DateOnly),
			"end_date":    end.Format(time.DateOnly),
			"snapshots":   snapshots,
		})
	})
}
