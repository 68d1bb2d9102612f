package resolving

import (
	"context"
	"fmt"
	"time"

	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense"
	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
	"github.com/Myudi422/backend-adsense/pkg/log"
	"github.com/Myudi422/backend-adsense/pkg/utils"
)

// Mil micros equivalem a uma unidade da moeda de exibição
const microsPerDisplayUnit = 1000

// Resolver busca a receita de um dia de uma conta, recuando no
// calendário quando o dia pedido ainda não tem dados
type Resolver interface {
	Resolve(ctx context.Context, account *domain.Account, asOf time.Time) (*domain.EarningsResult, error)
}

type Service struct {
	cfg        *config.Config
	integrator adsense.AdSenseIntegrator
}

func NewService(cfg *config.Config, integrator adsense.AdSenseIntegrator) Resolver {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
	}
}

// Resolve tenta a data pedida e recua um dia por vez, até o limite
// configurado, parando no primeiro dia com dados. Quando a janela
// inteira está vazia, retorna um resultado zerado para a data pedida.
func (s *Service) Resolve(ctx context.Context, account *domain.Account, asOf time.Time) (*domain.EarningsResult, error) {
	asOf = utils.Midnight(asOf)
	maxLookback := s.cfg.Earnings.MaxLookbackDays

	for daysBack := 0; daysBack <= maxLookback; daysBack++ {
		date := asOf.AddDate(0, 0, -daysBack)

		rows, err := s.integrator.FetchDay(ctx, account, date)
		if err != nil {
			return nil, s.wrapFetchError(ctx, account.Key, err)
		}

		totals := sumRows(rows)
		if totals.IsZero() {
			continue
		}

		result := buildResult(account.Key, date, totals, daysBack)
		if daysBack > 0 {
			result.Note = fmt.Sprintf("showing data from %d day(s) ago", daysBack)
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"account_key":   account.Key,
			"date":          result.Date,
			"data_age_days": daysBack,
		}).Debug("earnings: resolved")

		return result, nil
	}

	// Janela inteira sem dados
	result := buildResult(account.Key, asOf, domain.MetricRow{}, 0)
	result.Note = fmt.Sprintf("no earnings data in the last %d days", maxLookback+1)

	return result, nil
}

func (s *Service) wrapFetchError(ctx context.Context, accountKey string, err error) error {
	kind := KindUpstream
	if ctx.Err() == context.DeadlineExceeded {
		kind = KindTimeout
	}

	return &ResolutionError{
		AccountKey: accountKey,
		Kind:       kind,
		Err:        err,
	}
}

func sumRows(rows []domain.MetricRow) domain.MetricRow {
	totals := domain.MetricRow{}
	for _, row := range rows {
		totals.EarningsMicros += row.EarningsMicros
		totals.Clicks += row.Clicks
		totals.Impressions += row.Impressions
	}

	return totals
}

func buildResult(accountKey string, date time.Time, totals domain.MetricRow, dataAgeDays int) *domain.EarningsResult {
	earningsDisplay := float64(totals.EarningsMicros) / microsPerDisplayUnit

	var ctr, cpm float64
	if totals.Impressions > 0 {
		ctr = float64(totals.Clicks) / float64(totals.Impressions) * 100
		cpm = earningsDisplay / float64(totals.Impressions) * 1000
	}

	return &domain.EarningsResult{
		AccountKey:      accountKey,
		Date:            date.Format(time.DateOnly),
		EarningsDisplay: utils.RoundMoney(earningsDisplay),
		EarningsMicros:  totals.EarningsMicros,
		Clicks:          totals.Clicks,
		Impressions:     totals.Impressions,
		CTR:             utils.RoundWithTwoDecimalPlace(ctr),
		CPMDisplay:      utils.RoundWithTwoDecimalPlace(cpm),
		DataAgeDays:     dataAgeDays,
	}
}
