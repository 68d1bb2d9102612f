package summarizing

import (
	"context"
	"time"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Myudi422/backend-adsense/infrastructure/registry"
	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
	"github.com/Myudi422/backend-adsense/internal/usecases/resolving"
	"github.com/Myudi422/backend-adsense/pkg/log"
	"github.com/Myudi422/backend-adsense/pkg/utils"
)

// Summarizer monta o resumo de receita de todas as contas cadastradas
type Summarizer interface {
	Summarize(ctx context.Context, asOf time.Time) (*domain.Summary, error)
}

type Service struct {
	cfg      *config.Config
	store    registry.Store
	resolver resolving.Resolver
}

func NewService(cfg *config.Config, store registry.Store, resolver resolving.Resolver) Summarizer {
	return &Service{
		cfg:      cfg,
		store:    store,
		resolver: resolver,
	}
}

// Summarize resolve a receita de cada conta ativa em paralelo, com
// limite de concorrência e timeout individuais. A falha de uma conta
// vira uma entrada de erro no resumo sem derrubar as demais.
func (s *Service) Summarize(ctx context.Context, asOf time.Time) (*domain.Summary, error) {
	accounts, err := s.store.List()
	if err != nil {
		return nil, err
	}

	asOf = utils.Midnight(asOf)
	timeout := time.Duration(s.cfg.Summary.AccountTimeoutSeconds) * time.Second

	// Cada conta escreve na própria posição, preservando a ordem
	// das contas na listagem
	entries := make([]*domain.SummaryEntry, len(accounts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Summary.MaxConcurrent)

	for i, account := range accounts {
		g.Go(func() error {
			entry := &domain.SummaryEntry{
				AccountKey:  account.Key,
				DisplayName: account.DisplayName,
				Status:      account.Status,
			}
			entries[i] = entry

			if !account.IsActive() {
				return nil
			}

			accountCtx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()

			result, err := s.resolver.Resolve(accountCtx, account, asOf)
			if err != nil {
				log.ForContext(ctx).WithFields(log.Fields{
					"account_key": account.Key,
					"error":       err.Error(),
				}).Warn("summary: account resolution failed")

				entry.Error = err.Error()
				resErr := &resolving.ResolutionError{}
				if pkgerrors.As(err, &resErr) {
					entry.ErrorKind = string(resErr.Kind)
				}

				return nil
			}

			entry.Earnings = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		Date:         asOf.Format(time.DateOnly),
		Entries:      entries,
		AccountCount: len(entries),
	}

	for _, entry := range entries {
		if entry.Error != "" {
			summary.FailedCount++
			continue
		}

		if entry.Earnings == nil {
			continue
		}

		summary.TotalEarningsMicros += entry.Earnings.EarningsMicros
		summary.TotalClicks += entry.Earnings.Clicks
		summary.TotalImpressions += entry.Earnings.Impressions
	}

	summary.TotalEarningsDisplay = utils.RoundMoney(float64(summary.TotalEarningsMicros) / 1000)

	return summary, nil
}
