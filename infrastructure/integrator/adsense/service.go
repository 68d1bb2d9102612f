package adsense

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense/adsenseclient"
	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense/adsensedomain"
	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
)

// AdSenseIntegrator busca métricas de receita de uma conta no upstream
type AdSenseIntegrator interface {
	FetchDay(ctx context.Context, account *domain.Account, date time.Time) ([]domain.MetricRow, error)
	FetchRange(ctx context.Context, account *domain.Account, startDate, endDate time.Time) ([]domain.MetricRow, error)
}

// AccountIDPersister grava o ID externo detectado automaticamente,
// para não repetir a listagem de contas a cada requisição
type AccountIDPersister func(accountKey, externalAccountID string) error

type AdSenseService struct {
	cfg       *config.Config
	Client    adsenseclient.Client
	tokens    *adsenseclient.TokenManager
	persistID AccountIDPersister
}

func New(cfg *config.Config, client adsenseclient.Client, tokens *adsenseclient.TokenManager, persistID AccountIDPersister) AdSenseIntegrator {
	return &AdSenseService{
		cfg:       cfg,
		Client:    client,
		tokens:    tokens,
		persistID: persistID,
	}
}

func (s *AdSenseService) FetchDay(ctx context.Context, account *domain.Account, date time.Time) ([]domain.MetricRow, error) {
	token, accountID, err := s.prepare(ctx, account)
	if err != nil {
		return nil, err
	}

	report, err := s.Client.GenerateDailyReport(ctx, token, accountID, date)
	if err != nil {
		return nil, s.retryOnAuthError(ctx, account, err, func(token string) (err error) {
			report, err = s.Client.GenerateDailyReport(ctx, token, accountID, date)
			return err
		})
	}

	return parseRows(report, true)
}

func (s *AdSenseService) FetchRange(ctx context.Context, account *domain.Account, startDate, endDate time.Time) ([]domain.MetricRow, error) {
	token, accountID, err := s.prepare(ctx, account)
	if err != nil {
		return nil, err
	}

	report, err := s.Client.GenerateDomainReport(ctx, token, accountID, startDate, endDate)
	if err != nil {
		return nil, s.retryOnAuthError(ctx, account, err, func(token string) (err error) {
			report, err = s.Client.GenerateDomainReport(ctx, token, accountID, startDate, endDate)
			return err
		})
	}

	return parseRows(report, false)
}

// prepare resolve o token de acesso e o ID externo da conta
func (s *AdSenseService) prepare(ctx context.Context, account *domain.Account) (token, accountID string, err error) {
	token, err = s.tokens.Source(account).AccessToken(ctx)
	if err != nil {
		return "", "", err
	}

	accountID, err = s.ensureAccountID(ctx, token, account)
	if err != nil {
		return "", "", err
	}

	return token, accountID, nil
}

// ensureAccountID detecta o ID externo pela listagem de contas quando a
// conta ainda não o possui, e o persiste para as próximas chamadas
func (s *AdSenseService) ensureAccountID(ctx context.Context, token string, account *domain.Account) (string, error) {
	if account.ExternalAccountID != "" {
		return account.ExternalAccountID, nil
	}

	accounts, err := s.Client.ListAccounts(ctx, token)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao listar contas do publisher %s", account.Key)
	}

	if len(accounts) == 0 {
		return "", errors.Errorf("nenhuma conta de publisher visível para as credenciais de %s", account.Key)
	}

	externalID := accounts[0].Name
	account.ExternalAccountID = externalID

	logrus.WithFields(logrus.Fields{
		"account_key":         account.Key,
		"external_account_id": externalID,
	}).Info("ID externo da conta detectado automaticamente")

	if s.persistID != nil {
		if err := s.persistID(account.Key, externalID); err != nil {
			logrus.WithError(err).Warn("Erro ao persistir o ID externo detectado")
		}
	}

	return externalID, nil
}

// retryOnAuthError repete a chamada uma única vez com um token novo
// quando o upstream rejeita o token atual
func (s *AdSenseService) retryOnAuthError(ctx context.Context, account *domain.Account, original error, retry func(token string) error) error {
	upstreamErr := &adsensedomain.UpstreamError{}
	if !errors.As(original, &upstreamErr) || !upstreamErr.IsAuthError() {
		return original
	}

	s.tokens.Invalidate(account.Key)

	token, err := s.tokens.Source(account).AccessToken(ctx)
	if err != nil {
		return err
	}

	return retry(token)
}

// parseRows converte as linhas do relatório em métricas do domínio.
// A primeira célula é a dimensão (data ou domínio), seguida de
// receita em micros, cliques e impressões.
func parseRows(report *adsensedomain.ReportResponse, dateDimension bool) ([]domain.MetricRow, error) {
	rows := make([]domain.MetricRow, 0, len(report.Rows))

	for _, raw := range report.Rows {
		if len(raw.Cells) < 4 {
			return nil, errors.Errorf("linha de relatório com %d células, esperadas 4", len(raw.Cells))
		}

		row := domain.MetricRow{}

		if dateDimension {
			date, err := time.Parse("2006-01-02", raw.Cells[0].Value)
			if err != nil {
				return nil, errors.Wrap(err, "data inválida no relatório")
			}
			row.Date = date
		} else {
			row.Domain = raw.Cells[0].Value
		}

		var err error
		if row.EarningsMicros, err = parseMetric(raw.Cells[1].Value); err != nil {
			return nil, errors.Wrap(err, "receita inválida no relatório")
		}
		if row.Clicks, err = parseMetric(raw.Cells[2].Value); err != nil {
			return nil, errors.Wrap(err, "cliques inválidos no relatório")
		}
		if row.Impressions, err = parseMetric(raw.Cells[3].Value); err != nil {
			return nil, errors.Wrap(err, "impressões inválidas no relatório")
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func parseMetric(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}

	// O upstream envia os valores numéricos como string, às vezes com
	// casas decimais mesmo para contagens
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return int64(f), nil
}
