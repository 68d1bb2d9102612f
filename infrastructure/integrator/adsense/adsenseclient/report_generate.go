package adsenseclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense/adsensedomain"
)

// Métricas pedidas em todos os relatórios, sempre nesta ordem
var reportMetrics = []string{"ESTIMATED_EARNINGS", "CLICKS", "IMPRESSIONS"}

// GenerateDailyReport busca as métricas de um único dia, por data
func (c *AdSenseClient) GenerateDailyReport(ctx context.Context, token, accountID string, date time.Time) (*adsensedomain.ReportResponse, error) {
	params := url.Values{}
	params.Set("dimensions", "DATE")
	setDateRange(params, date, date)

	return c.generateReport(ctx, token, accountID, params)
}

// GenerateDomainReport busca as métricas do período agrupadas por domínio
func (c *AdSenseClient) GenerateDomainReport(ctx context.Context, token, accountID string, startDate, endDate time.Time) (*adsensedomain.ReportResponse, error) {
	params := url.Values{}
	params.Set("dimensions", "DOMAIN_NAME")
	setDateRange(params, startDate, endDate)

	return c.generateReport(ctx, token, accountID, params)
}

func (c *AdSenseClient) generateReport(ctx context.Context, token, accountID string, params url.Values) (*adsensedomain.ReportResponse, error) {
	for _, metric := range reportMetrics {
		params.Add("metrics", metric)
	}

	reportURL := fmt.Sprintf("%s/%s/reports:generate?%s", c.cfg.AdSense.BaseURL, accountID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reportURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de relatório")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	report := &adsensedomain.ReportResponse{}
	if err := json.Unmarshal(body, report); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar relatório")
		return nil, err
	}

	return report, nil
}

// ListAccounts lista as contas do publisher visíveis para o token
func (c *AdSenseClient) ListAccounts(ctx context.Context, token string) ([]adsensedomain.Account, error) {
	listURL := fmt.Sprintf("%s/accounts", c.cfg.AdSense.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	list := &adsensedomain.ListAccountsResponse{}
	if err := json.Unmarshal(body, list); err != nil {
		return nil, err
	}

	return list.Accounts, nil
}

// setDateRange preenche os parâmetros de período no formato da API
func setDateRange(params url.Values, startDate, endDate time.Time) {
	params.Set("dateRange", "CUSTOM")
	params.Set("startDate.year", strconv.Itoa(startDate.Year()))
	params.Set("startDate.month", strconv.Itoa(int(startDate.Month())))
	params.Set("startDate.day", strconv.Itoa(startDate.Day()))
	params.Set("endDate.year", strconv.Itoa(endDate.Year()))
	params.Set("endDate.month", strconv.Itoa(int(endDate.Month())))
	params.Set("endDate.day", strconv.Itoa(endDate.Day()))
}
