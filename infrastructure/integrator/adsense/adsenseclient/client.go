package adsenseclient

import (
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense/adsensedomain"
	"github.com/Myudi422/backend-adsense/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GenerateDailyReport(ctx context.Context, token, accountID string, date time.Time) (*adsensedomain.ReportResponse, error)
	GenerateDomainReport(ctx context.Context, token, accountID string, startDate, endDate time.Time) (*adsensedomain.ReportResponse, error)
	ListAccounts(ctx context.Context, token string) ([]adsensedomain.Account, error)
}

type AdSenseClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdSenseClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.AdSense.RequestTimeout) * time.Second,
		},
	}
}

// handleResponse lê o corpo e converte respostas de erro em UpstreamError
func (c *AdSenseClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		errResp := &adsensedomain.ErrorResponse{}
		if err := json.Unmarshal(body, errResp); err == nil && errResp.Error.Message != "" {
			return nil, &adsensedomain.UpstreamError{
				StatusCode: resp.StatusCode,
				Message:    errResp.Error.Message,
			}
		}

		return nil, &adsensedomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return body, nil
}
