package resolving

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense/adsensedomain"
	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense/mocks"
	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
)

func dateAt(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func metricRows(earningsMicros, clicks, impressions int64) []domain.MetricRow {
	return []domain.MetricRow{{
		EarningsMicros: earningsMicros,
		Clicks:         clicks,
		Impressions:    impressions,
	}}
}

func TestService_Resolve(t *testing.T) {
	asOf := dateAt(2024, time.January, 15)
	account := &domain.Account{Key: "acc1", Status: domain.AccountStatusActive}

	tests := []struct {
		name     string
		setup    func(integrator *mocks.MockAdSenseIntegrator)
		wantErr  bool
		validate func(t *testing.T, result *domain.EarningsResult, err error)
	}{
		{
			name: "Dia pedido com dados - não recua no calendário",
			setup: func(integrator *mocks.MockAdSenseIntegrator) {
				integrator.EXPECT().
					FetchDay(gomock.Any(), account, asOf).
					Return(metricRows(3169, 9, 896), nil)
			},
			validate: func(t *testing.T, result *domain.EarningsResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2024-01-15", result.Date)
				assert.Equal(t, 3.17, result.EarningsDisplay)
				assert.Equal(t, int64(3169), result.EarningsMicros)
				assert.Equal(t, 1.0, result.CTR)  // 9/896*100
				assert.Equal(t, 3.54, result.CPMDisplay) // 3.169/896*1000
				assert.Equal(t, 0, result.DataAgeDays)
				assert.Empty(t, result.Note)
			},
		},
		{
			name: "Dia pedido vazio - recua até o primeiro dia com dados",
			setup: func(integrator *mocks.MockAdSenseIntegrator) {
				integrator.EXPECT().
					FetchDay(gomock.Any(), account, asOf).
					Return(nil, nil)
				integrator.EXPECT().
					FetchDay(gomock.Any(), account, asOf.AddDate(0, 0, -1)).
					Return(metricRows(50000, 20, 1000), nil)
			},
			validate: func(t *testing.T, result *domain.EarningsResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2024-01-14", result.Date)
				assert.Equal(t, 50.0, result.EarningsDisplay)
				assert.Equal(t, 1, result.DataAgeDays)
				assert.Equal(t, "showing data from 1 day(s) ago", result.Note)
			},
		},
		{
			name: "Dia com linhas zeradas conta como vazio",
			setup: func(integrator *mocks.MockAdSenseIntegrator) {
				integrator.EXPECT().
					FetchDay(gomock.Any(), account, asOf).
					Return(metricRows(0, 0, 0), nil)
				integrator.EXPECT().
					FetchDay(gomock.Any(), account, asOf.AddDate(0, 0, -1)).
					Return(metricRows(1234, 1, 10), nil)
			},
			validate: func(t *testing.T, result *domain.EarningsResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.DataAgeDays)
			},
		},
		{
			name: "Janela inteira vazia - retorna resultado zerado para a data pedida",
			setup: func(integrator *mocks.MockAdSenseIntegrator) {
				for daysBack := 0; daysBack <= 3; daysBack++ {
					integrator.EXPECT().
						FetchDay(gomock.Any(), account, asOf.AddDate(0, 0, -daysBack)).
						Return(nil, nil)
				}
			},
			validate: func(t *testing.T, result *domain.EarningsResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2024-01-15", result.Date)
				assert.Equal(t, 0.0, result.EarningsDisplay)
				assert.Equal(t, 0.0, result.CTR)
				assert.Equal(t, 0.0, result.CPMDisplay)
				assert.Equal(t, 0, result.DataAgeDays)
				assert.Equal(t, "no earnings data in the last 4 days", result.Note)
			},
		},
		{
			name: "Falha no upstream interrompe a resolução",
			setup: func(integrator *mocks.MockAdSenseIntegrator) {
				integrator.EXPECT().
					FetchDay(gomock.Any(), account, asOf).
					Return(nil, &adsensedomain.UpstreamError{StatusCode: 500, Message: "internal"})
			},
			wantErr: true,
			validate: func(t *testing.T, result *domain.EarningsResult, err error) {
				require.Error(t, err)

				resErr, ok := err.(*ResolutionError)
				require.True(t, ok)
				assert.Equal(t, KindUpstream, resErr.Kind)
				assert.Equal(t, "acc1", resErr.AccountKey)
				assert.False(t, resErr.IsTimeout())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := mocks.NewMockAdSenseIntegrator(ctrl)
			tt.setup(integrator)

			cfg := &config.Config{Earnings: config.Earnings{MaxLookbackDays: 3}}
			service := NewService(cfg, integrator)

			result, err := service.Resolve(context.Background(), account, asOf)
			tt.validate(t, result, err)
		})
	}
}

func TestService_Resolve_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := &domain.Account{Key: "acc1"}
	asOf := dateAt(2024, time.January, 15)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	integrator := mocks.NewMockAdSenseIntegrator(ctrl)
	integrator.EXPECT().
		FetchDay(gomock.Any(), account, asOf).
		Return(nil, context.DeadlineExceeded)

	cfg := &config.Config{Earnings: config.Earnings{MaxLookbackDays: 3}}
	service := NewService(cfg, integrator)

	_, err := service.Resolve(ctx, account, asOf)
	require.Error(t, err)

	resErr, ok := err.(*ResolutionError)
	require.True(t, ok)
	assert.True(t, resErr.IsTimeout())
}
