package summarizing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	registrymocks "github.com/Myudi422/backend-adsense/infrastructure/registry/mocks"
	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
	"github.com/Myudi422/backend-adsense/internal/usecases/resolving"
	resolvingmocks "github.com/Myudi422/backend-adsense/internal/usecases/resolving/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Summary: config.Summary{
			MaxConcurrent:         5,
			AccountTimeoutSeconds: 30,
		},
	}
}

func activeAccount(key string) *domain.Account {
	return &domain.Account{
		Key:         key,
		DisplayName: "Conta " + key,
		Status:      domain.AccountStatusActive,
	}
}

func earningsFor(key string, micros int64) *domain.EarningsResult {
	return &domain.EarningsResult{
		AccountKey:      key,
		Date:            "2024-01-15",
		EarningsMicros:  micros,
		EarningsDisplay: float64(micros) / 1000,
		Clicks:          10,
		Impressions:     100,
	}
}

func TestService_Summarize(t *testing.T) {
	asOf := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(store *registrymocks.MockStore, resolver *resolvingmocks.MockResolver)
		validate func(t *testing.T, summary *domain.Summary, err error)
	}{
		{
			name: "Todas as contas resolvem - totais somados e sem falhas",
			setup: func(store *registrymocks.MockStore, resolver *resolvingmocks.MockResolver) {
				accounts := []*domain.Account{activeAccount("acc1"), activeAccount("acc2")}
				store.EXPECT().List().Return(accounts, nil)

				resolver.EXPECT().
					Resolve(gomock.Any(), accounts[0], asOf).
					Return(earningsFor("acc1", 3000), nil)
				resolver.EXPECT().
					Resolve(gomock.Any(), accounts[1], asOf).
					Return(earningsFor("acc2", 7000), nil)
			},
			validate: func(t *testing.T, summary *domain.Summary, err error) {
				require.NoError(t, err)
				require.Len(t, summary.Entries, 2)
				assert.Equal(t, int64(10000), summary.TotalEarningsMicros)
				assert.Equal(t, 10.0, summary.TotalEarningsDisplay)
				assert.Equal(t, 2, summary.AccountCount)
				assert.Equal(t, 0, summary.FailedCount)
			},
		},
		{
			name: "Falha de uma conta não derruba as demais",
			setup: func(store *registrymocks.MockStore, resolver *resolvingmocks.MockResolver) {
				accounts := []*domain.Account{
					activeAccount("acc1"),
					activeAccount("acc2"),
					activeAccount("acc3"),
				}
				store.EXPECT().List().Return(accounts, nil)

				resolver.EXPECT().
					Resolve(gomock.Any(), accounts[0], asOf).
					Return(earningsFor("acc1", 3000), nil)
				resolver.EXPECT().
					Resolve(gomock.Any(), accounts[1], asOf).
					Return(nil, &resolving.ResolutionError{
						AccountKey: "acc2",
						Kind:       resolving.KindUpstream,
					})
				resolver.EXPECT().
					Resolve(gomock.Any(), accounts[2], asOf).
					Return(earningsFor("acc3", 2000), nil)
			},
			validate: func(t *testing.T, summary *domain.Summary, err error) {
				require.NoError(t, err)
				require.Len(t, summary.Entries, 3)

				// A entrada da conta com falha carrega o erro e fica sem receita
				assert.NotEmpty(t, summary.Entries[1].Error)
				assert.Equal(t, "UPSTREAM", summary.Entries[1].ErrorKind)
				assert.Nil(t, summary.Entries[1].Earnings)

				// Os totais cobrem apenas as contas que resolveram
				assert.Equal(t, int64(5000), summary.TotalEarningsMicros)
				assert.Equal(t, 1, summary.FailedCount)
			},
		},
		{
			name: "Timeout é classificado de forma distinta de falha de upstream",
			setup: func(store *registrymocks.MockStore, resolver *resolvingmocks.MockResolver) {
				accounts := []*domain.Account{activeAccount("acc1")}
				store.EXPECT().List().Return(accounts, nil)

				resolver.EXPECT().
					Resolve(gomock.Any(), accounts[0], asOf).
					Return(nil, &resolving.ResolutionError{
						AccountKey: "acc1",
						Kind:       resolving.KindTimeout,
					})
			},
			validate: func(t *testing.T, summary *domain.Summary, err error) {
				require.NoError(t, err)
				require.Len(t, summary.Entries, 1)
				assert.Equal(t, "TIMEOUT", summary.Entries[0].ErrorKind)
				assert.Equal(t, 1, summary.FailedCount)
			},
		},
		{
			name: "Ordem das entradas segue a listagem de contas",
			setup: func(store *registrymocks.MockStore, resolver *resolvingmocks.MockResolver) {
				accounts := []*domain.Account{
					activeAccount("alpha"),
					activeAccount("beta"),
					activeAccount("gamma"),
				}
				store.EXPECT().List().Return(accounts, nil)

				for _, account := range accounts {
					resolver.EXPECT().
						Resolve(gomock.Any(), account, asOf).
						Return(earningsFor(account.Key, 1000), nil)
				}
			},
			validate: func(t *testing.T, summary *domain.Summary, err error) {
				require.NoError(t, err)
				require.Len(t, summary.Entries, 3)
				assert.Equal(t, "alpha", summary.Entries[0].AccountKey)
				assert.Equal(t, "beta", summary.Entries[1].AccountKey)
				assert.Equal(t, "gamma", summary.Entries[2].AccountKey)
			},
		},
		{
			name: "Conta inativa entra no resumo sem buscar receita",
			setup: func(store *registrymocks.MockStore, resolver *resolvingmocks.MockResolver) {
				inactive := activeAccount("acc2")
				inactive.Status = domain.AccountStatusInactive

				accounts := []*domain.Account{activeAccount("acc1"), inactive}
				store.EXPECT().List().Return(accounts, nil)

				resolver.EXPECT().
					Resolve(gomock.Any(), accounts[0], asOf).
					Return(earningsFor("acc1", 3000), nil)
			},
			validate: func(t *testing.T, summary *domain.Summary, err error) {
				require.NoError(t, err)
				require.Len(t, summary.Entries, 2)
				assert.Equal(t, domain.AccountStatusInactive, summary.Entries[1].Status)
				assert.Nil(t, summary.Entries[1].Earnings)
				assert.Empty(t, summary.Entries[1].Error)
				assert.Equal(t, int64(3000), summary.TotalEarningsMicros)
			},
		},
		{
			name: "Sem contas cadastradas retorna resumo vazio",
			setup: func(store *registrymocks.MockStore, resolver *resolvingmocks.MockResolver) {
				store.EXPECT().List().Return([]*domain.Account{}, nil)
			},
			validate: func(t *testing.T, summary *domain.Summary, err error) {
				require.NoError(t, err)
				assert.Empty(t, summary.Entries)
				assert.Equal(t, 0, summary.AccountCount)
				assert.Equal(t, "2024-01-15", summary.Date)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := registrymocks.NewMockStore(ctrl)
			resolver := resolvingmocks.NewMockResolver(ctrl)
			tt.setup(store, resolver)

			service := NewService(testConfig(), store, resolver)

			summary, err := service.Summarize(context.Background(), asOf)
			tt.validate(t, summary, err)
		})
	}
}
