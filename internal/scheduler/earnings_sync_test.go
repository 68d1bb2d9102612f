package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	adsensemocks "github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense/mocks"
	repomocks "github.com/Myudi422/backend-adsense/infrastructure/repository/mocks"
	"github.com/Myudi422/backend-adsense/internal/domain"
	registrymocks "github.com/Myudi422/backend-adsense/internal/usecases/registry/mocks"
)

func TestBuildSnapshot(t *testing.T) {
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rows     []domain.MetricRow
		validate func(t *testing.T, snapshot *domain.EarningsSnapshot)
	}{
		{
			name: "Soma as linhas e calcula as métricas derivadas",
			rows: []domain.MetricRow{
				{EarningsMicros: 2000, Clicks: 5, Impressions: 500},
				{EarningsMicros: 1169, Clicks: 4, Impressions: 396},
			},
			validate: func(t *testing.T, snapshot *domain.EarningsSnapshot) {
				assert.Equal(t, int64(3169), snapshot.EarningsMicros)
				assert.Equal(t, 3.17, snapshot.EarningsDisplay)
				assert.Equal(t, int64(9), snapshot.Clicks)
				assert.Equal(t, int64(896), snapshot.Impressions)
				assert.Equal(t, 1.0, snapshot.CTR)
				assert.Equal(t, 3.54, snapshot.CPMDisplay)
			},
		},
		{
			name: "Sem impressões zera CTR e CPM",
			rows: []domain.MetricRow{{EarningsMicros: 1000}},
			validate: func(t *testing.T, snapshot *domain.EarningsSnapshot) {
				assert.Equal(t, 0.0, snapshot.CTR)
				assert.Equal(t, 0.0, snapshot.CPMDisplay)
				assert.Equal(t, 1.0, snapshot.EarningsDisplay)
			},
		},
		{
			name: "Dia vazio gera snapshot zerado",
			rows: nil,
			validate: func(t *testing.T, snapshot *domain.EarningsSnapshot) {
				assert.Equal(t, int64(0), snapshot.EarningsMicros)
				assert.Equal(t, 0.0, snapshot.EarningsDisplay)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := buildSnapshot("acc1", date, tt.rows)
			assert.Equal(t, "acc1", snapshot.AccountKey)
			assert.Equal(t, date, snapshot.Date)
			tt.validate(t, snapshot)
		})
	}
}

func TestEarningsSyncService_processAccountEarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := adsensemocks.NewMockAdSenseIntegrator(ctrl)
	snapshotRepo := repomocks.NewMockEarningsSnapshotRepository(ctrl)

	service := &EarningsSyncService{
		config:       EarningsSyncConfig{RequestDelaySeconds: 0},
		snapshotRepo: snapshotRepo,
		integrator:   integrator,
	}

	account := &domain.Account{Key: "acc1", Status: domain.AccountStatusActive}
	date := time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)

	integrator.EXPECT().
		FetchDay(gomock.Any(), account, date).
		Return([]domain.MetricRow{{EarningsMicros: 5000, Clicks: 10, Impressions: 1000}}, nil)

	var saved *domain.EarningsSnapshot
	snapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *domain.EarningsSnapshot) error {
			saved = snapshot
			return nil
		})

	service.processAccountEarnings(context.Background(), account, date)

	assert.NotNil(t, saved)
	assert.Equal(t, "acc1", saved.AccountKey)
	assert.Equal(t, int64(5000), saved.EarningsMicros)
	assert.Equal(t, 5.0, saved.EarningsDisplay)
}

func TestEarningsSyncService_processAccountEarnings_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := adsensemocks.NewMockAdSenseIntegrator(ctrl)
	snapshotRepo := repomocks.NewMockEarningsSnapshotRepository(ctrl)

	service := &EarningsSyncService{
		config:       EarningsSyncConfig{RequestDelaySeconds: 0},
		snapshotRepo: snapshotRepo,
		integrator:   integrator,
	}

	account := &domain.Account{Key: "acc1"}
	date := time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)

	// Nada deve ser salvo quando a busca falha
	integrator.EXPECT().
		FetchDay(gomock.Any(), account, date).
		Return(nil, assert.AnError)

	service.processAccountEarnings(context.Background(), account, date)
}

func TestEarningsSyncService_getDatesToProcess(t *testing.T) {
	service := &EarningsSyncService{
		config: EarningsSyncConfig{LookbackDays: 3},
	}

	dates := service.getDatesToProcess()
	assert.Len(t, dates, 3)

	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Format(time.DateOnly), dates[0].Format(time.DateOnly))

	// As datas recuam um dia por posição
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].Before(dates[i-1]))
	}
}

func TestEarningsSyncService_GetStatusDuringSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountManager := registrymocks.NewMockAccountManager(ctrl)
	accountManager.EXPECT().
		ListAccounts().
		Return([]*domain.AccountResponse{}, nil).
		AnyTimes()

	service := &EarningsSyncService{
		config:         EarningsSyncConfig{SyncEnabled: true, LookbackDays: 1},
		accountManager: accountManager,
	}

	// Leituras de status concorrentes com a sincronização não podem
	// observar estado inconsistente
	done := make(chan struct{})
	go func() {
		defer close(done)
		service.syncAllEarnings(context.Background())
	}()

	for i := 0; i < 100; i++ {
		status := service.GetStatus()
		assert.Equal(t, true, status["sync_enabled"])
	}

	<-done

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	startedAt, ok := status["last_sync_started_at"].(time.Time)
	assert.True(t, ok)
	assert.False(t, startedAt.IsZero())
}
