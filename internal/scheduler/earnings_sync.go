package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense"
	"github.com/Myudi422/backend-adsense/infrastructure/repository"
	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
	registryuc "github.com/Myudi422/backend-adsense/internal/usecases/registry"
	"github.com/Myudi422/backend-adsense/pkg/utils"
)

// EarningsSyncConfig representa a configuração do agendador de snapshots de receita
type EarningsSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// EarningsSyncService gerencia o agendamento e execução da sincronização
// de snapshots diários de receita para o banco
type EarningsSyncService struct {
	scheduler           *gocron.Scheduler
	config              EarningsSyncConfig
	accountManager      registryuc.AccountManager
	snapshotRepo        repository.EarningsSnapshotRepository
	integrator          adsense.AdSenseIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewEarningsSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewEarningsSyncService(
	accountManager registryuc.AccountManager,
	snapshotRepo repository.EarningsSnapshotRepository,
	integrator adsense.AdSenseIntegrator,
	appConfig *config.Config,
) *EarningsSyncService {
	syncConfig := EarningsSyncConfig{
		CronSchedule:        appConfig.EarningsSync.CronSchedule,
		LookbackDays:        appConfig.EarningsSync.LookbackDays,
		RequestDelaySeconds: appConfig.EarningsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.EarningsSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.EarningsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de receita carregada")

	return &EarningsSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		accountManager: accountManager,
		snapshotRepo:   snapshotRepo,
		integrator:     integrator,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *EarningsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de receita desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllEarnings(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de receita: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de receita")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllEarnings sincroniza os snapshots de receita de todas as contas ativas
func (s *EarningsSyncService) syncAllEarnings(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots de receita para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de snapshots")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de snapshots")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para sincronização de snapshots de receita")

	s.processEarningsForDates(ctx, activeAccounts, dates)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de snapshots de receita concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// getActiveAccounts busca as contas do cadastro e filtra as ativas
func (s *EarningsSyncService) getActiveAccounts() ([]*domain.Account, error) {
	responses, err := s.accountManager.ListAccounts()
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(responses))
	for _, resp := range responses {
		if resp.Status != domain.AccountStatusActive {
			continue
		}

		// A conta completa, com credenciais, vem do cadastro
		account, err := s.accountManager.GetAccount(resp.Key)
		if err != nil {
			logrus.WithError(err).WithField("account_key", resp.Key).Warn("Erro ao carregar conta para sincronização")
			continue
		}

		accounts = append(accounts, account)
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(accounts),
	}).Info("Contas encontradas para sincronização de snapshots")

	return accounts, nil
}

// getDatesToProcess cria o conjunto de datas, de ontem para trás
func (s *EarningsSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = utils.Midnight(time.Now().AddDate(0, 0, -i-1))
	}
	return dates
}

// processEarningsForDates processa os snapshots de cada conta com um
// número limitado de workers concorrentes
func (s *EarningsSyncService) processEarningsForDates(ctx context.Context, accounts []*domain.Account, dates []time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.Account) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_key": acc.Key,
				"total_dates": len(dates),
			}).Info("Processando snapshots de receita para conta")

			s.processAccountForAllDates(ctx, acc, dates)
		}(account)
	}

	wg.Wait()
}

func (s *EarningsSyncService) processAccountForAllDates(ctx context.Context, acc *domain.Account, dates []time.Time) {
	ordered := make([]time.Time, len(dates))
	copy(ordered, dates)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j])
	})

	for _, date := range ordered {
		s.processAccountEarnings(ctx, acc, date)

		// Aguardar antes da próxima requisição para evitar sobrecarga no upstream
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processAccountEarnings busca e persiste o snapshot de uma conta e data
func (s *EarningsSyncService) processAccountEarnings(ctx context.Context, acc *domain.Account, date time.Time) {
	rows, err := s.integrator.FetchDay(ctx, acc, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_key": acc.Key,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao obter receita para conta e data")
		return
	}

	snapshot := buildSnapshot(acc.Key, date, rows)

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_key": acc.Key,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao salvar snapshot de receita no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_key": acc.Key,
		"date":        date.Format(time.DateOnly),
	}).Info("Snapshot de receita salvo com sucesso")
}

func buildSnapshot(accountKey string, date time.Time, rows []domain.MetricRow) *domain.EarningsSnapshot {
	var micros, clicks, impressions int64
	for _, row := range rows {
		micros += row.EarningsMicros
		clicks += row.Clicks
		impressions += row.Impressions
	}

	earningsDisplay := float64(micros) / 1000

	var ctr, cpm float64
	if impressions > 0 {
		ctr = utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
		cpm = utils.RoundWithTwoDecimalPlace(earningsDisplay / float64(impressions) * 1000)
	}

	return &domain.EarningsSnapshot{
		AccountKey:      accountKey,
		Date:            date,
		EarningsMicros:  micros,
		EarningsDisplay: utils.RoundMoney(earningsDisplay),
		Clicks:          clicks,
		Impressions:     impressions,
		CTR:             ctr,
		CPMDisplay:      cpm,
	}
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *EarningsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots de receita")
	go s.syncAllEarnings(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *EarningsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
