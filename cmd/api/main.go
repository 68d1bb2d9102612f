package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Myudi422/backend-adsense/infrastructure/database/postgres"
	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense"
	"github.com/Myudi422/backend-adsense/infrastructure/integrator/adsense/adsenseclient"
	"github.com/Myudi422/backend-adsense/infrastructure/registry"
	"github.com/Myudi422/backend-adsense/infrastructure/repository"
	"github.com/Myudi422/backend-adsense/internal/api"
	"github.com/Myudi422/backend-adsense/internal/api/handler"
	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/scheduler"
	"github.com/Myudi422/backend-adsense/internal/usecases/aggregating"
	registryuc "github.com/Myudi422/backend-adsense/internal/usecases/registry"
	"github.com/Myudi422/backend-adsense/internal/usecases/resolving"
	"github.com/Myudi422/backend-adsense/internal/usecases/summarizing"
	"github.com/Myudi422/backend-adsense/pkg/cache"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewEarningsSnapshotRepository(pgConn)

	accountStore, err := registry.NewFileStore(cfg.Registry)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o arquivo de contas")
	}

	accountService := registryuc.NewService(accountStore)

	tokenManager := adsenseclient.NewTokenManager(cfg)
	adsenseClient := adsenseclient.NewClient(cfg)
	adsenseIntegrator := adsense.New(cfg, adsenseClient, tokenManager, accountService.PersistExternalAccountID)

	resolverService := resolving.NewService(cfg, adsenseIntegrator)
	aggregatorService := aggregating.NewService()
	summaryService := summarizing.NewService(cfg, accountStore, resolverService)

	responseCache := cache.New(time.Duration(cfg.Cache.TTLSeconds) * time.Second)

	// Inicializa o agendador de snapshots de receita
	earningsSyncService := scheduler.NewEarningsSyncService(
		accountService,
		snapshotRepo,
		adsenseIntegrator,
		cfg,
	)

	if err := earningsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de receita")
	} else {
		logrus.Info("Agendador de snapshots de receita iniciado com sucesso")
	}

	earningsServices := handler.EarningsServices{
		Config:     cfg,
		Accounts:   accountService,
		Resolver:   resolverService,
		Aggregator: aggregatorService,
		Integrator: adsenseIntegrator,
		Cache:      responseCache,
	}

	server, err := api.New(
		cfg,
		earningsServices,
		summaryService,
		accountService,
		snapshotRepo,
		responseCache,
		earningsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
