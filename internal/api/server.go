package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Myudi422/backend-adsense/infrastructure/repository"
	"github.com/Myudi422/backend-adsense/internal/api/handler"
	"github.com/Myudi422/backend-adsense/internal/api/handler/router"
	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/scheduler"
	"github.com/Myudi422/backend-adsense/internal/usecases/registry"
	"github.com/Myudi422/backend-adsense/internal/usecases/summarizing"
	"github.com/Myudi422/backend-adsense/pkg/cache"
	"github.com/Myudi422/backend-adsense/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	earningsServices handler.EarningsServices,
	summaryService summarizing.Summarizer,
	accountService registry.AccountManager,
	snapshotRepo repository.EarningsSnapshotRepository,
	responseCache *cache.Cache,
	earningsSyncService *scheduler.EarningsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		EarningsSyncService: earningsSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Earnings(earningsServices)...),
		router.WithRoutes(handler.SummaryRoutes(summaryService, responseCache)...),
		router.WithRoutes(handler.Accounts(accountService)...),
		router.WithRoutes(handler.Database(accountService)...),
		router.WithRoutes(handler.History(snapshotRepo)...),
		router.WithRoutes(handler.CacheRoutes(responseCache)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
