package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ujwegh/gamemart/internal/app/handlers"
	"github.com/ujwegh/gamemart/internal/app/logger"
	middlware "github.com/ujwegh/gamemart/internal/app/middleware"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"github.com/ujwegh/gamemart/internal/app/router"
	"github.com/ujwegh/gamemart/internal/app/service"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the withdrawal worker and the expiry sweeper",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.InitLogger(cfg.LogLevel)

	serverCtx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storage, err := repository.NewDBStorage(cfg)
	if err != nil {
		return err
	}
	defer storage.DBConn.Close()

	a, err := newApp(serverCtx, cfg, storage.DBConn)
	if err != nil {
		return err
	}
	defer a.Close()

	withdrawalCache := service.NewWithdrawalCache(cfg.WithdrawalRetry, cfg.WithdrawalRetry/2, a.withdrawalChan)
	processor := service.NewWithdrawalProcessor(a.withdrawalRepo, a.userRepo, withdrawalCache, a.ledger,
		a.gateway, a.dispatcher, a.withdrawalChan)
	go processor.ProcessWithdrawals(serverCtx)
	go processor.ProcessUnfinishedWithdrawals(serverCtx)

	sweeper := service.NewExpirySweeper(a.settlement, cfg.SweepSchedule, cfg.SweepBatchSize)
	if err := sweeper.Start(serverCtx); err != nil {
		return err
	}
	defer sweeper.Stop()

	r := router.NewAppRouter(router.Handlers{
		User:     handlers.NewUserHandler(a.users, a.referrals, cfg.ContextTimeoutSec),
		Orders:   handlers.NewOrdersHandler(cfg.ContextTimeoutSec, a.checkout),
		Balance:  handlers.NewBalanceHandler(a.ledger, a.withdrawals, cfg.ContextTimeoutSec),
		Webhooks: handlers.NewWebhookHandler(cfg.ContextTimeoutSec, a.verifier, a.settlement, a.dispatcher),
		Admin:    handlers.NewAdminHandler(cfg.ContextTimeoutSec, a.settlement, a.ledger),
	},
		middlware.NewAuthMiddleware(a.tokens, a.users, cfg.ContextTimeoutSec),
		middlware.NewAdminMiddleware(cfg.AdminPasswordHash),
		middlware.NewIPFilter(cfg.WebhookAllowedCIDRs),
	)

	server := &http.Server{Addr: cfg.ServerAddr, Handler: r}
	go func() {
		<-serverCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Log.Info("starting server", zap.String("address", cfg.ServerAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Log.Info("server stopped")
	return nil
}
