package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/ujwegh/gamemart/internal/app/config"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"github.com/ujwegh/gamemart/internal/app/service"
	"github.com/ujwegh/gamemart/internal/app/service/clients"
	"go.uber.org/zap"
)

const withdrawalQueueSize = 100

type app struct {
	cfg         config.AppConfig
	redisClient *redis.Client

	userRepo       repository.UserRepository
	withdrawalRepo repository.WithdrawalsRepository

	tokens      service.TokenService
	users       service.UserService
	ledger      service.LedgerService
	referrals   service.ReferralService
	settlement  service.SettlementService
	checkout    service.CheckoutService
	withdrawals service.WithdrawalService
	dispatcher  service.NotificationDispatcher
	verifier    service.WebhookVerifier
	gateway     clients.PaymentGateway

	withdrawalChan chan models.Withdrawal
}

func newApp(ctx context.Context, cfg config.AppConfig, db *sqlx.DB) (*app, error) {
	a := &app{cfg: cfg, withdrawalChan: make(chan models.Withdrawal, withdrawalQueueSize)}

	userRepo := repository.NewUserRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	withdrawalRepo := repository.NewWithdrawalsRepository(db)
	a.userRepo, a.withdrawalRepo = userRepo, withdrawalRepo

	notifier, err := newNotifier(cfg)
	if err != nil {
		return nil, err
	}
	a.dispatcher = service.NewNotificationDispatcher(notifier, a.newDeduplicator(ctx), cfg.NotifyTimeout)

	a.gateway = clients.NewCryptoPayClient(cfg)
	a.tokens = service.NewTokenService(cfg)
	a.users = service.NewUserService(userRepo)
	a.ledger = service.NewLedgerService(ledgerRepo)
	a.referrals = service.NewReferralService(referralRepo, userRepo, ledgerRepo, a.ledger, cfg.ReferralDefaultPercent)
	a.settlement = service.NewSettlementService(paymentRepo, orderRepo, userRepo, a.ledger, a.referrals, a.dispatcher)
	a.checkout = service.NewCheckoutService(orderRepo, offerRepo, paymentRepo, a.gateway, cfg.PaymentExpiry)
	a.withdrawals = service.NewWithdrawalService(withdrawalRepo, a.ledger, a.withdrawalChan)
	a.verifier = service.NewWebhookVerifier(cfg.WebhookSecret)
	return a, nil
}

func newNotifier(cfg config.AppConfig) (service.Notifier, error) {
	if cfg.TelegramBotToken == "" || len(cfg.AdminChatIDs) == 0 {
		logger.Log.Warn("telegram alerts are disabled, alerts go to the log")
		return service.LogNotifier{}, nil
	}
	notifier, err := service.NewTelegramNotifier(cfg.TelegramBotToken, cfg.AdminChatIDs)
	if err != nil {
		return nil, fmt.Errorf("create notifier: %w", err)
	}
	return notifier, nil
}

// newDeduplicator uses Redis when configured and reachable, process memory
// otherwise.
func (a *app) newDeduplicator(ctx context.Context) service.Deduplicator {
	if a.cfg.RedisAddr == "" {
		return service.NewMemoryDeduplicator()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("redis is unavailable, using in-memory alert de-duplication", zap.Error(err))
		client.Close()
		return service.NewMemoryDeduplicator()
	}
	a.redisClient = client
	return service.NewRedisDeduplicator(client)
}

func (a *app) Close() {
	a.dispatcher.Wait()
	if a.redisClient != nil {
		a.redisClient.Close()
	}
}
