package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"go.uber.org/zap"
)

type ReferralService interface {
	Propagate(ctx context.Context, order *models.Order) (*models.Transaction, error)
	Link(ctx context.Context, userID, referrerID int64) error
}

type ReferralServiceImpl struct {
	referralRepo   repository.ReferralRepository
	userRepo       repository.UserRepository
	ledgerRepo     repository.LedgerRepository
	ledgerService  LedgerService
	defaultPercent decimal.Decimal
}

func NewReferralService(referralRepo repository.ReferralRepository, userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository, ledgerService LedgerService, defaultPercent decimal.Decimal) *ReferralServiceImpl {
	return &ReferralServiceImpl{
		referralRepo:   referralRepo,
		userRepo:       userRepo,
		ledgerRepo:     ledgerRepo,
		ledgerService:  ledgerService,
		defaultPercent: defaultPercent,
	}
}

// Commission is principal * percent / 100 rounded half-to-even to the
// smallest unit of the currency.
func Commission(principal models.Amount, currency models.Currency, percent decimal.Decimal) models.Amount {
	raw := principal.Decimal(currency).Mul(percent).Shift(-2)
	rounded := raw.RoundBank(currency.Scale())
	return models.Amount(rounded.Shift(currency.Scale()).IntPart())
}

// Propagate credits the buyer's referrer with a commission on a completed
// order. It returns a nil transaction when there is nothing to credit, and
// the already stored row when the commission was paid before.
func (rs *ReferralServiceImpl) Propagate(ctx context.Context, order *models.Order) (*models.Transaction, error) {
	if order.Status != models.OrderCompleted {
		return nil, fmt.Errorf("propagate order %d in status %s: %w", order.ID, order.Status, appErrors.ErrStaleState)
	}
	edge, err := rs.referralRepo.GetReferrer(ctx, order.UserID)
	if err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	referrer, err := rs.userRepo.GetByID(ctx, edge.ReferID)
	if err != nil {
		return nil, err
	}
	percent := rs.defaultPercent
	if referrer.ReferralPercent.Valid {
		percent = referrer.ReferralPercent.Decimal
	}
	commission := Commission(order.Amount, order.Currency, percent)
	if commission <= 0 {
		logger.Log.Debug("referral commission rounds to zero",
			zap.Int64("order_id", order.ID), zap.Int64("referrer_id", referrer.ID))
		return nil, nil
	}

	key := referralKey(order.ID, referrer.ID)
	tx, err := rs.ledgerRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	buyerID := order.UserID
	_, err = rs.ledgerService.Credit(ctx, tx, Entry{
		UserID:         referrer.ID,
		ReferID:        &buyerID,
		OrderID:        &order.ID,
		Type:           models.TxReferral,
		Currency:       order.Currency,
		Amount:         commission,
		Earned:         &commission,
		IdempotencyKey: key,
	})
	if err != nil {
		if errors.Is(err, appErrors.ErrDuplicate) {
			tx.Rollback()
			return rs.ledgerRepo.GetByKey(ctx, key)
		}
		return nil, fmt.Errorf("credit referral: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	logger.Log.Info("referral commission credited",
		zap.Int64("order_id", order.ID),
		zap.Int64("referrer_id", referrer.ID),
		zap.String("commission", commission.Format(order.Currency)),
		zap.String("currency", order.Currency.String()))
	return rs.ledgerRepo.GetByKey(ctx, key)
}

func (rs *ReferralServiceImpl) Link(ctx context.Context, userID, referrerID int64) error {
	if userID == referrerID {
		return appErrors.ErrSelfReferral
	}
	if _, err := rs.userRepo.GetByID(ctx, referrerID); err != nil {
		return err
	}
	return rs.referralRepo.CreateReferral(ctx, &models.Referral{
		UserID:    userID,
		ReferID:   referrerID,
		CreatedAt: time.Now().UTC(),
	})
}
