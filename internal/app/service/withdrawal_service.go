package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"go.uber.org/zap"
)

type WithdrawalService interface {
	CreateWithdrawal(ctx context.Context, userID int64, currency models.Currency, amount models.Amount) (*models.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
}

type WithdrawalServiceImpl struct {
	withdrawalRepo repository.WithdrawalsRepository
	ledgerService  LedgerService
	withdrawalChan chan models.Withdrawal
}

func NewWithdrawalService(withdrawalRepo repository.WithdrawalsRepository, ledgerService LedgerService,
	withdrawalChan chan models.Withdrawal) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		withdrawalRepo: withdrawalRepo,
		ledgerService:  ledgerService,
		withdrawalChan: withdrawalChan,
	}
}

// CreateWithdrawal debits the balance and records the request in one
// transaction, then hands it to the processor. Transfers are made in USDT.
func (ws *WithdrawalServiceImpl) CreateWithdrawal(ctx context.Context, userID int64, currency models.Currency, amount models.Amount) (*models.Withdrawal, error) {
	if currency != models.USDT {
		msg := "withdrawals are only supported in USDT"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusUnprocessableEntity)
	}
	if amount <= 0 {
		return nil, appErrors.NewWithCode(appErrors.ErrInvalidAmount, "Amount must be positive", http.StatusUnprocessableEntity)
	}
	now := time.Now().UTC()
	withdrawal := &models.Withdrawal{
		UserID:    userID,
		Currency:  currency,
		Amount:    amount,
		Status:    models.WithdrawalPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx, err := ws.withdrawalRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ws.withdrawalRepo.CreateWithdrawal(ctx, tx, withdrawal); err != nil {
		return nil, appErrors.NewWithCode(err, "create withdrawal", http.StatusInternalServerError)
	}
	_, err = ws.ledgerService.Debit(ctx, tx, Entry{
		UserID:         userID,
		Type:           models.TxWithdrawal,
		Currency:       currency,
		Amount:         amount,
		IdempotencyKey: withdrawalKey(withdrawal.ID),
	})
	if err != nil {
		if errors.Is(err, appErrors.ErrInsufficientFunds) {
			return nil, appErrors.NewWithCode(err, "insufficient funds", http.StatusPaymentRequired)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	select {
	case ws.withdrawalChan <- *withdrawal:
	case <-ctx.Done():
		// Still pending in the database; picked up on the next restart.
		logger.Log.Warn("withdrawal not queued", zap.Int64("withdrawal_id", withdrawal.ID))
	}
	return withdrawal, nil
}

func (ws *WithdrawalServiceImpl) GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return ws.withdrawalRepo.GetWithdrawals(ctx, userID)
}
