package service

import (
	"context"
	"errors"
	"fmt"

	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"github.com/ujwegh/gamemart/internal/app/service/clients"
	"go.uber.org/zap"
)

const pendingWithdrawalsPage = 20

type WithdrawalProcessor interface {
	ProcessWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error
}

type WithdrawalProcessorImpl struct {
	withdrawalRepo  repository.WithdrawalsRepository
	userRepo        repository.UserRepository
	withdrawalCache WithdrawalCache
	ledgerService   LedgerService
	gateway         clients.PaymentGateway
	dispatcher      NotificationDispatcher
	withdrawalChan  chan models.Withdrawal
}

func NewWithdrawalProcessor(withdrawalRepo repository.WithdrawalsRepository,
	userRepo repository.UserRepository,
	withdrawalCache WithdrawalCache,
	ledgerService LedgerService,
	gateway clients.PaymentGateway,
	dispatcher NotificationDispatcher,
	withdrawalChan chan models.Withdrawal) *WithdrawalProcessorImpl {
	return &WithdrawalProcessorImpl{
		withdrawalRepo:  withdrawalRepo,
		userRepo:        userRepo,
		withdrawalCache: withdrawalCache,
		ledgerService:   ledgerService,
		gateway:         gateway,
		dispatcher:      dispatcher,
		withdrawalChan:  withdrawalChan,
	}
}

// ProcessUnfinishedWithdrawals republishes withdrawals left pending by a
// previous run. It must run after ProcessWithdrawals has started.
func (wp *WithdrawalProcessorImpl) ProcessUnfinishedWithdrawals(ctx context.Context) {
	logger.Log.Info("start processing unfinished withdrawals")
	total, err := wp.withdrawalRepo.CountPendingWithdrawals(ctx)
	if err != nil {
		logger.Log.Error("failed to count pending withdrawals", zap.Error(err))
		return
	}
	for offset := 0; offset < total; offset += pendingWithdrawalsPage {
		withdrawals, err := wp.withdrawalRepo.GetPendingWithdrawals(ctx, pendingWithdrawalsPage, offset)
		if err != nil {
			logger.Log.Error("failed to get pending withdrawals", zap.Error(err))
			return
		}
		for _, withdrawal := range withdrawals {
			select {
			case wp.withdrawalChan <- withdrawal:
			case <-ctx.Done():
				return
			}
		}
	}
	logger.Log.Info("published pending withdrawals", zap.Int("total_withdrawals", total))
}

func (wp *WithdrawalProcessorImpl) ProcessWithdrawals(ctx context.Context) {
	for {
		select {
		case withdrawal := <-wp.withdrawalChan:
			if err := wp.ProcessWithdrawal(ctx, &withdrawal); err != nil {
				logger.Log.Error("failed to process withdrawal",
					zap.Int64("withdrawal_id", withdrawal.ID), zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

// ProcessWithdrawal sends one pending withdrawal to the provider. The spend id
// is derived from the withdrawal id, so a repeated transfer is a no-op on the
// provider side.
func (wp *WithdrawalProcessorImpl) ProcessWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error {
	logger.Log.Debug("processing withdrawal", zap.Int64("withdrawal_id", withdrawal.ID))
	user, err := wp.userRepo.GetByID(ctx, withdrawal.UserID)
	if err != nil {
		wp.withdrawalCache.AddWithdrawal(withdrawal)
		return fmt.Errorf("get user: %w", err)
	}

	transfer, err := wp.gateway.Transfer(ctx, user.TelegramID, withdrawal.Currency, withdrawal.Amount,
		fmt.Sprintf("withdrawal-%d", withdrawal.ID), clients.TransferOptions{Comment: "Balance withdrawal"})
	switch {
	case errors.Is(err, appErrors.ErrProviderRejected):
		return wp.reject(ctx, withdrawal, err)
	case err != nil:
		wp.withdrawalCache.AddWithdrawal(withdrawal)
		return fmt.Errorf("transfer: %w", err)
	}

	tx, err := wp.withdrawalRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		wp.withdrawalCache.AddWithdrawal(withdrawal)
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()
	err = wp.withdrawalRepo.Transition(ctx, tx, withdrawal.ID, models.WithdrawalPending, models.WithdrawalCompleted, &transfer.TransferID)
	if err != nil {
		if errors.Is(err, appErrors.ErrStaleState) {
			logger.Log.Debug("withdrawal already finished", zap.Int64("withdrawal_id", withdrawal.ID))
			return nil
		}
		wp.withdrawalCache.AddWithdrawal(withdrawal)
		return err
	}
	if err := tx.Commit(); err != nil {
		wp.withdrawalCache.AddWithdrawal(withdrawal)
		return fmt.Errorf("commit transaction: %w", err)
	}
	withdrawal.Status, withdrawal.TransferID = models.WithdrawalCompleted, &transfer.TransferID
	logger.Log.Info("withdrawal completed",
		zap.Int64("withdrawal_id", withdrawal.ID), zap.String("transfer_id", transfer.TransferID))
	return nil
}

// reject fails the withdrawal and returns the money with a refund row.
func (wp *WithdrawalProcessorImpl) reject(ctx context.Context, withdrawal *models.Withdrawal, cause error) error {
	tx, err := wp.withdrawalRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()
	err = wp.withdrawalRepo.Transition(ctx, tx, withdrawal.ID, models.WithdrawalPending, models.WithdrawalFailed, nil)
	if err != nil {
		if errors.Is(err, appErrors.ErrStaleState) {
			return nil
		}
		return err
	}
	_, err = wp.ledgerService.Credit(ctx, tx, Entry{
		UserID:         withdrawal.UserID,
		Type:           models.TxRefund,
		Currency:       withdrawal.Currency,
		Amount:         withdrawal.Amount,
		IdempotencyKey: withdrawalRefundKey(withdrawal.ID),
	})
	if err != nil {
		return fmt.Errorf("refund withdrawal: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	withdrawal.Status = models.WithdrawalFailed
	logger.Log.Warn("withdrawal rejected by provider",
		zap.Int64("withdrawal_id", withdrawal.ID), zap.Error(cause))
	wp.dispatcher.Dispatch(Notification{
		Key: fmt.Sprintf("withdrawal-failed:%d", withdrawal.ID),
		Text: fmt.Sprintf("Withdrawal %d of %s %s rejected by provider and refunded: %v", withdrawal.ID,
			withdrawal.Amount.Format(withdrawal.Currency), withdrawal.Currency, cause),
	})
	return nil
}
