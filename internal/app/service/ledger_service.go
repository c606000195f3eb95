package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
)

type (
	// Entry describes one balance movement. Amount is always positive; the
	// direction comes from Credit or Debit.
	Entry struct {
		UserID         int64
		ReferID        *int64
		OrderID        *int64
		Type           models.TransactionType
		Currency       models.Currency
		Amount         models.Amount
		Earned         *models.Amount
		IdempotencyKey string
	}
	Drift struct {
		Currency models.Currency
		Balance  models.Amount
		Ledger   models.Amount
	}
	LedgerService interface {
		Credit(ctx context.Context, tx *sqlx.Tx, entry Entry) (models.Amount, error)
		Debit(ctx context.Context, tx *sqlx.Tx, entry Entry) (models.Amount, error)
		GetBalance(ctx context.Context, userID int64) (*models.UserBalance, error)
		History(ctx context.Context, userID int64, currency models.Currency) ([]models.Transaction, error)
		Reconcile(ctx context.Context, userID int64) ([]Drift, error)
	}
	LedgerServiceImpl struct {
		ledgerRepo repository.LedgerRepository
	}
)

func NewLedgerService(ledgerRepo repository.LedgerRepository) *LedgerServiceImpl {
	return &LedgerServiceImpl{ledgerRepo: ledgerRepo}
}

func (ls *LedgerServiceImpl) Credit(ctx context.Context, tx *sqlx.Tx, entry Entry) (models.Amount, error) {
	return ls.apply(ctx, tx, entry, entry.Amount)
}

// Debit fails with ErrInsufficientFunds when the balance would go negative.
// Nothing is written in that case.
func (ls *LedgerServiceImpl) Debit(ctx context.Context, tx *sqlx.Tx, entry Entry) (models.Amount, error) {
	return ls.apply(ctx, tx, entry, entry.Amount.Neg())
}

func (ls *LedgerServiceImpl) apply(ctx context.Context, tx *sqlx.Tx, entry Entry, signed models.Amount) (models.Amount, error) {
	if entry.Amount <= 0 {
		return 0, fmt.Errorf("%s %s: %w", entry.Type, entry.Amount.Format(entry.Currency), appErrors.ErrInvalidAmount)
	}
	if entry.IdempotencyKey == "" {
		return 0, errors.New("ledger entry without idempotency key")
	}
	row := &models.Transaction{
		UserID:         entry.UserID,
		ReferID:        entry.ReferID,
		OrderID:        entry.OrderID,
		Type:           entry.Type,
		Currency:       entry.Currency,
		Amount:         signed,
		Earned:         entry.Earned,
		IdempotencyKey: entry.IdempotencyKey,
		CreatedAt:      time.Now().UTC(),
	}
	return ls.ledgerRepo.Apply(ctx, tx, row)
}

func (ls *LedgerServiceImpl) GetBalance(ctx context.Context, userID int64) (*models.UserBalance, error) {
	return ls.ledgerRepo.GetBalance(ctx, userID)
}

func (ls *LedgerServiceImpl) History(ctx context.Context, userID int64, currency models.Currency) ([]models.Transaction, error) {
	return ls.ledgerRepo.GetHistory(ctx, userID, currency)
}

// Reconcile rebuilds the balance of every currency from the transaction log and
// reports the currencies where it differs from the cached balance.
func (ls *LedgerServiceImpl) Reconcile(ctx context.Context, userID int64) ([]Drift, error) {
	balance, err := ls.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	sums, err := ls.ledgerRepo.SumByCurrency(ctx, userID)
	if err != nil {
		return nil, err
	}
	drifts := make([]Drift, 0)
	for _, c := range []models.Currency{models.RUB, models.USDT} {
		if balance.Of(c) != sums[c] {
			drifts = append(drifts, Drift{Currency: c, Balance: balance.Of(c), Ledger: sums[c]})
		}
	}
	return drifts, nil
}

func orderKey(orderID int64) string { return fmt.Sprintf("order:%d", orderID) }
func depositKey(orderID int64) string { return fmt.Sprintf("deposit:%d", orderID) }
func refundKey(orderID int64) string { return fmt.Sprintf("refund:%d", orderID) }
func referralKey(orderID, referrerID int64) string { return fmt.Sprintf("referral:%d:%d", orderID, referrerID) }
func withdrawalKey(id int64) string { return fmt.Sprintf("withdrawal:%d", id) }
func withdrawalRefundKey(id int64) string { return fmt.Sprintf("withdrawal-refund:%d", id) }
