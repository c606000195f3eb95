package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
)

type LedgerRepository interface {
	Apply(ctx context.Context, tx *sqlx.Tx, row *models.Transaction) (models.Amount, error)
	GetBalance(ctx context.Context, userID int64) (*models.UserBalance, error)
	GetHistory(ctx context.Context, userID int64, currency models.Currency) ([]models.Transaction, error)
	GetByKey(ctx context.Context, key string) (*models.Transaction, error)
	SumByCurrency(ctx context.Context, userID int64) (map[models.Currency]models.Amount, error)
	GetDB() *sqlx.DB
}

type LedgerRepositoryImpl struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) *LedgerRepositoryImpl {
	return &LedgerRepositoryImpl{db: db}
}

var balanceColumns = map[models.Currency]string{
	models.RUB:  "balance_rub",
	models.USDT: "balance_usdt",
}

// Apply appends row and moves the owner's cached balance by row.Amount inside
// tx. A row whose idempotency key already exists is rejected with
// ErrDuplicate and leaves the balance untouched. A move that would make the
// balance negative is rejected with ErrInsufficientFunds and leaves no row.
func (lr *LedgerRepositoryImpl) Apply(ctx context.Context, tx *sqlx.Tx, row *models.Transaction) (models.Amount, error) {
	column, ok := balanceColumns[row.Currency]
	if !ok {
		return 0, fmt.Errorf("apply: unsupported currency %q", row.Currency)
	}

	insert := `INSERT INTO transactions (user_id, refer_id, order_id, type, currency, amount, earned, idempotency_key, created_at)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			   ON CONFLICT (idempotency_key) DO NOTHING RETURNING id;`
	err := tx.GetContext(ctx, &row.ID, insert, row.UserID, row.ReferID, row.OrderID, row.Type.String(),
		row.Currency.String(), row.Amount, row.Earned, row.IdempotencyKey, row.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("append transaction %s: %w", row.IdempotencyKey, appErrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("append transaction: %w", err)
	}

	update := fmt.Sprintf(`UPDATE users SET %[1]s = %[1]s + $1 WHERE id = $2 AND %[1]s + $1 >= 0 RETURNING %[1]s;`, column)
	var balance models.Amount
	err = tx.GetContext(ctx, &balance, update, row.Amount, row.UserID)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("move balance: %w", err)
	}
	if _, delErr := tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1;`, row.ID); delErr != nil {
		return 0, fmt.Errorf("discard transaction: %w", delErr)
	}
	var exists int
	if err := tx.GetContext(ctx, &exists, `SELECT count(*) FROM users WHERE id = $1;`, row.UserID); err != nil {
		return 0, fmt.Errorf("check user: %w", err)
	}
	if exists == 0 {
		return 0, fmt.Errorf("user %d: %w", row.UserID, appErrors.ErrNotFound)
	}
	return 0, fmt.Errorf("user %d %s: %w", row.UserID, row.Currency, appErrors.ErrInsufficientFunds)
}

func (lr *LedgerRepositoryImpl) GetBalance(ctx context.Context, userID int64) (*models.UserBalance, error) {
	query := `SELECT balance_rub, balance_usdt FROM users WHERE id = $1;`
	balance := models.UserBalance{}
	err := lr.db.QueryRowxContext(ctx, query, userID).Scan(&balance.RUB, &balance.USDT)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, appErrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &balance, nil
}

func (lr *LedgerRepositoryImpl) GetHistory(ctx context.Context, userID int64, currency models.Currency) ([]models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE user_id = $1 AND currency = $2 ORDER BY id;`
	rows := make([]models.Transaction, 0)
	if err := lr.db.SelectContext(ctx, &rows, query, userID, currency.String()); err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}
	return rows, nil
}

func (lr *LedgerRepositoryImpl) GetByKey(ctx context.Context, key string) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE idempotency_key = $1;`
	row := &models.Transaction{}
	if err := lr.db.GetContext(ctx, row, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", key, appErrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return row, nil
}

func (lr *LedgerRepositoryImpl) SumByCurrency(ctx context.Context, userID int64) (map[models.Currency]models.Amount, error) {
	query := `SELECT currency, CAST(COALESCE(SUM(amount), 0) AS BIGINT) AS total FROM transactions WHERE user_id = $1 GROUP BY currency;`
	var totals []struct {
		Currency models.Currency `db:"currency"`
		Total    models.Amount   `db:"total"`
	}
	if err := lr.db.SelectContext(ctx, &totals, query, userID); err != nil {
		return nil, fmt.Errorf("sum transactions: %w", err)
	}
	sums := map[models.Currency]models.Amount{models.RUB: 0, models.USDT: 0}
	for _, t := range totals {
		sums[t.Currency] = t.Total
	}
	return sums, nil
}

func (lr *LedgerRepositoryImpl) GetDB() *sqlx.DB {
	return lr.db
}
