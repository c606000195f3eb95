package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
)

type WithdrawalsRepository interface {
	CreateWithdrawal(ctx context.Context, tx *sqlx.Tx, withdrawal *models.Withdrawal) error
	GetWithdrawal(ctx context.Context, id int64) (*models.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	Transition(ctx context.Context, tx *sqlx.Tx, id int64, from, to models.WithdrawalStatus, transferID *string) error
	CountPendingWithdrawals(ctx context.Context) (int, error)
	GetPendingWithdrawals(ctx context.Context, limit int, offset int) ([]models.Withdrawal, error)
	GetDB() *sqlx.DB
}

type WithdrawalsRepositoryImpl struct {
	db *sqlx.DB
}

func NewWithdrawalsRepository(db *sqlx.DB) *WithdrawalsRepositoryImpl {
	return &WithdrawalsRepositoryImpl{db: db}
}

func (wr *WithdrawalsRepositoryImpl) CreateWithdrawal(ctx context.Context, tx *sqlx.Tx, withdrawal *models.Withdrawal) error {
	query := `INSERT INTO withdrawals (user_id, currency, amount, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`
	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &withdrawal.ID, withdrawal.UserID, withdrawal.Currency.String(), withdrawal.Amount,
		withdrawal.Status.String(), withdrawal.CreatedAt, withdrawal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (wr *WithdrawalsRepositoryImpl) GetWithdrawal(ctx context.Context, id int64) (*models.Withdrawal, error) {
	withdrawal := &models.Withdrawal{}
	if err := wr.db.GetContext(ctx, withdrawal, `SELECT * FROM withdrawals WHERE id = $1;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("withdrawal %d: %w", id, appErrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return withdrawal, nil
}

func (wr *WithdrawalsRepositoryImpl) GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	query := `SELECT * FROM withdrawals WHERE user_id = $1 order by created_at, id;`
	withdrawals := make([]models.Withdrawal, 0)
	err := wr.db.SelectContext(ctx, &withdrawals, query, userID)
	if err != nil {
		return nil, fmt.Errorf("read withdrawals: %w", err)
	}
	return withdrawals, nil
}

func (wr *WithdrawalsRepositoryImpl) Transition(ctx context.Context, tx *sqlx.Tx, id int64, from, to models.WithdrawalStatus, transferID *string) error {
	query := `UPDATE withdrawals SET status = $1, transfer_id = $2, updated_at = $3 WHERE id = $4 AND status = $5;`
	res, err := tx.ExecContext(ctx, query, to.String(), transferID, time.Now().UTC(), id, from.String())
	if err != nil {
		return fmt.Errorf("transition withdrawal: %w", err)
	}
	return expectOneRow(res, fmt.Sprintf("withdrawal %d %s->%s", id, from, to))
}

func (wr *WithdrawalsRepositoryImpl) CountPendingWithdrawals(ctx context.Context) (int, error) {
	var count int
	err := wr.db.GetContext(ctx, &count, `SELECT count(*) FROM withdrawals WHERE status = $1;`, models.WithdrawalPending.String())
	if err != nil {
		return 0, fmt.Errorf("count pending withdrawals: %w", err)
	}
	return count, nil
}

func (wr *WithdrawalsRepositoryImpl) GetPendingWithdrawals(ctx context.Context, limit int, offset int) ([]models.Withdrawal, error) {
	query := `SELECT * FROM withdrawals WHERE status = $1 ORDER BY id limit $2 offset $3;`
	withdrawals := make([]models.Withdrawal, 0)
	err := wr.db.SelectContext(ctx, &withdrawals, query, models.WithdrawalPending.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("read pending withdrawals: %w", err)
	}
	return withdrawals, nil
}

func (wr *WithdrawalsRepositoryImpl) GetDB() *sqlx.DB {
	return wr.db
}
