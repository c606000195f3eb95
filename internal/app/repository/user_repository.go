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

type (
	UserRepository interface {
		Create(ctx context.Context, tx *sqlx.Tx, user *models.User) error
		GetByID(ctx context.Context, id int64) (*models.User, error)
		GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
		IncrementOrdersCount(ctx context.Context, tx *sqlx.Tx, id int64) error
		GetDB() *sqlx.DB
	}
	UserRepositoryImpl struct {
		db *sqlx.DB
	}
)

func NewUserRepository(db *sqlx.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

// Create inserts a user with zero balances. Balances only ever move through
// the ledger.
func (ur *UserRepositoryImpl) Create(ctx context.Context, tx *sqlx.Tx, user *models.User) error {
	query := `INSERT INTO users (telegram_id, username, referral_percent, created_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (telegram_id) DO NOTHING RETURNING id;`
	err := tx.GetContext(ctx, &user.ID, query, user.TelegramID, user.Username, user.ReferralPercent, user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user with telegram id %d: %w", user.TelegramID, appErrors.ErrDuplicate)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.BalanceRUB, user.BalanceUSDT = 0, 0
	return nil
}

func (ur *UserRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return ur.getOne(ctx, `SELECT * FROM users WHERE id = $1;`, id)
}

func (ur *UserRepositoryImpl) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	return ur.getOne(ctx, `SELECT * FROM users WHERE telegram_id = $1;`, telegramID)
}

func (ur *UserRepositoryImpl) getOne(ctx context.Context, query string, arg int64) (*models.User, error) {
	user := models.User{}
	err := ur.db.GetContext(ctx, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", arg, appErrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (ur *UserRepositoryImpl) IncrementOrdersCount(ctx context.Context, tx *sqlx.Tx, id int64) error {
	_, err := tx.ExecContext(ctx, `UPDATE users SET orders_count = orders_count + 1 WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("increment orders count: %w", err)
	}
	return nil
}

func (ur *UserRepositoryImpl) GetDB() *sqlx.DB {
	return ur.db
}
