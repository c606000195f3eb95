package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, tx *sqlx.Tx, order *models.Order) error
	GetOrderByID(ctx context.Context, q sqlx.QueryerContext, orderID int64) (*models.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*models.Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error)
	Transition(ctx context.Context, tx *sqlx.Tx, orderID int64, from, to models.OrderStatus) error
	AttachPayment(ctx context.Context, tx *sqlx.Tx, orderID, paymentID int64) error
	GetDB() *sqlx.DB
}

type OrderRepositoryImpl struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{db: db}
}

func (or *OrderRepositoryImpl) CreateOrder(ctx context.Context, tx *sqlx.Tx, order *models.Order) error {
	query := `INSERT INTO orders (number, user_id, offer_id, currency, amount, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`
	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &order.ID, order.Number, order.UserID, order.OfferID, order.Currency.String(),
		order.Amount, order.Status.String(), order.CreatedAt, order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("order %s: %w", order.Number, appErrors.ErrDuplicate)
		}
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

// GetOrderByID reads through q so callers inside a transaction see their own
// uncommitted writes.
func (or *OrderRepositoryImpl) GetOrderByID(ctx context.Context, q sqlx.QueryerContext, orderID int64) (*models.Order, error) {
	if q == nil {
		q = or.db
	}
	order := &models.Order{}
	err := sqlx.GetContext(ctx, q, order, `SELECT * FROM orders WHERE id = $1;`, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", orderID, appErrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (or *OrderRepositoryImpl) GetOrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	order := &models.Order{}
	err := or.db.GetContext(ctx, order, `SELECT * FROM orders WHERE number = $1;`, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(fmt.Errorf("order %s: %w", number, appErrors.ErrNotFound), "Order not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (or *OrderRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error) {
	query := `SELECT * FROM orders WHERE user_id = $1 order by created_at desc, id desc;`
	orders := make([]models.Order, 0)
	err := or.db.SelectContext(ctx, &orders, query, userID)
	if err != nil {
		return nil, fmt.Errorf("read user orders: %w", err)
	}
	return orders, nil
}

// Transition moves the order from one status to another only if it is still
// in the expected status; otherwise ErrStaleState is returned.
func (or *OrderRepositoryImpl) Transition(ctx context.Context, tx *sqlx.Tx, orderID int64, from, to models.OrderStatus) error {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4;`
	res, err := tx.ExecContext(ctx, query, to.String(), time.Now().UTC(), orderID, from.String())
	if err != nil {
		return fmt.Errorf("transition order: %w", err)
	}
	return expectOneRow(res, fmt.Sprintf("order %d %s->%s", orderID, from, to))
}

func (or *OrderRepositoryImpl) AttachPayment(ctx context.Context, tx *sqlx.Tx, orderID, paymentID int64) error {
	query := `UPDATE orders SET payment_id = $1, updated_at = $2 WHERE id = $3 AND payment_id IS NULL;`
	res, err := tx.ExecContext(ctx, query, paymentID, time.Now().UTC(), orderID)
	if err != nil {
		return fmt.Errorf("attach payment: %w", err)
	}
	return expectOneRow(res, fmt.Sprintf("order %d payment link", orderID))
}

func (or *OrderRepositoryImpl) GetDB() *sqlx.DB {
	return or.db
}

func expectOneRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("%s: %w", what, appErrors.ErrStaleState)
	}
	return nil
}
