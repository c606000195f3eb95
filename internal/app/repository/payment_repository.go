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

type PaymentRepository interface {
	CreatePayment(ctx context.Context, tx *sqlx.Tx, payment *models.Payment) error
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	GetPaymentByExternalID(ctx context.Context, externalID string) (*models.Payment, error)
	Transition(ctx context.Context, tx *sqlx.Tx, paymentID int64, from, to models.PaymentStatus) error
	ListExpiredPending(ctx context.Context, cutoff time.Time, afterID int64, limit int) ([]models.Payment, error)
	GetDB() *sqlx.DB
}

type PaymentRepositoryImpl struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepositoryImpl {
	return &PaymentRepositoryImpl{db: db}
}

// CreatePayment stores a payment intent. external_id is the de-duplication key
// for provider notifications, so a second intent with the same id is rejected.
func (pr *PaymentRepositoryImpl) CreatePayment(ctx context.Context, tx *sqlx.Tx, payment *models.Payment) error {
	query := `INSERT INTO payments (user_id, offer_id, order_id, kind, amount_to_pay, currency, external_id, pay_url, status, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  ON CONFLICT (external_id) DO NOTHING RETURNING id;`
	err := tx.GetContext(ctx, &payment.ID, query, payment.UserID, payment.OfferID, payment.OrderID, payment.Kind.String(),
		payment.AmountToPay, payment.Currency.String(), payment.ExternalID, payment.PayURL, payment.Status.String(),
		payment.ExpiresAt, payment.CreatedAt, payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return fmt.Errorf("payment %s: %w", payment.ExternalID, appErrors.ErrDuplicate)
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (pr *PaymentRepositoryImpl) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	payment := &models.Payment{}
	if err := pr.db.GetContext(ctx, payment, `SELECT * FROM payments WHERE id = $1;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment %d: %w", id, appErrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

func (pr *PaymentRepositoryImpl) GetPaymentByExternalID(ctx context.Context, externalID string) (*models.Payment, error) {
	payment := &models.Payment{}
	if err := pr.db.GetContext(ctx, payment, `SELECT * FROM payments WHERE external_id = $1;`, externalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment %s: %w", externalID, appErrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

// Transition is a compare-and-swap on the payment status. Moving to a
// terminal status stamps settled_at.
func (pr *PaymentRepositoryImpl) Transition(ctx context.Context, tx *sqlx.Tx, paymentID int64, from, to models.PaymentStatus) error {
	now := time.Now().UTC()
	var settledAt *time.Time
	if to.Terminal() {
		settledAt = &now
	}
	query := `UPDATE payments SET status = $1, updated_at = $2, settled_at = $3 WHERE id = $4 AND status = $5;`
	res, err := tx.ExecContext(ctx, query, to.String(), now, settledAt, paymentID, from.String())
	if err != nil {
		return fmt.Errorf("transition payment: %w", err)
	}
	return expectOneRow(res, fmt.Sprintf("payment %d %s->%s", paymentID, from, to))
}

// ListExpiredPending returns up to limit pending payments that expired before
// cutoff and have an id greater than afterID, in id order.
func (pr *PaymentRepositoryImpl) ListExpiredPending(ctx context.Context, cutoff time.Time, afterID int64, limit int) ([]models.Payment, error) {
	query := `SELECT * FROM payments WHERE status = $1 AND expires_at < $2 AND id > $3 ORDER BY id LIMIT $4;`
	payments := make([]models.Payment, 0)
	err := pr.db.SelectContext(ctx, &payments, query, models.PaymentPending.String(), cutoff.UTC(), afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("read expired payments: %w", err)
	}
	return payments, nil
}

func (pr *PaymentRepositoryImpl) GetDB() *sqlx.DB {
	return pr.db
}
