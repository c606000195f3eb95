package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"github.com/ujwegh/gamemart/internal/app/repository/sqlitetest"
)

func TestPaymentRepositoryImpl_CreatePayment(t *testing.T) {
	db := sqlitetest.Open(t)
	user := sqlitetest.SeedUser(t, db, 100, 0, 0)
	offer := sqlitetest.SeedOffer(t, db, 29900, 3_500_000)
	_, existing := sqlitetest.SeedPendingPurchase(t, db, user.ID, offer, models.RUB, "ext-1")
	repo := repository.NewPaymentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	topUp := &models.Order{Number: "79927398713", UserID: user.ID, Currency: models.RUB, Amount: 10000,
		Status: models.OrderCreated, CreatedAt: now, UpdatedAt: now}
	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repository.NewOrderRepository(db).CreateOrder(ctx, tx, topUp))
	require.NoError(t, tx.Commit())

	tests := []struct {
		name       string
		externalID string
		orderID    int64
		wantErr    error
	}{
		{name: "Same external id is a duplicate", externalID: existing.ExternalID, orderID: topUp.ID, wantErr: appErrors.ErrDuplicate},
		{name: "New external id", externalID: "ext-2", orderID: topUp.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now().UTC()
			payment := &models.Payment{
				UserID: user.ID, OrderID: tt.orderID, Kind: models.PaymentTopUp, AmountToPay: 10000,
				Currency: models.RUB, ExternalID: tt.externalID, Status: models.PaymentPending,
				ExpiresAt: now.Add(time.Hour), CreatedAt: now, UpdatedAt: now,
			}
			tx, err := db.BeginTxx(ctx, nil)
			require.NoError(t, err)
			defer tx.Rollback()

			err = repo.CreatePayment(ctx, tx, payment)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, tx.Commit())

			got, err := repo.GetPaymentByExternalID(ctx, tt.externalID)
			require.NoError(t, err)
			assert.Equal(t, payment.ID, got.ID)
			assert.Equal(t, models.PaymentTopUp, got.Kind)
			assert.Nil(t, got.OfferID)
		})
	}
}

func TestPaymentRepositoryImpl_Transition(t *testing.T) {
	db := sqlitetest.Open(t)
	user := sqlitetest.SeedUser(t, db, 100, 0, 0)
	offer := sqlitetest.SeedOffer(t, db, 29900, 3_500_000)
	_, payment := sqlitetest.SeedPendingPurchase(t, db, user.ID, offer, models.RUB, "ext-1")
	repo := repository.NewPaymentRepository(db)
	ctx := context.Background()

	transition := func(from, to models.PaymentStatus) error {
		tx, err := db.BeginTxx(ctx, nil)
		require.NoError(t, err)
		defer tx.Rollback()
		if err := repo.Transition(ctx, tx, payment.ID, from, to); err != nil {
			return err
		}
		return tx.Commit()
	}

	require.NoError(t, transition(models.PaymentPending, models.PaymentCompleted))
	assert.ErrorIs(t, transition(models.PaymentPending, models.PaymentFailed), appErrors.ErrStaleState)

	got, err := repo.GetPaymentByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, got.Status)
	assert.NotNil(t, got.SettledAt)

	_, err = repo.GetPaymentByID(ctx, 999)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = repo.GetPaymentByExternalID(ctx, "ext-missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestPaymentRepositoryImpl_ListExpiredPending(t *testing.T) {
	db := sqlitetest.Open(t)
	user := sqlitetest.SeedUser(t, db, 100, 0, 0)
	offer := sqlitetest.SeedOffer(t, db, 29900, 3_500_000)
	now := time.Now().UTC()

	expire := func(externalID string, at time.Time, status models.PaymentStatus) int64 {
		_, payment := sqlitetest.SeedPendingPurchase(t, db, user.ID, offer, models.RUB, externalID)
		_, err := db.Exec(`UPDATE payments SET expires_at = $1, status = $2 WHERE id = $3;`, at, status, payment.ID)
		require.NoError(t, err)
		return payment.ID
	}
	older := expire("ext-old", now.Add(-3*time.Hour), models.PaymentPending)
	newer := expire("ext-new", now.Add(-2*time.Hour), models.PaymentPending)
	expire("ext-paid", now.Add(-2*time.Hour), models.PaymentCompleted)
	expire("ext-future", now.Add(2*time.Hour), models.PaymentPending)
	repo := repository.NewPaymentRepository(db)

	tests := []struct {
		name    string
		afterID int64
		limit   int
		wantIDs []int64
	}{
		{name: "All due", limit: 10, wantIDs: []int64{older, newer}},
		{name: "Limited", limit: 1, wantIDs: []int64{older}},
		{name: "After cursor", afterID: older, limit: 10, wantIDs: []int64{newer}},
		{name: "Past the end", afterID: newer, limit: 10, wantIDs: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments, err := repo.ListExpiredPending(context.Background(), now, tt.afterID, tt.limit)
			require.NoError(t, err)
			ids := make([]int64, 0, len(payments))
			for _, p := range payments {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
