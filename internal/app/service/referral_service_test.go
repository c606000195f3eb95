package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository/sqlitetest"
)

func TestCommission(t *testing.T) {
	tests := []struct {
		name      string
		principal models.Amount
		currency  models.Currency
		percent   string
		want      models.Amount
	}{
		{name: "Half rounds to even down", principal: 25050, currency: models.RUB, percent: "1", want: 250},
		{name: "Half rounds to even up", principal: 25150, currency: models.RUB, percent: "1", want: 252},
		{name: "Above half rounds up", principal: 25070, currency: models.RUB, percent: "1", want: 251},
		{name: "Exact", principal: 29900, currency: models.RUB, percent: "1", want: 299},
		{name: "Fractional percent", principal: 29900, currency: models.RUB, percent: "2.5", want: 748},
		{name: "Rounds to zero", principal: 49, currency: models.RUB, percent: "1", want: 0},
		{name: "USDT precision", principal: 3_500_000, currency: models.USDT, percent: "1", want: 35_000},
		{name: "Zero percent", principal: 29900, currency: models.RUB, percent: "0", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Commission(tt.principal, tt.currency, decimal.RequireFromString(tt.percent))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReferralServiceImpl_Propagate(t *testing.T) {
	f := newSettlementFixture(t)
	buyer := sqlitetest.SeedUser(t, f.db, 100, 0, 0)
	referrer := sqlitetest.SeedUser(t, f.db, 200, 0, 0)
	loner := sqlitetest.SeedUser(t, f.db, 300, 0, 0)
	sqlitetest.SeedReferral(t, f.db, buyer.ID, referrer.ID)
	offer := sqlitetest.SeedOffer(t, f.db, 29900, 3_500_000)
	cheap := sqlitetest.SeedOffer(t, f.db, 49, 1)
	ctx := context.Background()

	completed := func(userID int64, offer *models.Offer, externalID string) *models.Order {
		order, _ := sqlitetest.SeedPendingPurchase(t, f.db, userID, offer, models.RUB, externalID)
		_, err := f.db.Exec(`UPDATE orders SET status = $1 WHERE id = $2;`, models.OrderCompleted, order.ID)
		require.NoError(t, err)
		order.Status = models.OrderCompleted
		return order
	}

	t.Run("Credits the referrer once", func(t *testing.T) {
		order := completed(buyer.ID, offer, "ext-1")

		first, err := f.referrals.Propagate(ctx, order)
		require.NoError(t, err)
		require.NotNil(t, first)
		again, err := f.referrals.Propagate(ctx, order)
		require.NoError(t, err)
		require.NotNil(t, again)

		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, referrer.ID, first.UserID)
		assert.Equal(t, models.TxReferral, first.Type)
		assert.Equal(t, models.Amount(299), first.Amount)
		assert.Equal(t, models.Amount(299), f.balance(t, referrer.ID, models.RUB))
		assert.Equal(t, 1, sqlitetest.CountRows(t, f.db, `SELECT count(*) FROM transactions WHERE type = 'referral';`))
	})

	t.Run("Skips a commission that rounds to zero", func(t *testing.T) {
		order := completed(buyer.ID, cheap, "ext-cheap")

		row, err := f.referrals.Propagate(ctx, order)
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("Skips a buyer without referrer", func(t *testing.T) {
		order := completed(loner.ID, offer, "ext-loner")

		row, err := f.referrals.Propagate(ctx, order)
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("Rejects an order that is not completed", func(t *testing.T) {
		order, _ := sqlitetest.SeedPendingPurchase(t, f.db, buyer.ID, offer, models.RUB, "ext-pending")

		_, err := f.referrals.Propagate(ctx, order)
		assert.ErrorIs(t, err, appErrors.ErrStaleState)
	})

	assert.Equal(t, models.Amount(299), f.balance(t, referrer.ID, models.RUB))
}

func TestReferralServiceImpl_Link(t *testing.T) {
	f := newSettlementFixture(t)
	alice := sqlitetest.SeedUser(t, f.db, 100, 0, 0)
	bob := sqlitetest.SeedUser(t, f.db, 200, 0, 0)
	carol := sqlitetest.SeedUser(t, f.db, 300, 0, 0)
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     int64
		referrerID int64
		wantErr    error
	}{
		{name: "Self referral", userID: alice.ID, referrerID: alice.ID, wantErr: appErrors.ErrSelfReferral},
		{name: "Unknown referrer", userID: alice.ID, referrerID: 9999, wantErr: appErrors.ErrNotFound},
		{name: "First link", userID: alice.ID, referrerID: bob.ID},
		{name: "Second link", userID: alice.ID, referrerID: carol.ID, wantErr: appErrors.ErrDuplicate},
		{name: "Chain", userID: bob.ID, referrerID: carol.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.referrals.Link(ctx, tt.userID, tt.referrerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
