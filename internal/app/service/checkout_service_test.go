package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"github.com/ujwegh/gamemart/internal/app/repository/sqlitetest"
	"github.com/ujwegh/gamemart/internal/app/service/clients"
)

func TestCheckoutServiceImpl_Checkout(t *testing.T) {
	tests := []struct {
		name        string
		currency    models.Currency
		disabled    bool
		missing     bool
		gatewayErr  error
		usedInvoice bool
		wantAmount  models.Amount
		wantCode    int
		wantOrder   models.OrderStatus
		wantInvoice bool
	}{
		{name: "RUB purchase", currency: models.RUB, wantAmount: 29900, wantOrder: models.OrderPendingPayment, wantInvoice: true},
		{name: "USDT purchase", currency: models.USDT, wantAmount: 3_500_000, wantOrder: models.OrderPendingPayment, wantInvoice: true},
		{name: "Provider unavailable", currency: models.RUB, wantAmount: 29900, gatewayErr: appErrors.ErrProviderUnavailable, wantCode: http.StatusServiceUnavailable, wantOrder: models.OrderFailed, wantInvoice: true},
		{name: "Provider rejected", currency: models.RUB, wantAmount: 29900, gatewayErr: appErrors.ErrProviderRejected, wantCode: http.StatusBadGateway, wantOrder: models.OrderFailed, wantInvoice: true},
		{name: "Invoice id already used", currency: models.RUB, wantAmount: 29900, usedInvoice: true, wantCode: http.StatusBadGateway, wantOrder: models.OrderFailed, wantInvoice: true},
		{name: "Disabled offer", currency: models.RUB, disabled: true, wantCode: http.StatusConflict},
		{name: "Missing offer", currency: models.RUB, missing: true, wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := sqlitetest.Open(t)
			orders := repository.NewOrderRepository(db)
			payments := repository.NewPaymentRepository(db)
			gateway := new(MockPaymentGateway)
			checkout := NewCheckoutService(orders, repository.NewOfferRepository(db), payments, gateway, time.Hour)
			user := sqlitetest.SeedUser(t, db, 100, 0, 0)
			offer := sqlitetest.SeedOffer(t, db, 29900, 3_500_000)
			offerID := offer.ID
			if tt.disabled {
				_, err := db.Exec(`UPDATE offers SET is_enabled = FALSE WHERE id = $1;`, offer.ID)
				require.NoError(t, err)
			}
			if tt.missing {
				offerID = 9999
			}
			var existingPayments int
			if tt.usedInvoice {
				other := sqlitetest.SeedUser(t, db, 200, 0, 0)
				sqlitetest.SeedPendingPurchase(t, db, other.ID, offer, models.RUB, "inv-1")
				existingPayments = 1
			}

			var invoice *clients.Invoice
			if tt.gatewayErr == nil {
				invoice = &clients.Invoice{InvoiceID: "inv-1", Status: "active", PayURL: "https://t.me/CryptoBot?start=inv-1"}
			}
			gateway.On("CreateInvoice", mock.Anything, tt.currency, tt.wantAmount,
				mock.MatchedBy(func(opts clients.InvoiceOptions) bool {
					return opts.ExpiresIn == time.Hour && len(opts.Payload) > len("order-")
				})).Return(invoice, tt.gatewayErr).Maybe()

			got, err := checkout.Checkout(context.Background(), user.ID, offerID, tt.currency)
			if tt.wantInvoice {
				gateway.AssertNumberOfCalls(t, "CreateInvoice", 1)
			} else {
				gateway.AssertNotCalled(t, "CreateInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}

			if tt.wantCode != 0 {
				var codeErr appErrors.ResponseCodeError
				require.ErrorAs(t, err, &codeErr)
				assert.Equal(t, tt.wantCode, codeErr.Code())
				assert.Equal(t, existingPayments, sqlitetest.CountRows(t, db, `SELECT count(*) FROM payments;`))
				if tt.wantOrder != "" {
					stored, err := orders.GetOrdersByUserID(context.Background(), user.ID)
					require.NoError(t, err)
					require.Len(t, stored, 1)
					assert.Equal(t, tt.wantOrder, stored[0].Status)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, got.Order.Status)
			assert.Equal(t, tt.wantAmount, got.Order.Amount)
			assert.NoError(t, goluhn.Validate(got.Order.Number))
			require.NotNil(t, got.Order.PaymentID)
			assert.Equal(t, got.Payment.ID, *got.Order.PaymentID)
			assert.Equal(t, models.PaymentPurchase, got.Payment.Kind)
			assert.Equal(t, "inv-1", got.Payment.ExternalID)

			stored, err := payments.GetPaymentByExternalID(context.Background(), "inv-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, stored.AmountToPay)
			assert.Equal(t, got.Order.ID, stored.OrderID)
			assert.Equal(t, models.PaymentPending, stored.Status)
		})
	}
}

func TestCheckoutServiceImpl_TopUp(t *testing.T) {
	db := sqlitetest.Open(t)
	orders := repository.NewOrderRepository(db)
	gateway := new(MockPaymentGateway)
	checkout := NewCheckoutService(orders, repository.NewOfferRepository(db), repository.NewPaymentRepository(db), gateway, time.Hour)
	user := sqlitetest.SeedUser(t, db, 100, 0, 0)
	ctx := context.Background()

	_, err := checkout.TopUp(ctx, user.ID, models.USDT, 0)
	var codeErr appErrors.ResponseCodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnprocessableEntity, codeErr.Code())
	assert.ErrorIs(t, err, appErrors.ErrInvalidAmount)

	gateway.On("CreateInvoice", mock.Anything, models.USDT, models.Amount(10_000_000), mock.Anything).
		Return(&clients.Invoice{InvoiceID: "inv-topup", PayURL: "https://t.me/CryptoBot?start=inv-topup"}, nil).Once()

	got, err := checkout.TopUp(ctx, user.ID, models.USDT, 10_000_000)
	require.NoError(t, err)
	assert.Nil(t, got.Order.OfferID)
	assert.Equal(t, models.PaymentTopUp, got.Payment.Kind)
	assert.Equal(t, models.OrderPendingPayment, got.Order.Status)
	gateway.AssertExpectations(t)
}

func TestCheckoutServiceImpl_GetOrder(t *testing.T) {
	db := sqlitetest.Open(t)
	checkout := NewCheckoutService(repository.NewOrderRepository(db), repository.NewOfferRepository(db),
		repository.NewPaymentRepository(db), new(MockPaymentGateway), time.Hour)
	owner := sqlitetest.SeedUser(t, db, 100, 0, 0)
	stranger := sqlitetest.SeedUser(t, db, 200, 0, 0)
	offer := sqlitetest.SeedOffer(t, db, 29900, 3_500_000)
	order, _ := sqlitetest.SeedPendingPurchase(t, db, owner.ID, offer, models.RUB, "ext-1")
	ctx := context.Background()

	got, err := checkout.GetOrder(ctx, owner.ID, order.Number)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = checkout.GetOrder(ctx, stranger.ID, order.Number)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	list, err := checkout.GetOrders(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
