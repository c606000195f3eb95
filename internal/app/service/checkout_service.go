package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"github.com/ujwegh/gamemart/internal/app/service/clients"
	"go.uber.org/zap"
)

const (
	orderNumberLength   = 12
	orderNumberAttempts = 3
)

type (
	Checkout struct {
		Order   *models.Order
		Payment *models.Payment
	}
	CheckoutService interface {
		Checkout(ctx context.Context, userID, offerID int64, currency models.Currency) (*Checkout, error)
		TopUp(ctx context.Context, userID int64, currency models.Currency, amount models.Amount) (*Checkout, error)
		GetOrders(ctx context.Context, userID int64) ([]models.Order, error)
		GetOrder(ctx context.Context, userID int64, number string) (*models.Order, error)
	}
	CheckoutServiceImpl struct {
		orderRepo   repository.OrderRepository
		offerRepo   repository.OfferRepository
		paymentRepo repository.PaymentRepository
		gateway     clients.PaymentGateway
		expiry      time.Duration
	}
)

func NewCheckoutService(orderRepo repository.OrderRepository, offerRepo repository.OfferRepository,
	paymentRepo repository.PaymentRepository, gateway clients.PaymentGateway, expiry time.Duration) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		orderRepo:   orderRepo,
		offerRepo:   offerRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		expiry:      expiry,
	}
}

// Checkout snapshots the offer price into a new order and opens a payment
// intent for it. Later price changes never reach this order.
func (cs *CheckoutServiceImpl) Checkout(ctx context.Context, userID, offerID int64, currency models.Currency) (*Checkout, error) {
	offer, err := cs.offerRepo.GetOfferByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.NewWithCode(err, "Offer not found", http.StatusNotFound)
		}
		return nil, err
	}
	if !offer.IsEnabled {
		msg := "offer is not available"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusConflict)
	}
	return cs.open(ctx, userID, &offer.ID, models.PaymentPurchase, currency, offer.Price(currency), offer.Title)
}

// TopUp opens a payment intent that credits the user's balance once paid. It
// is backed by an order without an offer.
func (cs *CheckoutServiceImpl) TopUp(ctx context.Context, userID int64, currency models.Currency, amount models.Amount) (*Checkout, error) {
	if amount <= 0 {
		return nil, appErrors.NewWithCode(appErrors.ErrInvalidAmount, "Amount must be positive", http.StatusUnprocessableEntity)
	}
	return cs.open(ctx, userID, nil, models.PaymentTopUp, currency, amount, "Balance top-up")
}

func (cs *CheckoutServiceImpl) open(ctx context.Context, userID int64, offerID *int64, kind models.PaymentKind,
	currency models.Currency, amount models.Amount, description string) (*Checkout, error) {
	order, err := cs.createOrder(ctx, userID, offerID, currency, amount)
	if err != nil {
		return nil, err
	}

	// The provider call happens outside any database transaction.
	invoice, err := cs.gateway.CreateInvoice(ctx, currency, amount, clients.InvoiceOptions{
		Description: description,
		Payload:     fmt.Sprintf("order-%d", order.ID),
		ExpiresIn:   cs.expiry,
	})
	if err != nil {
		cs.abandon(ctx, order)
		if errors.Is(err, appErrors.ErrProviderUnavailable) {
			return nil, appErrors.NewWithCode(err, "Payment provider unavailable", http.StatusServiceUnavailable)
		}
		return nil, appErrors.NewWithCode(err, "Unable to create invoice", http.StatusBadGateway)
	}

	now := time.Now().UTC()
	payment := &models.Payment{
		UserID:      userID,
		OfferID:     offerID,
		OrderID:     order.ID,
		Kind:        kind,
		AmountToPay: amount,
		Currency:    currency,
		ExternalID:  invoice.InvoiceID,
		PayURL:      invoice.PayURL,
		Status:      models.PaymentPending,
		ExpiresAt:   now.Add(cs.expiry),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := cs.persistPayment(ctx, order, payment); err != nil {
		cs.abandon(ctx, order)
		if errors.Is(err, appErrors.ErrDuplicate) {
			return nil, appErrors.NewWithCode(err, "Unable to create invoice", http.StatusBadGateway)
		}
		return nil, err
	}

	order.PaymentID = &payment.ID
	order.Status = models.OrderPendingPayment
	logger.Log.Info("payment intent opened",
		zap.Int64("order_id", order.ID),
		zap.String("external_id", payment.ExternalID),
		zap.String("kind", kind.String()),
		zap.String("amount", amount.Format(currency)),
		zap.String("currency", currency.String()))
	return &Checkout{Order: order, Payment: payment}, nil
}

// persistPayment stores the payment and moves the order to pending_payment in
// one transaction.
func (cs *CheckoutServiceImpl) persistPayment(ctx context.Context, order *models.Order, payment *models.Payment) error {
	tx, err := cs.paymentRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := cs.paymentRepo.CreatePayment(ctx, tx, payment); err != nil {
		return err
	}
	if err := cs.orderRepo.AttachPayment(ctx, tx, order.ID, payment.ID); err != nil {
		return err
	}
	if err := cs.orderRepo.Transition(ctx, tx, order.ID, models.OrderCreated, models.OrderPendingPayment); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (cs *CheckoutServiceImpl) createOrder(ctx context.Context, userID int64, offerID *int64,
	currency models.Currency, amount models.Amount) (*models.Order, error) {
	now := time.Now().UTC()
	for attempt := 1; ; attempt++ {
		order := &models.Order{
			Number:    goluhn.Generate(orderNumberLength),
			UserID:    userID,
			OfferID:   offerID,
			Currency:  currency,
			Amount:    amount,
			Status:    models.OrderCreated,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := cs.insertOrder(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, appErrors.ErrDuplicate) || attempt == orderNumberAttempts {
			return nil, fmt.Errorf("create order: %w", err)
		}
	}
}

func (cs *CheckoutServiceImpl) insertOrder(ctx context.Context, order *models.Order) error {
	tx, err := cs.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()
	if err := cs.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return err
	}
	return tx.Commit()
}

// abandon marks an order whose payment intent could not be opened as failed.
func (cs *CheckoutServiceImpl) abandon(ctx context.Context, order *models.Order) {
	ctx = context.WithoutCancel(ctx)
	tx, err := cs.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Error("failed to abandon order", zap.Int64("order_id", order.ID), zap.Error(err))
		return
	}
	defer tx.Rollback()
	if err := cs.orderRepo.Transition(ctx, tx, order.ID, models.OrderCreated, models.OrderFailed); err != nil {
		logger.Log.Error("failed to abandon order", zap.Int64("order_id", order.ID), zap.Error(err))
		return
	}
	if err := tx.Commit(); err != nil {
		logger.Log.Error("failed to abandon order", zap.Int64("order_id", order.ID), zap.Error(err))
		return
	}
	order.Status = models.OrderFailed
}

func (cs *CheckoutServiceImpl) GetOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	return cs.orderRepo.GetOrdersByUserID(ctx, userID)
}

func (cs *CheckoutServiceImpl) GetOrder(ctx context.Context, userID int64, number string) (*models.Order, error) {
	order, err := cs.orderRepo.GetOrderByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, appErrors.NewWithCode(fmt.Errorf("order %s: %w", number, appErrors.ErrNotFound), "Order not found", http.StatusNotFound)
	}
	return order, nil
}
