package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"go.uber.org/zap"
)

type SettlementService interface {
	Settle(ctx context.Context, event PaymentEvent) (*Outcome, error)
	Refund(ctx context.Context, orderNumber string) (*models.Order, error)
	ExpireDue(ctx context.Context, now time.Time, limit int) (int, error)
}

type SettlementServiceImpl struct {
	paymentRepo   repository.PaymentRepository
	orderRepo     repository.OrderRepository
	userRepo      repository.UserRepository
	ledgerService LedgerService
	referrals     ReferralService
	dispatcher    NotificationDispatcher
}

func NewSettlementService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository,
	userRepo repository.UserRepository, ledgerService LedgerService, referrals ReferralService,
	dispatcher NotificationDispatcher) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		paymentRepo:   paymentRepo,
		orderRepo:     orderRepo,
		userRepo:      userRepo,
		ledgerService: ledgerService,
		referrals:     referrals,
		dispatcher:    dispatcher,
	}
}

// Settle applies a payment notification. Repeated notifications with the
// same outcome are answered with ResultAlreadySettled and change nothing.
// A lost compare-and-swap race is retried once from the lookup, where the
// winner's terminal status is then observed.
func (ss *SettlementServiceImpl) Settle(ctx context.Context, event PaymentEvent) (*Outcome, error) {
	outcome, err := ss.settleOnce(ctx, event)
	if errors.Is(err, appErrors.ErrStaleState) {
		logger.Log.Debug("settlement lost a race, retrying",
			zap.String("external_id", event.ExternalID), zap.Error(err))
		outcome, err = ss.settleOnce(ctx, event)
	}
	if err != nil {
		return nil, err
	}
	logger.Log.Info("payment notification applied",
		zap.String("external_id", event.ExternalID),
		zap.Int64("payment_id", outcome.PaymentID),
		zap.Int64("order_id", outcome.OrderID),
		zap.String("provider_status", string(event.Status)),
		zap.String("result", string(outcome.Result)))
	return outcome, nil
}

func (ss *SettlementServiceImpl) settleOnce(ctx context.Context, event PaymentEvent) (*Outcome, error) {
	payment, err := ss.paymentRepo.GetPaymentByExternalID(ctx, event.ExternalID)
	if err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			logger.Log.Warn("notification for unknown payment", zap.String("external_id", event.ExternalID))
			return nil, fmt.Errorf("payment %s: %w", event.ExternalID, appErrors.ErrUnknownPayment)
		}
		return nil, err
	}
	outcome := &Outcome{PaymentID: payment.ID, OrderID: payment.OrderID, Status: payment.Status}

	if event.Amount != nil && (*event.Amount != payment.AmountToPay || event.Currency != payment.Currency) {
		err := fmt.Errorf("payment %s expects %s %s, notified %s %s: %w", payment.ExternalID,
			payment.AmountToPay.Format(payment.Currency), payment.Currency,
			event.Amount.Format(payment.Currency), event.Currency, appErrors.ErrAmountMismatch)
		ss.reportConflict(payment, event, err)
		return nil, err
	}

	target, moves := event.Status.Target()
	if !moves {
		outcome.Result = ResultIgnored
		return outcome, nil
	}
	if payment.Status.Terminal() {
		if payment.Status.SameOutcome(target) {
			outcome.Result = ResultAlreadySettled
			return outcome, nil
		}
		err := fmt.Errorf("payment %s is %s, notified %s: %w", payment.ExternalID, payment.Status, target,
			appErrors.ErrConflictingSettlement)
		ss.reportConflict(payment, event, err)
		return nil, err
	}

	if target == models.PaymentCompleted {
		return ss.complete(ctx, payment)
	}
	return ss.close(ctx, payment, target)
}

// complete moves the payment to completed and the order through processing to
// completed, booking the money movement in the same transaction.
func (ss *SettlementServiceImpl) complete(ctx context.Context, payment *models.Payment) (*Outcome, error) {
	order, err := ss.applyCompletion(ctx, payment)
	if errors.Is(err, appErrors.ErrInsufficientFunds) {
		return nil, ss.failUnfunded(ctx, payment, err)
	}
	if err != nil {
		return nil, err
	}

	if payment.Kind == models.PaymentPurchase {
		if _, err := ss.referrals.Propagate(ctx, order); err != nil {
			logger.Log.Error("referral propagation failed",
				zap.Int64("order_id", order.ID), zap.Error(err))
			ss.dispatcher.Dispatch(Notification{
				Key:  fmt.Sprintf("referral-failed:%d", order.ID),
				Text: fmt.Sprintf("Referral commission for order %s failed: %v", order.Number, err),
			})
		}
	}
	ss.dispatcher.Dispatch(Notification{
		Key: fmt.Sprintf("%s:%s", payment.ExternalID, models.PaymentCompleted),
		Text: fmt.Sprintf("Order %s paid: %s %s (%s)", order.Number,
			payment.AmountToPay.Format(payment.Currency), payment.Currency, payment.Kind),
	})
	return &Outcome{Result: ResultSettled, PaymentID: payment.ID, OrderID: order.ID, Status: models.PaymentCompleted}, nil
}

func (ss *SettlementServiceImpl) applyCompletion(ctx context.Context, payment *models.Payment) (*models.Order, error) {
	tx, err := ss.paymentRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ss.paymentRepo.Transition(ctx, tx, payment.ID, models.PaymentPending, models.PaymentCompleted); err != nil {
		return nil, err
	}
	order, err := ss.orderRepo.GetOrderByID(ctx, tx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.AwaitingPayment() {
		return nil, fmt.Errorf("order %d is %s while its payment is pending: %w", order.ID, order.Status,
			appErrors.ErrConflictingSettlement)
	}
	if err := ss.orderRepo.Transition(ctx, tx, order.ID, order.Status, models.OrderProcessing); err != nil {
		return nil, err
	}

	entry := Entry{
		UserID:   payment.UserID,
		OrderID:  &order.ID,
		Currency: payment.Currency,
		Amount:   payment.AmountToPay,
	}
	switch payment.Kind {
	case models.PaymentPurchase:
		entry.Type, entry.IdempotencyKey = models.TxOrder, orderKey(order.ID)
		if _, err := ss.ledgerService.Debit(ctx, tx, entry); err != nil {
			return nil, err
		}
		if err := ss.userRepo.IncrementOrdersCount(ctx, tx, payment.UserID); err != nil {
			return nil, err
		}
	case models.PaymentTopUp:
		entry.Type, entry.IdempotencyKey = models.TxDeposit, depositKey(order.ID)
		if _, err := ss.ledgerService.Credit(ctx, tx, entry); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported payment kind %q", payment.Kind)
	}

	if err := ss.orderRepo.Transition(ctx, tx, order.ID, models.OrderProcessing, models.OrderCompleted); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	order.Status = models.OrderCompleted
	return order, nil
}

// failUnfunded records a paid notification that could not be booked because
// the buyer's balance is too low: the payment is completed, the order failed,
// and no ledger row exists. Operators resolve it manually.
func (ss *SettlementServiceImpl) failUnfunded(ctx context.Context, payment *models.Payment, cause error) error {
	logger.Log.Error("insufficient funds on settlement",
		zap.String("external_id", payment.ExternalID),
		zap.Int64("payment_id", payment.ID),
		zap.Int64("order_id", payment.OrderID),
		zap.Error(cause))

	tx, err := ss.paymentRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()
	if err := ss.paymentRepo.Transition(ctx, tx, payment.ID, models.PaymentPending, models.PaymentCompleted); err != nil {
		return err
	}
	order, err := ss.orderRepo.GetOrderByID(ctx, tx, payment.OrderID)
	if err != nil {
		return err
	}
	if order.Status.AwaitingPayment() {
		if err := ss.orderRepo.Transition(ctx, tx, order.ID, order.Status, models.OrderFailed); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	ss.dispatcher.Dispatch(Notification{
		Key: fmt.Sprintf("%s:insufficient-funds", payment.ExternalID),
		Text: fmt.Sprintf("Payment %s for order %d arrived but the buyer cannot cover %s %s. Order marked failed.",
			payment.ExternalID, payment.OrderID, payment.AmountToPay.Format(payment.Currency), payment.Currency),
	})
	return appErrors.NewWithCode(fmt.Errorf("settle payment %s: %w", payment.ExternalID, cause),
		"Insufficient funds", http.StatusPaymentRequired)
}

// close records a payment that will never be paid. No money moves.
func (ss *SettlementServiceImpl) close(ctx context.Context, payment *models.Payment, target models.PaymentStatus) (*Outcome, error) {
	tx, err := ss.paymentRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ss.paymentRepo.Transition(ctx, tx, payment.ID, models.PaymentPending, target); err != nil {
		return nil, err
	}
	order, err := ss.orderRepo.GetOrderByID(ctx, tx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	orderTarget := models.OrderFailed
	if target == models.PaymentExpired {
		orderTarget = models.OrderExpired
	}
	if !order.Status.AwaitingPayment() {
		return nil, fmt.Errorf("order %d is %s while its payment is pending: %w", order.ID, order.Status,
			appErrors.ErrConflictingSettlement)
	}
	if err := ss.orderRepo.Transition(ctx, tx, order.ID, order.Status, orderTarget); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	ss.dispatcher.Dispatch(Notification{
		Key:  fmt.Sprintf("%s:%s", payment.ExternalID, target),
		Text: fmt.Sprintf("Order %s %s", order.Number, orderTarget),
	})
	return &Outcome{Result: ResultSettled, PaymentID: payment.ID, OrderID: order.ID, Status: target}, nil
}

func (ss *SettlementServiceImpl) reportConflict(payment *models.Payment, event PaymentEvent, err error) {
	logger.Log.Error("conflicting payment notification",
		zap.String("external_id", payment.ExternalID),
		zap.Int64("payment_id", payment.ID),
		zap.Int64("order_id", payment.OrderID),
		zap.String("payment_status", payment.Status.String()),
		zap.String("provider_status", string(event.Status)),
		zap.Error(err))
	ss.dispatcher.Dispatch(Notification{
		Key:  fmt.Sprintf("%s:conflict:%s", payment.ExternalID, event.Status),
		Text: fmt.Sprintf("Manual review needed: %v", err),
	})
}

// Refund reverses a completed purchase with an offsetting refund row. Referral
// commissions already paid are kept.
func (ss *SettlementServiceImpl) Refund(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := ss.orderRepo.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.OfferID == nil {
		msg := "top-up orders cannot be refunded"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusConflict)
	}

	tx, err := ss.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ss.orderRepo.Transition(ctx, tx, order.ID, models.OrderCompleted, models.OrderRefunded); err != nil {
		if errors.Is(err, appErrors.ErrStaleState) {
			return nil, appErrors.NewWithCode(err, "Order is not refundable", http.StatusConflict)
		}
		return nil, err
	}
	_, err = ss.ledgerService.Credit(ctx, tx, Entry{
		UserID:         order.UserID,
		OrderID:        &order.ID,
		Type:           models.TxRefund,
		Currency:       order.Currency,
		Amount:         order.Amount,
		IdempotencyKey: refundKey(order.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("credit refund: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	order.Status = models.OrderRefunded

	logger.Log.Info("order refunded", zap.Int64("order_id", order.ID), zap.String("number", order.Number))
	ss.dispatcher.Dispatch(Notification{
		Key:  fmt.Sprintf("refund:%d", order.ID),
		Text: fmt.Sprintf("Order %s refunded: %s %s", order.Number, order.Amount.Format(order.Currency), order.Currency),
	})
	return order, nil
}

// ExpireDue settles every pending payment whose expiry passed before now as
// expired and returns how many were moved. Payments are read in pages of
// limit rows; a payment that cannot be expired is logged and skipped.
func (ss *SettlementServiceImpl) ExpireDue(ctx context.Context, now time.Time, limit int) (int, error) {
	expired := 0
	var afterID int64
	for {
		payments, err := ss.paymentRepo.ListExpiredPending(ctx, now, afterID, limit)
		if err != nil {
			return expired, err
		}
		for _, p := range payments {
			afterID = p.ID
			outcome, err := ss.Settle(ctx, PaymentEvent{ExternalID: p.ExternalID, Status: ProviderExpired, OccurredAt: now})
			if err != nil {
				logger.Log.Error("failed to expire payment", zap.String("external_id", p.ExternalID), zap.Error(err))
				continue
			}
			if outcome.Result == ResultSettled {
				expired++
			}
		}
		if len(payments) == 0 || len(payments) < limit {
			return expired, nil
		}
		if err := ctx.Err(); err != nil {
			return expired, err
		}
	}
}
