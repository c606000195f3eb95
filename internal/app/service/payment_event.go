package service

import (
	"strings"
	"time"

	"github.com/ujwegh/gamemart/internal/app/models"
)

// ProviderStatus is the normalized status carried by a payment notification.
type ProviderStatus string

const (
	ProviderCompleted ProviderStatus = "completed"
	ProviderFailed    ProviderStatus = "failed"
	ProviderExpired   ProviderStatus = "expired"
	ProviderPending   ProviderStatus = "pending"
	ProviderUnknown   ProviderStatus = "unknown"
)

// ParseProviderStatus maps the provider vocabulary onto ProviderStatus.
// Anything unrecognized becomes ProviderUnknown and must be rejected.
func ParseProviderStatus(raw string) ProviderStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed", "paid", "succeeded", "success", "invoice_paid", "payment.succeeded":
		return ProviderCompleted
	case "failed", "canceled", "cancelled", "rejected", "payment.canceled":
		return ProviderFailed
	case "expired", "invoice_expired":
		return ProviderExpired
	case "pending", "active", "created":
		return ProviderPending
	}
	return ProviderUnknown
}

// Target returns the payment status the notification asks for, and false when
// the notification does not move the payment.
func (s ProviderStatus) Target() (models.PaymentStatus, bool) {
	switch s {
	case ProviderCompleted:
		return models.PaymentCompleted, true
	case ProviderFailed:
		return models.PaymentFailed, true
	case ProviderExpired:
		return models.PaymentExpired, true
	}
	return "", false
}

// PaymentEvent is a verified, parsed payment notification. Amount and
// Currency are optional; when set they must match the payment snapshot.
type PaymentEvent struct {
	ExternalID string
	Status     ProviderStatus
	Amount     *models.Amount
	Currency   models.Currency
	OccurredAt time.Time
}

type SettlementResult string

const (
	ResultSettled        SettlementResult = "settled"
	ResultAlreadySettled SettlementResult = "already_settled"
	ResultIgnored        SettlementResult = "ignored"
)

type Outcome struct {
	Result    SettlementResult
	PaymentID int64
	OrderID   int64
	Status    models.PaymentStatus
}
