package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	User struct {
		ID              int64               `db:"id"`
		TelegramID      int64               `db:"telegram_id"`
		Username        string              `db:"username"`
		BalanceRUB      Amount              `db:"balance_rub"`
		BalanceUSDT     Amount              `db:"balance_usdt"`
		ReferralPercent decimal.NullDecimal `db:"referral_percent"`
		OrdersCount     int                 `db:"orders_count"`
		CreatedAt       time.Time           `db:"created_at"`
	}
	Offer struct {
		ID        int64  `db:"id"`
		GameID    int64  `db:"game_id"`
		Title     string `db:"title"`
		PriceRUB  Amount `db:"price_rub"`
		PriceUSDT Amount `db:"price_usdt"`
		IsEnabled bool   `db:"is_enabled"`
	}
	Order struct {
		ID        int64       `db:"id"`
		Number    string      `db:"number"`
		UserID    int64       `db:"user_id"`
		OfferID   *int64      `db:"offer_id"`
		PaymentID *int64      `db:"payment_id"`
		Currency  Currency    `db:"currency"`
		Amount    Amount      `db:"amount"`
		Status    OrderStatus `db:"status"`
		CreatedAt time.Time   `db:"created_at"`
		UpdatedAt time.Time   `db:"updated_at"`
	}
	Payment struct {
		ID          int64         `db:"id"`
		UserID      int64         `db:"user_id"`
		OfferID     *int64        `db:"offer_id"`
		OrderID     int64         `db:"order_id"`
		Kind        PaymentKind   `db:"kind"`
		AmountToPay Amount        `db:"amount_to_pay"`
		Currency    Currency      `db:"currency"`
		ExternalID  string        `db:"external_id"`
		PayURL      string        `db:"pay_url"`
		Status      PaymentStatus `db:"status"`
		ExpiresAt   time.Time     `db:"expires_at"`
		SettledAt   *time.Time    `db:"settled_at"`
		CreatedAt   time.Time     `db:"created_at"`
		UpdatedAt   time.Time     `db:"updated_at"`
	}
	Transaction struct {
		ID             int64           `db:"id"`
		UserID         int64           `db:"user_id"`
		ReferID        *int64          `db:"refer_id"`
		OrderID        *int64          `db:"order_id"`
		Type           TransactionType `db:"type"`
		Currency       Currency        `db:"currency"`
		Amount         Amount          `db:"amount"`
		Earned         *Amount         `db:"earned"`
		IdempotencyKey string          `db:"idempotency_key"`
		CreatedAt      time.Time       `db:"created_at"`
	}
	Referral struct {
		ID        int64     `db:"id"`
		UserID    int64     `db:"user_id"`
		ReferID   int64     `db:"refer_id"`
		CreatedAt time.Time `db:"created_at"`
	}
	Withdrawal struct {
		ID         int64            `db:"id"`
		UserID     int64            `db:"user_id"`
		Currency   Currency         `db:"currency"`
		Amount     Amount           `db:"amount"`
		Status     WithdrawalStatus `db:"status"`
		TransferID *string          `db:"transfer_id"`
		CreatedAt  time.Time        `db:"created_at"`
		UpdatedAt  time.Time        `db:"updated_at"`
	}
	UserBalance struct {
		RUB  Amount
		USDT Amount
	}
)

func (u *User) Balance(c Currency) Amount {
	if c == USDT {
		return u.BalanceUSDT
	}
	return u.BalanceRUB
}

func (o *Offer) Price(c Currency) Amount {
	if c == USDT {
		return o.PriceUSDT
	}
	return o.PriceRUB
}

func (b UserBalance) Of(c Currency) Amount {
	if c == USDT {
		return b.USDT
	}
	return b.RUB
}

type OrderStatus string

func (s OrderStatus) String() string {
	return string(s)
}

const (
	OrderCreated        OrderStatus = "created"
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderProcessing     OrderStatus = "processing"
	OrderCompleted      OrderStatus = "completed"
	OrderFailed         OrderStatus = "failed"
	OrderExpired        OrderStatus = "expired"
	OrderRefunded       OrderStatus = "refunded"
)

// AwaitingPayment reports whether a payment notification may still move the
// order forward.
func (s OrderStatus) AwaitingPayment() bool {
	return s == OrderCreated || s == OrderPendingPayment
}

type PaymentStatus string

func (s PaymentStatus) String() string {
	return string(s)
}

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentExpired   PaymentStatus = "expired"
)

func (s PaymentStatus) Terminal() bool {
	return s != PaymentPending
}

// SameOutcome reports whether two terminal statuses describe the same
// settlement result. failed and expired both mean no money moved.
func (s PaymentStatus) SameOutcome(other PaymentStatus) bool {
	if s == other {
		return true
	}
	unsettled := func(p PaymentStatus) bool { return p == PaymentFailed || p == PaymentExpired }
	return unsettled(s) && unsettled(other)
}

type PaymentKind string

func (k PaymentKind) String() string {
	return string(k)
}

const (
	PaymentPurchase PaymentKind = "purchase"
	PaymentTopUp    PaymentKind = "topup"
)

type TransactionType string

func (t TransactionType) String() string {
	return string(t)
}

const (
	TxOrder      TransactionType = "order"
	TxRefund     TransactionType = "refund"
	TxReferral   TransactionType = "referral"
	TxWithdrawal TransactionType = "withdrawal"
	TxDeposit    TransactionType = "deposit"
)

type WithdrawalStatus string

func (s WithdrawalStatus) String() string {
	return string(s)
}

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalFailed    WithdrawalStatus = "failed"
)
