package service

import (
	"context"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/repository"
	"github.com/ujwegh/gamemart/internal/app/repository/sqlitetest"
	"github.com/ujwegh/gamemart/internal/app/service/clients"
)

// recordingDispatcher keeps notifications in memory and delivers nothing.
type recordingDispatcher struct {
	mu            sync.Mutex
	notifications []Notification
}

func (d *recordingDispatcher) Dispatch(n Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notifications = append(d.notifications, n)
}

func (d *recordingDispatcher) Wait() {}

func (d *recordingDispatcher) Keys() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	keys := make([]string, 0, len(d.notifications))
	for _, n := range d.notifications {
		keys = append(keys, n.Key)
	}
	return keys
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateInvoice(ctx context.Context, asset models.Currency, amount models.Amount, opts clients.InvoiceOptions) (*clients.Invoice, error) {
	args := m.Called(ctx, asset, amount, opts)
	invoice, _ := args.Get(0).(*clients.Invoice)
	return invoice, args.Error(1)
}

func (m *MockPaymentGateway) Transfer(ctx context.Context, userID int64, asset models.Currency, amount models.Amount, spendID string, opts clients.TransferOptions) (*clients.Transfer, error) {
	args := m.Called(ctx, userID, asset, amount, spendID, opts)
	transfer, _ := args.Get(0).(*clients.Transfer)
	return transfer, args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

// settlementFixture wires the settlement engine to an in-memory database.
type settlementFixture struct {
	db         *sqlx.DB
	ledger     *LedgerServiceImpl
	ledgerRepo *repository.LedgerRepositoryImpl
	orders     *repository.OrderRepositoryImpl
	payments   *repository.PaymentRepositoryImpl
	users      *repository.UserRepositoryImpl
	referrals  *ReferralServiceImpl
	dispatcher *recordingDispatcher
	settlement *SettlementServiceImpl
}

func newSettlementFixture(t *testing.T) *settlementFixture {
	t.Helper()
	db := sqlitetest.Open(t)
	f := &settlementFixture{
		db:         db,
		ledgerRepo: repository.NewLedgerRepository(db),
		orders:     repository.NewOrderRepository(db),
		payments:   repository.NewPaymentRepository(db),
		users:      repository.NewUserRepository(db),
		dispatcher: &recordingDispatcher{},
	}
	f.ledger = NewLedgerService(f.ledgerRepo)
	f.referrals = NewReferralService(repository.NewReferralRepository(db), f.users, f.ledgerRepo, f.ledger,
		decimal.NewFromInt(1))
	f.settlement = NewSettlementService(f.payments, f.orders, f.users, f.ledger, f.referrals, f.dispatcher)
	return f
}

func (f *settlementFixture) balance(t *testing.T, userID int64, currency models.Currency) models.Amount {
	t.Helper()
	balance, err := f.ledger.GetBalance(context.Background(), userID)
	if err != nil {
		t.Fatalf("could not read balance: %v", err)
	}
	return balance.Of(currency)
}

func (f *settlementFixture) order(t *testing.T, id int64) *models.Order {
	t.Helper()
	order, err := f.orders.GetOrderByID(context.Background(), nil, id)
	if err != nil {
		t.Fatalf("could not read order: %v", err)
	}
	return order
}

func (f *settlementFixture) payment(t *testing.T, id int64) *models.Payment {
	t.Helper()
	payment, err := f.payments.GetPaymentByID(context.Background(), id)
	if err != nil {
		t.Fatalf("could not read payment: %v", err)
	}
	return payment
}

func amountPtr(a models.Amount) *models.Amount {
	return &a
}
