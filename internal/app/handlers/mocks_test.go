package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	appContext "github.com/ujwegh/gamemart/internal/app/context"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/service"
)

type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) Settle(ctx context.Context, event service.PaymentEvent) (*service.Outcome, error) {
	args := m.Called(ctx, event)
	outcome, _ := args.Get(0).(*service.Outcome)
	return outcome, args.Error(1)
}

func (m *MockSettlementService) Refund(ctx context.Context, orderNumber string) (*models.Order, error) {
	args := m.Called(ctx, orderNumber)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *MockSettlementService) ExpireDue(ctx context.Context, now time.Time, limit int) (int, error) {
	args := m.Called(ctx, now, limit)
	return args.Int(0), args.Error(1)
}

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, userID, offerID int64, currency models.Currency) (*service.Checkout, error) {
	args := m.Called(ctx, userID, offerID, currency)
	checkout, _ := args.Get(0).(*service.Checkout)
	return checkout, args.Error(1)
}

func (m *MockCheckoutService) TopUp(ctx context.Context, userID int64, currency models.Currency, amount models.Amount) (*service.Checkout, error) {
	args := m.Called(ctx, userID, currency, amount)
	checkout, _ := args.Get(0).(*service.Checkout)
	return checkout, args.Error(1)
}

func (m *MockCheckoutService) GetOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *MockCheckoutService) GetOrder(ctx context.Context, userID int64, number string) (*models.Order, error) {
	args := m.Called(ctx, userID, number)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Credit(ctx context.Context, tx *sqlx.Tx, entry service.Entry) (models.Amount, error) {
	args := m.Called(ctx, tx, entry)
	return args.Get(0).(models.Amount), args.Error(1)
}

func (m *MockLedgerService) Debit(ctx context.Context, tx *sqlx.Tx, entry service.Entry) (models.Amount, error) {
	args := m.Called(ctx, tx, entry)
	return args.Get(0).(models.Amount), args.Error(1)
}

func (m *MockLedgerService) GetBalance(ctx context.Context, userID int64) (*models.UserBalance, error) {
	args := m.Called(ctx, userID)
	balance, _ := args.Get(0).(*models.UserBalance)
	return balance, args.Error(1)
}

func (m *MockLedgerService) History(ctx context.Context, userID int64, currency models.Currency) ([]models.Transaction, error) {
	args := m.Called(ctx, userID, currency)
	rows, _ := args.Get(0).([]models.Transaction)
	return rows, args.Error(1)
}

func (m *MockLedgerService) Reconcile(ctx context.Context, userID int64) ([]service.Drift, error) {
	args := m.Called(ctx, userID)
	drifts, _ := args.Get(0).([]service.Drift)
	return drifts, args.Error(1)
}

type MockWithdrawalService struct {
	mock.Mock
}

func (m *MockWithdrawalService) CreateWithdrawal(ctx context.Context, userID int64, currency models.Currency, amount models.Amount) (*models.Withdrawal, error) {
	args := m.Called(ctx, userID, currency, amount)
	withdrawal, _ := args.Get(0).(*models.Withdrawal)
	return withdrawal, args.Error(1)
}

func (m *MockWithdrawalService) GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	args := m.Called(ctx, userID)
	withdrawals, _ := args.Get(0).([]models.Withdrawal)
	return withdrawals, args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) EnsureUser(ctx context.Context, telegramID int64, username string) (*models.User, error) {
	args := m.Called(ctx, telegramID, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserService) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	args := m.Called(ctx, telegramID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockReferralService struct {
	mock.Mock
}

func (m *MockReferralService) Propagate(ctx context.Context, order *models.Order) (*models.Transaction, error) {
	args := m.Called(ctx, order)
	row, _ := args.Get(0).(*models.Transaction)
	return row, args.Error(1)
}

func (m *MockReferralService) Link(ctx context.Context, userID, referrerID int64) error {
	return m.Called(ctx, userID, referrerID).Error(0)
}

type recordingDispatcher struct {
	mu            sync.Mutex
	notifications []service.Notification
}

func (d *recordingDispatcher) Dispatch(n service.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notifications = append(d.notifications, n)
}

func (d *recordingDispatcher) Wait() {}

var testUser = &models.User{ID: 7, TelegramID: 4242, Username: "buyer", BalanceRUB: 150000, BalanceUSDT: 2_500_000, OrdersCount: 3}

func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(appContext.WithUser(r.Context(), user))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
