package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
)

func TestBalanceHandler_GetBalance(t *testing.T) {
	tests := []struct {
		name              string
		mockLedgerService func() *MockLedgerService
		contextTimeout    time.Duration
		wantStatusCode    int
		wantResponseBody  string
	}{
		{
			name: "Successful Balance Retrieval",
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				m.On("GetBalance", mock.Anything, testUser.ID).Return(&models.UserBalance{RUB: 150000, USDT: 2_500_000}, nil)
				return m
			},
			contextTimeout:   5 * time.Second,
			wantStatusCode:   http.StatusOK,
			wantResponseBody: `{"rub":"1500.00","usdt":"2.500000"}`,
		},
		{
			name: "Error in Balance Retrieval",
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				m.On("GetBalance", mock.Anything, testUser.ID).Return(nil, errors.New("db is down"))
				return m
			},
			contextTimeout:   5 * time.Second,
			wantStatusCode:   http.StatusInternalServerError,
			wantResponseBody: `{"code":500,"message":"Internal Server Error"}`,
		},
		{
			name: "Context Timeout",
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				m.On("GetBalance", mock.Anything, testUser.ID).Return(&models.UserBalance{}, nil)
				return m
			},
			contextTimeout:   0,
			wantStatusCode:   http.StatusInternalServerError,
			wantResponseBody: `{"code":500,"message":"Timeout exceeded"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withUser(httptest.NewRequest(http.MethodGet, "/api/user/balance", nil), testUser)
			w := httptest.NewRecorder()
			bh := &BalanceHandler{
				ledgerService:     tt.mockLedgerService(),
				withdrawalService: &MockWithdrawalService{},
				contextTimeout:    tt.contextTimeout,
			}

			bh.GetBalance(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
		})
	}
}

func TestBalanceHandler_Withdraw(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name                  string
		requestBody           string
		mockWithdrawalService func() *MockWithdrawalService
		wantStatusCode        int
		wantResponseBody      string
	}{
		{
			name:        "Successful Withdrawal",
			requestBody: `{"currency":"USDT","amount":"1.25"}`,
			mockWithdrawalService: func() *MockWithdrawalService {
				m := &MockWithdrawalService{}
				m.On("CreateWithdrawal", mock.Anything, testUser.ID, models.USDT, models.Amount(1_250_000)).Return(&models.Withdrawal{
					ID: 5, UserID: testUser.ID, Currency: models.USDT, Amount: 1_250_000, Status: models.WithdrawalPending, CreatedAt: createdAt,
				}, nil)
				return m
			},
			wantStatusCode:   http.StatusAccepted,
			wantResponseBody: `{"id":5,"currency":"USDT","amount":"1.250000","status":"pending","created_at":"2024-03-01T10:00:00Z"}`,
		},
		{
			name:        "Insufficient Funds",
			requestBody: `{"currency":"USDT","amount":"100"}`,
			mockWithdrawalService: func() *MockWithdrawalService {
				m := &MockWithdrawalService{}
				err := appErrors.NewWithCode(appErrors.ErrInsufficientFunds, "insufficient funds", http.StatusPaymentRequired)
				m.On("CreateWithdrawal", mock.Anything, testUser.ID, models.USDT, models.Amount(100_000_000)).Return(nil, err)
				return m
			},
			wantStatusCode:   http.StatusPaymentRequired,
			wantResponseBody: `{"code":402,"message":"insufficient funds"}`,
		},
		{
			name:                  "Unsupported currency",
			requestBody:           `{"currency":"BTC","amount":"1"}`,
			mockWithdrawalService: func() *MockWithdrawalService { return &MockWithdrawalService{} },
			wantStatusCode:        http.StatusBadRequest,
			wantResponseBody:      `{"code":400,"message":"Unsupported currency"}`,
		},
		{
			name:                  "Zero amount",
			requestBody:           `{"currency":"USDT","amount":"0"}`,
			mockWithdrawalService: func() *MockWithdrawalService { return &MockWithdrawalService{} },
			wantStatusCode:        http.StatusUnprocessableEntity,
			wantResponseBody:      `{"code":422,"message":"Amount must be positive"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withUser(httptest.NewRequest(http.MethodPost, "/api/user/balance/withdraw", strings.NewReader(tt.requestBody)), testUser)
			w := httptest.NewRecorder()
			withdrawals := tt.mockWithdrawalService()
			bh := NewBalanceHandler(&MockLedgerService{}, withdrawals, 5)

			bh.Withdraw(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			withdrawals.AssertExpectations(t)
		})
	}
}

func TestBalanceHandler_GetWithdrawals(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	transferID := "555"
	tests := []struct {
		name                  string
		mockWithdrawalService func() *MockWithdrawalService
		wantStatusCode        int
		wantResponseBody      string
	}{
		{
			name: "Successful Withdrawals Retrieval",
			mockWithdrawalService: func() *MockWithdrawalService {
				m := &MockWithdrawalService{}
				m.On("GetWithdrawals", mock.Anything, testUser.ID).Return([]models.Withdrawal{
					{ID: 6, Currency: models.USDT, Amount: 500_000, Status: models.WithdrawalCompleted, TransferID: &transferID, CreatedAt: createdAt},
					{ID: 5, Currency: models.USDT, Amount: 1_250_000, Status: models.WithdrawalFailed, CreatedAt: createdAt},
				}, nil)
				return m
			},
			wantStatusCode: http.StatusOK,
			wantResponseBody: `[
				{"id":6,"currency":"USDT","amount":"0.500000","status":"completed","transfer_id":"555","created_at":"2024-03-01T10:00:00Z"},
				{"id":5,"currency":"USDT","amount":"1.250000","status":"failed","created_at":"2024-03-01T10:00:00Z"}
			]`,
		},
		{
			name: "No Withdrawals",
			mockWithdrawalService: func() *MockWithdrawalService {
				m := &MockWithdrawalService{}
				m.On("GetWithdrawals", mock.Anything, testUser.ID).Return([]models.Withdrawal{}, nil)
				return m
			},
			wantStatusCode: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withUser(httptest.NewRequest(http.MethodGet, "/api/user/withdrawals", nil), testUser)
			w := httptest.NewRecorder()
			bh := NewBalanceHandler(&MockLedgerService{}, tt.mockWithdrawalService(), 5)

			bh.GetWithdrawals(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantResponseBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			}
		})
	}
}

func TestBalanceHandler_GetTransactions(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	orderID := int64(9)
	tests := []struct {
		name              string
		currency          string
		mockLedgerService func() *MockLedgerService
		wantStatusCode    int
		wantResponseBody  string
	}{
		{
			name:     "Successful History Retrieval",
			currency: "rub",
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				m.On("History", mock.Anything, testUser.ID, models.RUB).Return([]models.Transaction{
					{ID: 1, Type: models.TxDeposit, Currency: models.RUB, Amount: 100000, CreatedAt: createdAt},
					{ID: 2, Type: models.TxOrder, Currency: models.RUB, Amount: -29900, OrderID: &orderID, CreatedAt: createdAt},
				}, nil)
				return m
			},
			wantStatusCode: http.StatusOK,
			wantResponseBody: `[
				{"id":1,"type":"deposit","currency":"RUB","amount":"1000.00","created_at":"2024-03-01T10:00:00Z"},
				{"id":2,"type":"order","currency":"RUB","amount":"-299.00","order_id":9,"created_at":"2024-03-01T10:00:00Z"}
			]`,
		},
		{
			name:     "Empty History",
			currency: "USDT",
			mockLedgerService: func() *MockLedgerService {
				m := &MockLedgerService{}
				m.On("History", mock.Anything, testUser.ID, models.USDT).Return([]models.Transaction{}, nil)
				return m
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:              "Missing currency",
			currency:          "",
			mockLedgerService: func() *MockLedgerService { return &MockLedgerService{} },
			wantStatusCode:    http.StatusBadRequest,
			wantResponseBody:  `{"code":400,"message":"Unsupported currency"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withUser(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/user/transactions?currency=%s", tt.currency), nil), testUser)
			w := httptest.NewRecorder()
			bh := NewBalanceHandler(tt.mockLedgerService(), &MockWithdrawalService{}, 5)

			bh.GetTransactions(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantResponseBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			}
		})
	}
}
