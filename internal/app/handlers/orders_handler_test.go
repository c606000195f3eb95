package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/service"
)

func testCheckout(currency models.Currency, amount models.Amount) *service.Checkout {
	expiresAt := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)
	return &service.Checkout{
		Order: &models.Order{ID: 1, Number: "79927398713", UserID: testUser.ID, Currency: currency, Amount: amount,
			Status: models.OrderPendingPayment},
		Payment: &models.Payment{ID: 2, OrderID: 1, Currency: currency, AmountToPay: amount, ExternalID: "inv-1",
			PayURL: "https://t.me/CryptoBot?start=inv-1", Status: models.PaymentPending, ExpiresAt: expiresAt},
	}
}

func TestOrdersHandler_Checkout(t *testing.T) {
	tests := []struct {
		name                string
		requestBody         string
		mockCheckoutService func() *MockCheckoutService
		contextTimeout      time.Duration
		wantStatusCode      int
		wantResponseBody    string
	}{
		{
			name:        "Successful Checkout",
			requestBody: `{"offer_id":11,"currency":"rub"}`,
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				m.On("Checkout", mock.Anything, testUser.ID, int64(11), models.RUB).Return(testCheckout(models.RUB, 29900), nil)
				return m
			},
			contextTimeout: 5 * time.Second,
			wantStatusCode: http.StatusCreated,
			wantResponseBody: `{"number":"79927398713","status":"pending_payment","currency":"RUB","amount":"299.00",
				"invoice_id":"inv-1","pay_url":"https://t.me/CryptoBot?start=inv-1","expires_at":"2024-03-01T11:00:00Z"}`,
		},
		{
			name:                "Unsupported currency",
			requestBody:         `{"offer_id":11,"currency":"EUR"}`,
			mockCheckoutService: func() *MockCheckoutService { return &MockCheckoutService{} },
			contextTimeout:      5 * time.Second,
			wantStatusCode:      http.StatusBadRequest,
			wantResponseBody:    `{"code":400,"message":"Unsupported currency"}`,
		},
		{
			name:                "Malformed body",
			requestBody:         `offer`,
			mockCheckoutService: func() *MockCheckoutService { return &MockCheckoutService{} },
			contextTimeout:      5 * time.Second,
			wantStatusCode:      http.StatusBadRequest,
			wantResponseBody:    `{"code":400,"message":"Unable to parse body"}`,
		},
		{
			name:        "Offer not available",
			requestBody: `{"offer_id":11,"currency":"USDT"}`,
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				err := appErrors.NewWithCode(errors.New("offer is not available"), "offer is not available", http.StatusConflict)
				m.On("Checkout", mock.Anything, testUser.ID, int64(11), models.USDT).Return(nil, err)
				return m
			},
			contextTimeout:   5 * time.Second,
			wantStatusCode:   http.StatusConflict,
			wantResponseBody: `{"code":409,"message":"offer is not available"}`,
		},
		{
			name:        "Provider unavailable",
			requestBody: `{"offer_id":11,"currency":"USDT"}`,
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				m.On("Checkout", mock.Anything, testUser.ID, int64(11), models.USDT).Return(nil, appErrors.ErrProviderUnavailable)
				return m
			},
			contextTimeout:   5 * time.Second,
			wantStatusCode:   http.StatusServiceUnavailable,
			wantResponseBody: `{"code":503,"message":"Payment provider unavailable"}`,
		},
		{
			name:        "Context Timeout",
			requestBody: `{"offer_id":11,"currency":"RUB"}`,
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				m.On("Checkout", mock.Anything, testUser.ID, int64(11), models.RUB).Return(testCheckout(models.RUB, 29900), nil)
				return m
			},
			contextTimeout:   0,
			wantStatusCode:   http.StatusInternalServerError,
			wantResponseBody: `{"code":500,"message":"Timeout exceeded"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withUser(httptest.NewRequest(http.MethodPost, "/api/user/checkout", strings.NewReader(tt.requestBody)), testUser)
			w := httptest.NewRecorder()
			oh := &OrdersHandler{
				checkoutService: tt.mockCheckoutService(),
				contextTimeout:  tt.contextTimeout,
			}

			oh.Checkout(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
		})
	}
}

func TestOrdersHandler_TopUp(t *testing.T) {
	tests := []struct {
		name                string
		requestBody         string
		mockCheckoutService func() *MockCheckoutService
		wantStatusCode      int
		wantResponseBody    string
	}{
		{
			name:        "Successful Top Up",
			requestBody: `{"currency":"USDT","amount":"10.5"}`,
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				m.On("TopUp", mock.Anything, testUser.ID, models.USDT, models.Amount(10_500_000)).
					Return(testCheckout(models.USDT, 10_500_000), nil)
				return m
			},
			wantStatusCode: http.StatusCreated,
			wantResponseBody: `{"number":"79927398713","status":"pending_payment","currency":"USDT","amount":"10.500000",
				"invoice_id":"inv-1","pay_url":"https://t.me/CryptoBot?start=inv-1","expires_at":"2024-03-01T11:00:00Z"}`,
		},
		{
			name:                "Negative amount",
			requestBody:         `{"currency":"RUB","amount":"-1"}`,
			mockCheckoutService: func() *MockCheckoutService { return &MockCheckoutService{} },
			wantStatusCode:      http.StatusUnprocessableEntity,
			wantResponseBody:    `{"code":422,"message":"Amount must be positive"}`,
		},
		{
			name:                "Too precise amount",
			requestBody:         `{"currency":"RUB","amount":"1.001"}`,
			mockCheckoutService: func() *MockCheckoutService { return &MockCheckoutService{} },
			wantStatusCode:      http.StatusUnprocessableEntity,
			wantResponseBody:    `{"code":422,"message":"Invalid amount"}`,
		},
		{
			name:                "Amount is not a number",
			requestBody:         `{"currency":"RUB","amount":"ten"}`,
			mockCheckoutService: func() *MockCheckoutService { return &MockCheckoutService{} },
			wantStatusCode:      http.StatusUnprocessableEntity,
			wantResponseBody:    `{"code":422,"message":"Invalid amount"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withUser(httptest.NewRequest(http.MethodPost, "/api/user/topup", strings.NewReader(tt.requestBody)), testUser)
			w := httptest.NewRecorder()
			checkout := tt.mockCheckoutService()
			oh := NewOrdersHandler(5, checkout)

			oh.TopUp(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			checkout.AssertExpectations(t)
		})
	}
}

func TestOrdersHandler_GetOrders(t *testing.T) {
	offerID := int64(11)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name                string
		mockCheckoutService func() *MockCheckoutService
		wantStatusCode      int
		wantResponseBody    string
	}{
		{
			name: "Successful Orders Retrieval",
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				m.On("GetOrders", mock.Anything, testUser.ID).Return([]models.Order{
					{Number: "79927398713", OfferID: &offerID, Currency: models.RUB, Amount: 29900, Status: models.OrderCompleted, CreatedAt: createdAt, UpdatedAt: createdAt},
					{Number: "354188083613", Currency: models.USDT, Amount: 1_000_000, Status: models.OrderExpired, CreatedAt: createdAt, UpdatedAt: createdAt},
				}, nil)
				return m
			},
			wantStatusCode: http.StatusOK,
			wantResponseBody: `[
				{"number":"79927398713","status":"completed","currency":"RUB","amount":"299.00","offer_id":11,"created_at":"2024-03-01T10:00:00Z","updated_at":"2024-03-01T10:00:00Z"},
				{"number":"354188083613","status":"expired","currency":"USDT","amount":"1.000000","created_at":"2024-03-01T10:00:00Z","updated_at":"2024-03-01T10:00:00Z"}
			]`,
		},
		{
			name: "No Orders",
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				m.On("GetOrders", mock.Anything, testUser.ID).Return([]models.Order{}, nil)
				return m
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name: "Error in Orders Retrieval",
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				m.On("GetOrders", mock.Anything, testUser.ID).Return(nil, errors.New("internal server error"))
				return m
			},
			wantStatusCode:   http.StatusInternalServerError,
			wantResponseBody: `{"code":500,"message":"Internal Server Error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withUser(httptest.NewRequest(http.MethodGet, "/api/user/orders", nil), testUser)
			w := httptest.NewRecorder()
			oh := NewOrdersHandler(5, tt.mockCheckoutService())

			oh.GetOrders(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantResponseBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			}
		})
	}
}

func TestOrdersHandler_GetOrder(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name                string
		number              string
		mockCheckoutService func() *MockCheckoutService
		wantStatusCode      int
		wantResponseBody    string
	}{
		{
			name:   "Own order",
			number: "79927398713",
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				m.On("GetOrder", mock.Anything, testUser.ID, "79927398713").Return(&models.Order{
					Number: "79927398713", Currency: models.RUB, Amount: 50000, Status: models.OrderCompleted, CreatedAt: createdAt, UpdatedAt: createdAt,
				}, nil)
				return m
			},
			wantStatusCode:   http.StatusOK,
			wantResponseBody: `{"number":"79927398713","status":"completed","currency":"RUB","amount":"500.00","created_at":"2024-03-01T10:00:00Z","updated_at":"2024-03-01T10:00:00Z"}`,
		},
		{
			name:                "Invalid number",
			number:              "12345",
			mockCheckoutService: func() *MockCheckoutService { return &MockCheckoutService{} },
			wantStatusCode:      http.StatusUnprocessableEntity,
			wantResponseBody:    `{"code":422,"message":"Invalid order number"}`,
		},
		{
			name:   "Someone else's order",
			number: "79927398713",
			mockCheckoutService: func() *MockCheckoutService {
				m := &MockCheckoutService{}
				err := appErrors.NewWithCode(appErrors.ErrNotFound, "Order not found", http.StatusNotFound)
				m.On("GetOrder", mock.Anything, testUser.ID, "79927398713").Return(nil, err)
				return m
			},
			wantStatusCode:   http.StatusNotFound,
			wantResponseBody: `{"code":404,"message":"Order not found"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/user/orders/"+tt.number, nil)
			req = withUser(withURLParam(req, "number", tt.number), testUser)
			w := httptest.NewRecorder()
			oh := NewOrdersHandler(5, tt.mockCheckoutService())

			oh.GetOrder(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
		})
	}
}
