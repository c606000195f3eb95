package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-chi/chi/v5"
	appContext "github.com/ujwegh/gamemart/internal/app/context"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/service"
)

type (
	OrdersHandler struct {
		checkoutService service.CheckoutService
		contextTimeout  time.Duration
	}

	//easyjson:json
	CheckoutRequestDto struct {
		OfferID  int64  `json:"offer_id"`
		Currency string `json:"currency"`
	}
	//easyjson:json
	TopUpRequestDto struct {
		Currency string `json:"currency"`
		Amount   string `json:"amount"`
	}
	//easyjson:json
	CheckoutResponseDto struct {
		Number    string    `json:"number"`
		Status    string    `json:"status"`
		Currency  string    `json:"currency"`
		Amount    string    `json:"amount"`
		InvoiceID string    `json:"invoice_id"`
		PayURL    string    `json:"pay_url"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	//easyjson:json
	OrderDto struct {
		Number    string    `json:"number"`
		Status    string    `json:"status"`
		Currency  string    `json:"currency"`
		Amount    string    `json:"amount"`
		OfferID   int64     `json:"offer_id,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	//easyjson:json
	OrderDtoSlice []OrderDto
)

func NewOrdersHandler(contextTimeoutSec int, checkoutService service.CheckoutService) *OrdersHandler {
	return &OrdersHandler{
		checkoutService: checkoutService,
		contextTimeout:  time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Checkout godoc
// @Summary Buy an offer
// @Description Creates an order for the offer at its current price in the chosen currency and opens a payment intent.
// @Tags orders
// @Accept json
// @Produce json
// @Param checkout body CheckoutRequestDto true "Offer and currency"
// @Success 201 {object} CheckoutResponseDto
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 404 {object} ErrorResponse "Offer not found"
// @Failure 409 {object} ErrorResponse "Offer is not available"
// @Failure 503 {object} ErrorResponse "Payment provider unavailable"
// @Security ApiKeyAuth
// @Router /api/user/checkout [post]
func (oh *OrdersHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := CheckoutRequestDto{}
	if err := request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}
	currency, err := models.ParseCurrency(request.Currency)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unsupported currency", http.StatusBadRequest))
		return
	}

	checkout, err := oh.checkoutService.Checkout(ctx, user.ID, request.OfferID, currency)
	if err != nil {
		PrepareError(w, err)
		return
	}
	oh.writeCheckout(ctx, w, checkout)
}

// TopUp godoc
// @Summary Top up the balance
// @Description Opens a payment intent that credits the balance once paid.
// @Tags orders
// @Accept json
// @Produce json
// @Param topup body TopUpRequestDto true "Currency and amount"
// @Success 201 {object} CheckoutResponseDto
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 422 {object} ErrorResponse "Invalid amount"
// @Security ApiKeyAuth
// @Router /api/user/topup [post]
func (oh *OrdersHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := TopUpRequestDto{}
	if err := request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}
	currency, amount, err := parseMoney(request.Currency, request.Amount)
	if err != nil {
		PrepareError(w, err)
		return
	}

	checkout, err := oh.checkoutService.TopUp(ctx, user.ID, currency, amount)
	if err != nil {
		PrepareError(w, err)
		return
	}
	oh.writeCheckout(ctx, w, checkout)
}

func (oh *OrdersHandler) writeCheckout(ctx context.Context, w http.ResponseWriter, checkout *service.Checkout) {
	response := CheckoutResponseDto{
		Number:    checkout.Order.Number,
		Status:    checkout.Order.Status.String(),
		Currency:  checkout.Payment.Currency.String(),
		Amount:    checkout.Payment.AmountToPay.Format(checkout.Payment.Currency),
		InvoiceID: checkout.Payment.ExternalID,
		PayURL:    checkout.Payment.PayURL,
		ExpiresAt: checkout.Payment.ExpiresAt,
	}
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	if err := appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rawBytes)
}

// GetOrders godoc
// @Summary List orders
// @Description Returns the user's orders, newest first.
// @Tags orders
// @Produce json
// @Success 200 {array} OrderDto "List of orders"
// @Success 204 "No orders to display"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/orders [get]
func (oh *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	orders, err := oh.checkoutService.GetOrders(ctx, user.ID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := make(OrderDtoSlice, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderDto(&orders[i]))
	}
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	if err := appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rawBytes)
}

// GetOrder godoc
// @Summary Order status
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} OrderDto
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 422 {object} ErrorResponse "Incorrect order number format"
// @Security ApiKeyAuth
// @Router /api/user/orders/{number} [get]
func (oh *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	number := chi.URLParam(r, "number")
	if err := goluhn.Validate(number); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Invalid order number", http.StatusUnprocessableEntity))
		return
	}
	order, err := oh.checkoutService.GetOrder(ctx, user.ID, number)
	if err != nil {
		PrepareError(w, err)
		return
	}
	rawBytes, err := toOrderDto(order).MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	if err := appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rawBytes)
}

func toOrderDto(order *models.Order) OrderDto {
	dto := OrderDto{
		Number:    order.Number,
		Status:    order.Status.String(),
		Currency:  order.Currency.String(),
		Amount:    order.Amount.Format(order.Currency),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
	if order.OfferID != nil {
		dto.OfferID = *order.OfferID
	}
	return dto
}

func parseMoney(rawCurrency, rawAmount string) (models.Currency, models.Amount, error) {
	currency, err := models.ParseCurrency(rawCurrency)
	if err != nil {
		return "", 0, appErrors.NewWithCode(err, "Unsupported currency", http.StatusBadRequest)
	}
	amount, err := models.ParseAmount(rawAmount, currency)
	if err != nil {
		return "", 0, appErrors.NewWithCode(err, "Invalid amount", http.StatusUnprocessableEntity)
	}
	if amount <= 0 {
		return "", 0, appErrors.NewWithCode(appErrors.ErrInvalidAmount, "Amount must be positive", http.StatusUnprocessableEntity)
	}
	return currency, amount, nil
}
