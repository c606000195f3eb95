package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-chi/chi/v5"
	appContext "github.com/ujwegh/gamemart/internal/app/context"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/service"
)

type (
	AdminHandler struct {
		settlement     service.SettlementService
		ledgerService  service.LedgerService
		contextTimeout time.Duration
	}
	//easyjson:json
	DriftDto struct {
		Currency string `json:"currency"`
		Balance  string `json:"balance"`
		Ledger   string `json:"ledger"`
	}
	//easyjson:json
	DriftDtoSlice []DriftDto
	//easyjson:json
	ReconcileResponseDto struct {
		UserID     int64         `json:"user_id"`
		Consistent bool          `json:"consistent"`
		Drifts     DriftDtoSlice `json:"drifts"`
	}
)

func NewAdminHandler(contextTimeoutSec int, settlement service.SettlementService, ledgerService service.LedgerService) *AdminHandler {
	return &AdminHandler{
		settlement:     settlement,
		ledgerService:  ledgerService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Refund godoc
// @Summary Refund an order
// @Description Moves a completed purchase to refunded and credits the buyer back.
// @Tags admin
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} OrderDto
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order is not refundable"
// @Security BasicAuth
// @Router /api/admin/orders/{number}/refund [post]
func (ah *AdminHandler) Refund(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	number := chi.URLParam(r, "number")
	if err := goluhn.Validate(number); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Invalid order number", http.StatusUnprocessableEntity))
		return
	}
	order, err := ah.settlement.Refund(ctx, number)
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

// Reconcile godoc
// @Summary Reconcile a user's balances
// @Description Rebuilds balances from the ledger and reports currencies that drifted.
// @Tags admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} ReconcileResponseDto
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BasicAuth
// @Router /api/admin/users/{id}/reconcile [get]
func (ah *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Invalid user id", http.StatusBadRequest))
		return
	}
	drifts, err := ah.ledgerService.Reconcile(ctx, userID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	response := ReconcileResponseDto{
		UserID:     userID,
		Consistent: len(drifts) == 0,
		Drifts:     make(DriftDtoSlice, 0, len(drifts)),
	}
	for _, d := range drifts {
		response.Drifts = append(response.Drifts, DriftDto{
			Currency: d.Currency.String(),
			Balance:  d.Balance.Format(d.Currency),
			Ledger:   d.Ledger.Format(d.Currency),
		})
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
