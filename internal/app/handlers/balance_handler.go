package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	appContext "github.com/ujwegh/gamemart/internal/app/context"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/service"
)

type (
	BalanceHandler struct {
		ledgerService     service.LedgerService
		withdrawalService service.WithdrawalService
		contextTimeout    time.Duration
	}
	//easyjson:json
	BalanceDto struct {
		RUB  string `json:"rub"`
		USDT string `json:"usdt"`
	}
	//easyjson:json
	WithdrawRequestDto struct {
		Currency string `json:"currency"`
		Amount   string `json:"amount"`
	}
	//easyjson:json
	WithdrawalDto struct {
		ID         int64     `json:"id"`
		Currency   string    `json:"currency"`
		Amount     string    `json:"amount"`
		Status     string    `json:"status"`
		TransferID string    `json:"transfer_id,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}
	//easyjson:json
	WithdrawalDtoSlice []WithdrawalDto
	//easyjson:json
	TransactionDto struct {
		ID        int64     `json:"id"`
		Type      string    `json:"type"`
		Currency  string    `json:"currency"`
		Amount    string    `json:"amount"`
		OrderID   int64     `json:"order_id,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
	//easyjson:json
	TransactionDtoSlice []TransactionDto
)

func NewBalanceHandler(ledgerService service.LedgerService, withdrawalService service.WithdrawalService, contextTimeoutSec int) *BalanceHandler {
	return &BalanceHandler{
		ledgerService:     ledgerService,
		withdrawalService: withdrawalService,
		contextTimeout:    time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetBalance godoc
// @Summary Get user balance
// @Description Returns the cached balance in every supported currency.
// @Tags balance
// @Produce json
// @Success 200 {object} BalanceDto
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/balance [get]
func (bh *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), bh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	balance, err := bh.ledgerService.GetBalance(ctx, user.ID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	response := BalanceDto{
		RUB:  balance.RUB.Format(models.RUB),
		USDT: balance.USDT.Format(models.USDT),
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

// Withdraw godoc
// @Summary Withdraw funds
// @Description Debits the balance and queues a provider transfer to the user's Telegram account.
// @Tags balance
// @Accept json
// @Produce json
// @Param withdraw body WithdrawRequestDto true "Withdrawal request"
// @Success 202 {object} WithdrawalDto
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 402 {object} ErrorResponse "Insufficient funds"
// @Failure 422 {object} ErrorResponse "Invalid amount or currency"
// @Security ApiKeyAuth
// @Router /api/user/withdraw [post]
func (bh *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), bh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := WithdrawRequestDto{}
	if err := request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}
	currency, amount, err := parseMoney(request.Currency, request.Amount)
	if err != nil {
		PrepareError(w, err)
		return
	}

	withdrawal, err := bh.withdrawalService.CreateWithdrawal(ctx, user.ID, currency, amount)
	if err != nil {
		PrepareError(w, err)
		return
	}
	rawBytes, err := toWithdrawalDto(withdrawal).MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	if err := appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, rawBytes)
}

// GetWithdrawals godoc
// @Summary List withdrawals
// @Tags balance
// @Produce json
// @Success 200 {array} WithdrawalDto
// @Success 204 "No withdrawals"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security ApiKeyAuth
// @Router /api/user/withdrawals [get]
func (bh *BalanceHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), bh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	withdrawals, err := bh.withdrawalService.GetWithdrawals(ctx, user.ID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := make(WithdrawalDtoSlice, 0, len(withdrawals))
	for i := range withdrawals {
		response = append(response, toWithdrawalDto(&withdrawals[i]))
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

// GetTransactions godoc
// @Summary Ledger history
// @Description Returns the user's ledger rows in one currency, oldest first.
// @Tags balance
// @Produce json
// @Param currency query string true "RUB or USDT"
// @Success 200 {array} TransactionDto
// @Success 204 "No transactions"
// @Failure 400 {object} ErrorResponse "Unsupported currency"
// @Security ApiKeyAuth
// @Router /api/user/transactions [get]
func (bh *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), bh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	currency, err := models.ParseCurrency(r.URL.Query().Get("currency"))
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unsupported currency", http.StatusBadRequest))
		return
	}
	rows, err := bh.ledgerService.History(ctx, user.ID, currency)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(rows) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := make(TransactionDtoSlice, 0, len(rows))
	for _, row := range rows {
		dto := TransactionDto{
			ID:        row.ID,
			Type:      row.Type.String(),
			Currency:  row.Currency.String(),
			Amount:    row.Amount.Format(row.Currency),
			CreatedAt: row.CreatedAt,
		}
		if row.OrderID != nil {
			dto.OrderID = *row.OrderID
		}
		response = append(response, dto)
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

func toWithdrawalDto(withdrawal *models.Withdrawal) WithdrawalDto {
	dto := WithdrawalDto{
		ID:        withdrawal.ID,
		Currency:  withdrawal.Currency.String(),
		Amount:    withdrawal.Amount.Format(withdrawal.Currency),
		Status:    withdrawal.Status.String(),
		CreatedAt: withdrawal.CreatedAt,
	}
	if withdrawal.TransferID != nil {
		dto.TransferID = *withdrawal.TransferID
	}
	return dto
}
