package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/service"
	"go.uber.org/zap"
)

const (
	signatureHeader          = "X-Signature"
	providerSignatureHeader  = "Crypto-Pay-Api-Signature"
	maxWebhookBodyBytes      = 1 << 20
	errMsgUnsupportedPayload = "Unsupported payload"
)

type (
	WebhookHandler struct {
		verifier       service.WebhookVerifier
		settlement     service.SettlementService
		dispatcher     service.NotificationDispatcher
		contextTimeout time.Duration
	}
	// PaymentWebhookDto accepts both the flat relay format and the provider's
	// native update, where the invoice is nested under payload.
	//easyjson:json
	PaymentWebhookDto struct {
		Event      string             `json:"event"`
		UpdateType string             `json:"update_type"`
		InvoiceID  string             `json:"invoiceId"`
		Status     string             `json:"status"`
		Amount     string             `json:"amount"`
		Currency   string             `json:"currency"`
		Payload    *InvoicePayloadDto `json:"payload"`
	}
	//easyjson:json
	InvoicePayloadDto struct {
		InvoiceID    int64  `json:"invoice_id"`
		Status       string `json:"status"`
		CurrencyType string `json:"currency_type"`
		Asset        string `json:"asset"`
		Fiat         string `json:"fiat"`
		Amount       string `json:"amount"`
	}
	//easyjson:json
	DeploymentWebhookDto struct {
		Event      string        `json:"event"`
		Deployment DeploymentDto `json:"deployment"`
	}
	//easyjson:json
	DeploymentDto struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		URL    string `json:"url"`
	}
	//easyjson:json
	WebhookAckDto struct {
		Result string `json:"result"`
	}
)

func NewWebhookHandler(contextTimeoutSec int, verifier service.WebhookVerifier, settlement service.SettlementService,
	dispatcher service.NotificationDispatcher) *WebhookHandler {
	return &WebhookHandler{
		verifier:       verifier,
		settlement:     settlement,
		dispatcher:     dispatcher,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// PaymentWebhook godoc
// @Summary Payment provider notification
// @Description Verifies the body signature and applies the payment status. Repeated notifications are acknowledged without effect.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Signature header string true "hex HMAC-SHA256 of the body"
// @Success 200 {object} WebhookAckDto
// @Failure 400 {object} ErrorResponse "Malformed or unsupported payload"
// @Failure 401 {object} ErrorResponse "Invalid signature"
// @Failure 404 {object} ErrorResponse "Unknown payment"
// @Failure 409 {object} ErrorResponse "Conflicting settlement"
// @Router /api/webhooks/payment [post]
func (wh *WebhookHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, ok := wh.readVerified(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), wh.contextTimeout)
	defer cancel()

	dto := PaymentWebhookDto{}
	if err := dto.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}
	event, err := toPaymentEvent(dto)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgUnsupportedPayload, http.StatusBadRequest))
		return
	}

	// A committed settlement is acknowledged regardless of the deadline.
	outcome, err := wh.settlement.Settle(ctx, event)
	if err != nil {
		PrepareError(w, err)
		return
	}
	wh.ack(w, string(outcome.Result))
}

// DeploymentWebhook godoc
// @Summary Deployment notification relay
// @Description Verifies the body signature and relays the deployment status to the admin chats.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} WebhookAckDto
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid signature"
// @Router /api/webhooks/deployment [post]
func (wh *WebhookHandler) DeploymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, ok := wh.readVerified(w, r)
	if !ok {
		return
	}
	dto := DeploymentWebhookDto{}
	if err := dto.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}
	if dto.Deployment.ID == "" {
		PrepareError(w, appErrors.NewWithCode(fmt.Errorf("deployment id is empty"), errMsgUnsupportedPayload, http.StatusBadRequest))
		return
	}
	text := fmt.Sprintf("Deployment %s: %s", dto.Deployment.ID, dto.Deployment.Status)
	if dto.Deployment.URL != "" {
		text += " " + dto.Deployment.URL
	}
	wh.dispatcher.Dispatch(service.Notification{
		Key:  fmt.Sprintf("deployment:%s:%s", dto.Deployment.ID, dto.Deployment.Status),
		Text: text,
	})
	wh.ack(w, "relayed")
}

// readVerified reads the raw body and checks its signature before anything
// is parsed.
func (wh *WebhookHandler) readVerified(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return nil, false
	}
	signature := r.Header.Get(signatureHeader)
	if signature == "" {
		signature = r.Header.Get(providerSignatureHeader)
	}
	if err := wh.verifier.Verify(body, signature); err != nil {
		logger.Log.Warn("webhook signature rejected",
			zap.String("path", r.URL.Path), zap.String("remote_addr", r.RemoteAddr), zap.Error(err))
		WriteJSONErrorResponse(w, "Invalid signature", http.StatusUnauthorized)
		return nil, false
	}
	return body, true
}

func (wh *WebhookHandler) ack(w http.ResponseWriter, result string) {
	rawBytes, err := WebhookAckDto{Result: result}.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, rawBytes)
}

func toPaymentEvent(dto PaymentWebhookDto) (service.PaymentEvent, error) {
	externalID, rawStatus, rawAmount, rawCurrency := dto.InvoiceID, dto.Status, dto.Amount, dto.Currency
	if rawStatus == "" {
		rawStatus = dto.Event
	}
	if p := dto.Payload; p != nil {
		externalID, rawStatus, rawAmount = strconv.FormatInt(p.InvoiceID, 10), p.Status, p.Amount
		if rawStatus == "" {
			rawStatus = dto.UpdateType
		}
		rawCurrency = p.Asset
		if p.CurrencyType == "fiat" {
			rawCurrency = p.Fiat
		}
	}
	if externalID == "" || externalID == "0" {
		return service.PaymentEvent{}, fmt.Errorf("missing invoice id")
	}
	status := service.ParseProviderStatus(rawStatus)
	if status == service.ProviderUnknown {
		return service.PaymentEvent{}, fmt.Errorf("unsupported status %q", rawStatus)
	}
	event := service.PaymentEvent{ExternalID: externalID, Status: status, OccurredAt: time.Now().UTC()}
	if rawAmount == "" {
		return event, nil
	}
	currency, err := models.ParseCurrency(rawCurrency)
	if err != nil {
		return service.PaymentEvent{}, err
	}
	amount, err := models.ParseAmount(rawAmount, currency)
	if err != nil {
		return service.PaymentEvent{}, err
	}
	event.Amount, event.Currency = &amount, currency
	return event, nil
}
