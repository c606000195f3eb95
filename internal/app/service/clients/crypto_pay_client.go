package clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mailru/easyjson"
	"github.com/sethgrid/pester"
	"github.com/ujwegh/gamemart/internal/app/config"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"github.com/ujwegh/gamemart/internal/app/models"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type (
	PaymentGateway interface {
		CreateInvoice(ctx context.Context, asset models.Currency, amount models.Amount, opts InvoiceOptions) (*Invoice, error)
		Transfer(ctx context.Context, userID int64, asset models.Currency, amount models.Amount, spendID string, opts TransferOptions) (*Transfer, error)
	}
	InvoiceOptions struct {
		Description string
		// Payload is echoed back in notifications and identifies the order.
		Payload   string
		ExpiresIn time.Duration
	}
	Invoice struct {
		InvoiceID string
		Status    string
		PayURL    string
	}
	TransferOptions struct {
		Comment string
	}
	Transfer struct {
		TransferID  string
		Status      string
		CompletedAt time.Time
	}
	CryptoPayClientImpl struct {
		ServiceURL   string
		apiToken     string
		pesterClient *pester.Client
		rateLimiter  ratelimit.Limiter
	}
	LoggingRoundTripper struct {
		Proxied http.RoundTripper
	}
)

const apiTokenHeader = "Crypto-Pay-API-Token"

func NewCryptoPayClient(c config.AppConfig) *CryptoPayClientImpl {
	rateLimiter := ratelimit.New(c.ProviderRequestsPerSecond)
	pesterClient := pester.New()

	pesterClient.Concurrency = 1 // Since we are rate-limiting, concurrency should be 1
	pesterClient.MaxRetries = c.ProviderMaxRetries
	pesterClient.Backoff = pester.ExponentialJitterBackoff
	pesterClient.KeepLog = true
	pesterClient.Timeout = time.Duration(c.ProviderTimeoutSec) * time.Second
	pesterClient.RetryOnHTTP429 = true
	pesterClient.Transport = &LoggingRoundTripper{Proxied: http.DefaultTransport}

	return &CryptoPayClientImpl{
		ServiceURL:   strings.TrimRight(c.ProviderURL, "/"),
		apiToken:     c.ProviderAPIToken,
		pesterClient: pesterClient,
		rateLimiter:  rateLimiter,
	}
}

// CreateInvoice opens a payment intent. RUB invoices are fiat invoices the
// buyer pays in any supported crypto asset.
func (cc *CryptoPayClientImpl) CreateInvoice(ctx context.Context, asset models.Currency, amount models.Amount, opts InvoiceOptions) (*Invoice, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invoice amount %d: %w", amount, appErrors.ErrInvalidAmount)
	}
	request := CreateInvoiceRequestDto{
		Amount:      amount.Format(asset),
		Description: opts.Description,
		Payload:     opts.Payload,
		ExpiresIn:   int64(opts.ExpiresIn / time.Second),
	}
	if asset == models.RUB {
		request.CurrencyType, request.Fiat = "fiat", asset.String()
	} else {
		request.CurrencyType, request.Asset = "crypto", asset.String()
	}

	result := InvoiceResultDto{}
	if err := cc.call(ctx, "createInvoice", request, &result); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	payURL := result.BotInvoiceURL
	if payURL == "" {
		payURL = result.PayURL
	}
	return &Invoice{
		InvoiceID: strconv.FormatInt(result.InvoiceID, 10),
		Status:    result.Status,
		PayURL:    payURL,
	}, nil
}

// Transfer sends funds to a Telegram user. spendID makes the call idempotent on
// the provider side and must be derived from the caller's own record id.
func (cc *CryptoPayClientImpl) Transfer(ctx context.Context, userID int64, asset models.Currency, amount models.Amount, spendID string, opts TransferOptions) (*Transfer, error) {
	if spendID == "" {
		return nil, errors.New("transfer: idempotency key is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("transfer amount %d: %w", amount, appErrors.ErrInvalidAmount)
	}
	request := TransferRequestDto{
		UserID:  userID,
		Asset:   asset.String(),
		Amount:  amount.Format(asset),
		SpendID: spendID,
		Comment: opts.Comment,
	}
	result := TransferResultDto{}
	if err := cc.call(ctx, "transfer", request, &result); err != nil {
		return nil, fmt.Errorf("transfer %s: %w", spendID, err)
	}
	transfer := &Transfer{
		TransferID: strconv.FormatInt(result.TransferID, 10),
		Status:     result.Status,
	}
	if result.CompletedAt != "" {
		if completedAt, err := time.Parse(time.RFC3339, result.CompletedAt); err == nil {
			transfer.CompletedAt = completedAt
		}
	}
	return transfer, nil
}

func (cc *CryptoPayClientImpl) call(ctx context.Context, method string, request easyjson.Marshaler, result easyjson.Unmarshaler) error {
	body, err := easyjson.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cc.ServiceURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiTokenHeader, cc.apiToken)

	// Wait for the next available opportunity to send a request
	cc.rateLimiter.Take()

	resp, err := cc.pesterClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", method, err, appErrors.ErrProviderUnavailable)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %v: %w", err, appErrors.ErrProviderUnavailable)
	}
	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%s: status %d: %w", method, resp.StatusCode, appErrors.ErrProviderUnavailable)
	}

	envelope := APIResponseDto{}
	if err := envelope.UnmarshalJSON(raw); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if !envelope.OK {
		name := "UNKNOWN"
		if envelope.Error != nil {
			name = envelope.Error.Name
		}
		return fmt.Errorf("%s: %s: %w", method, name, appErrors.ErrProviderRejected)
	}
	if err := easyjson.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	return nil
}

func (ac *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	logRequest(r)
	response, err := ac.Proxied.RoundTrip(r)
	if err != nil {
		logger.Log.Error("provider request error", zap.Error(err))
		return nil, err
	}
	logResponse(response)
	return response, nil
}

func logResponse(response *http.Response) {
	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Log.Error("provider response error", zap.Error(err))
		return
	}
	response.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	body := string(bodyBytes)
	if len(body) == 0 {
		body = "empty body"
	}

	logger.Log.Info("PROVIDER RESPONSE:",
		zap.Int("Status", response.StatusCode),
		zap.Int64("Content-Length", response.ContentLength),
		zap.String("Body", body),
	)
}

// logRequest never logs headers: they carry the API token.
func logRequest(r *http.Request) {
	bodyMsg, err := getRequestBodyForLogging(r)
	if err != nil {
		logger.Log.Error("provider log request error", zap.Error(err))
		return
	}
	logger.Log.Info("PROVIDER REQUEST:",
		zap.String("Method", r.Method),
		zap.String("Path", r.URL.Path),
		zap.String("Body", bodyMsg),
	)
}

func getRequestBodyForLogging(r *http.Request) (string, error) {
	if r.Body == nil || r.ContentLength == 0 {
		return "empty body", nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("error reading request body: %w", err)
	}
	defer r.Body.Close()
	r.Body = io.NopCloser(bytes.NewBuffer(body))
	return string(body), nil
}
