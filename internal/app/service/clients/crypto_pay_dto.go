package clients

import "github.com/mailru/easyjson"

//go:generate easyjson -all crypto_pay_dto.go

type (
	CreateInvoiceRequestDto struct {
		CurrencyType string `json:"currency_type"`
		Asset        string `json:"asset,omitempty"`
		Fiat         string `json:"fiat,omitempty"`
		Amount       string `json:"amount"`
		Description  string `json:"description,omitempty"`
		Payload      string `json:"payload,omitempty"`
		ExpiresIn    int64  `json:"expires_in,omitempty"`
	}
	TransferRequestDto struct {
		UserID  int64  `json:"user_id"`
		Asset   string `json:"asset"`
		Amount  string `json:"amount"`
		SpendID string `json:"spend_id"`
		Comment string `json:"comment,omitempty"`
	}
	APIResponseDto struct {
		OK     bool                `json:"ok"`
		Result easyjson.RawMessage `json:"result"`
		Error  *APIErrorDto        `json:"error,omitempty"`
	}
	APIErrorDto struct {
		Code int64  `json:"code"`
		Name string `json:"name"`
	}
	InvoiceResultDto struct {
		InvoiceID     int64  `json:"invoice_id"`
		Status        string `json:"status"`
		BotInvoiceURL string `json:"bot_invoice_url"`
		PayURL        string `json:"pay_url,omitempty"`
	}
	TransferResultDto struct {
		TransferID  int64  `json:"transfer_id"`
		Status      string `json:"status"`
		CompletedAt string `json:"completed_at,omitempty"`
	}
)
