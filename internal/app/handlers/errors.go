package handlers

import (
	"context"
	"errors"
	"net/http"

	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/logger"
	"go.uber.org/zap"
)

const errMsgEnableReadBody = "Unable to read body"

//easyjson:json
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

var sentinelResponses = []struct {
	err  error
	msg  string
	code int
}{
	{appErrors.ErrSignatureInvalid, "Invalid signature", http.StatusUnauthorized},
	{appErrors.ErrUnknownPayment, "Unknown payment", http.StatusNotFound},
	{appErrors.ErrConflictingSettlement, "Conflicting settlement", http.StatusConflict},
	{appErrors.ErrInsufficientFunds, "Insufficient funds", http.StatusPaymentRequired},
	{appErrors.ErrNotFound, "Not found", http.StatusNotFound},
	{appErrors.ErrDuplicate, "Already exists", http.StatusConflict},
	{appErrors.ErrSelfReferral, "User cannot refer themselves", http.StatusUnprocessableEntity},
	{appErrors.ErrInvalidAmount, "Invalid amount", http.StatusUnprocessableEntity},
	{appErrors.ErrProviderUnavailable, "Payment provider unavailable", http.StatusServiceUnavailable},
	{context.DeadlineExceeded, "Timeout exceeded", http.StatusInternalServerError},
	{context.Canceled, "Request canceled", http.StatusInternalServerError},
}

func PrepareError(w http.ResponseWriter, err error) {
	msg, code := "Internal Server Error", http.StatusInternalServerError
	var codeErr appErrors.ResponseCodeError
	if errors.As(err, &codeErr) {
		msg, code = codeErr.Msg(), codeErr.Code()
	} else {
		for _, s := range sentinelResponses {
			if errors.Is(err, s.err) {
				msg, code = s.msg, s.code
				break
			}
		}
	}
	if code >= http.StatusInternalServerError {
		logger.Log.Error("internal error: ", zap.Error(err))
	} else {
		logger.Log.Warn("request failed: ", zap.Int("code", code), zap.Error(err))
	}
	WriteJSONErrorResponse(w, msg, code)
}

func WriteJSONErrorResponse(w http.ResponseWriter, message string, code int) {
	er := ErrorResponse{
		Message: message,
		Code:    code,
	}
	w.Header().Set("Content-Type", "application/json")
	json, err := ErrorResponse.MarshalJSON(er)
	if err != nil {
		logger.Log.Error("failed to marshal error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	w.Write(json)
}

func writeJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
