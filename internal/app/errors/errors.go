package errors

import (
	"errors"
	"fmt"
)

// Settlement and ledger failures. Callers match them with errors.Is.
var (
	ErrUnknownPayment        = errors.New("unknown payment")
	ErrConflictingSettlement = errors.New("conflicting settlement")
	ErrAmountMismatch        = fmt.Errorf("%w: amount or currency mismatch", ErrConflictingSettlement)
	ErrStaleState            = errors.New("stale state")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrSignatureInvalid      = errors.New("signature invalid")
	ErrProviderUnavailable   = errors.New("payment provider unavailable")
	ErrProviderRejected      = errors.New("payment provider rejected request")
	ErrDuplicate             = errors.New("duplicate")
	ErrNotFound              = errors.New("not found")
	ErrSelfReferral          = errors.New("user cannot refer themselves")
	ErrInvalidAmount         = errors.New("invalid amount")
)

type ResponseCodeError struct {
	err  error
	msg  string
	code int
}

func New(err error, msg string) error {
	return ResponseCodeError{err: err, msg: msg, code: 500}
}
func NewWithCode(err error, msg string, code int) error {
	return ResponseCodeError{err: err, msg: msg, code: code}
}
func (rce ResponseCodeError) Error() string {
	return rce.err.Error()
}
func (rce ResponseCodeError) Msg() string {
	return rce.msg
}
func (rce ResponseCodeError) Code() int {
	return rce.code
}
func (rce ResponseCodeError) Unwrap() error {
	return rce.err
}
