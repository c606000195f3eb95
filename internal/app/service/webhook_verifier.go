package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
)

const signaturePrefix = "sha256="

type WebhookVerifier interface {
	Verify(payload []byte, signature string) error
}

// HMACVerifier checks a hex encoded HMAC-SHA256 of the raw request body.
type HMACVerifier struct {
	secret []byte
}

func NewWebhookVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (hv *HMACVerifier) Verify(payload []byte, signature string) error {
	if len(hv.secret) == 0 {
		return fmt.Errorf("webhook secret is not configured: %w", appErrors.ErrSignatureInvalid)
	}
	signature = strings.TrimPrefix(strings.TrimSpace(signature), signaturePrefix)
	if signature == "" {
		return fmt.Errorf("missing signature: %w", appErrors.ErrSignatureInvalid)
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("malformed signature: %w", appErrors.ErrSignatureInvalid)
	}
	if !hmac.Equal(got, hv.sum(payload)) {
		return appErrors.ErrSignatureInvalid
	}
	return nil
}

// Sign returns the signature Verify accepts for payload.
func (hv *HMACVerifier) Sign(payload []byte) string {
	return hex.EncodeToString(hv.sum(payload))
}

func (hv *HMACVerifier) sum(payload []byte) []byte {
	mac := hmac.New(sha256.New, hv.secret)
	mac.Write(payload)
	return mac.Sum(nil)
}
