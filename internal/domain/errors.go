package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrUpstream         = errors.New("upstream provider error")
	ErrNotConnected     = errors.New("platform is not connected")
	ErrPendingSelection = errors.New("connection is waiting for an account to be selected")
	ErrAlreadyExists    = errors.New("already exists")
)

type InsufficientFundsError struct {
	Balance  decimal.Decimal
	Required decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, required %s", e.Balance.StringFixed(2), e.Required.StringFixed(2))
}

// UpstreamError carries what a third party said about a failed call. Message
// must never contain credentials.
type UpstreamError struct {
	Provider string
	Status   int
	Message  string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

func NewUpstreamError(provider string, status int, message string) *UpstreamError {
	return &UpstreamError{Provider: provider, Status: status, Message: message}
}
