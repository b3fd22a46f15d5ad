package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	Balance float64 `json:"balance" example:"42.5"`
}

type LedgerEntryResponseDTO struct {
	ID          int64     `json:"id" example:"17"`
	Amount      float64   `json:"amount" example:"-27"`
	Kind        string    `json:"kind" example:"domain_purchase"`
	Description string    `json:"description" example:"Domain registration: example.com"`
	ReferenceID string    `json:"reference_id" example:"example.com"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type TopUpRequestDTO struct {
	Amount       decimal.Decimal `json:"amount" swaggertype:"number" example:"25"`
	ReturnOrigin string          `json:"return_origin" example:"https://app.adhub.app"`
}

type TopUpResponseDTO struct {
	SessionID   string `json:"session_id" example:"cs_test_a1b2c3"`
	CheckoutURL string `json:"checkout_url" example:"https://checkout.stripe.com/c/pay/cs_test_a1b2c3"`
}

type TopUpConfirmRequestDTO struct {
	SessionID string `json:"session_id" example:"cs_test_a1b2c3"`
}

type TopUpConfirmResponseDTO struct {
	Balance  float64 `json:"balance" example:"67.5"`
	Credited bool    `json:"credited" example:"true"`
}

type InsufficientFundsResponseDTO struct {
	Error    string  `json:"error" example:"Insufficient funds"`
	Balance  float64 `json:"balance" example:"10"`
	Required float64 `json:"required" example:"27"`
}
