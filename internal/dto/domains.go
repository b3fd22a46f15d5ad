package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type DomainSearchRequestDTO struct {
	Domain string `json:"domain" example:"mysite.pt"`
}

type DomainQuoteDTO struct {
	Domain     string  `json:"domain" example:"mysite.pt"`
	Available  bool    `json:"available" example:"true"`
	CostPrice  float64 `json:"cost_price" example:"15"`
	FinalPrice float64 `json:"final_price" example:"20"`
	TLD        string  `json:"tld" example:"pt"`
}

type DomainSearchResponseDTO struct {
	DomainQuoteDTO
	Suggestions []DomainQuoteDTO `json:"suggestions"`
}

type DomainRegisterRequestDTO struct {
	Domain     string          `json:"domain" example:"example.com"`
	FinalPrice decimal.Decimal `json:"finalPrice" swaggertype:"number" example:"27"`
	CostPrice  decimal.Decimal `json:"costPrice" swaggertype:"number" example:"22"`
}

type DomainRegisterResponseDTO struct {
	Success    bool    `json:"success" example:"true"`
	Domain     string  `json:"domain" example:"example.com"`
	NewBalance float64 `json:"newBalance" example:"18"`
	Cashback   float64 `json:"cashback" example:"15"`
}

type DomainRegistrationResponseDTO struct {
	ID                 int64     `json:"id" example:"1"`
	DomainName         string    `json:"domain_name" example:"example.com"`
	Status             string    `json:"status" example:"active"`
	PurchasePrice      float64   `json:"purchase_price" example:"27"`
	CostPrice          float64   `json:"cost_price" example:"22"`
	RegistrarReference string    `json:"registrar_reference" example:"SIM-3f1c..."`
	Nameservers        []string  `json:"nameservers"`
	ExpiryDate         time.Time `json:"expiry_date" example:"2025-05-01T10:00:00Z"`
	CreatedAt          time.Time `json:"created_at" example:"2024-05-01T10:00:00Z"`
}
