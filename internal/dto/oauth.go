package dto

import (
	"time"

	"github.com/GlebRadaev/adhub/internal/domain"
)

type AuthURLResponseDTO struct {
	AuthURL string `json:"auth_url" example:"https://www.facebook.com/v19.0/dialog/oauth?client_id=123&state=..."`
}

type ConnectionResponseDTO struct {
	Provider     string    `json:"provider" example:"meta"`
	Status       string    `json:"status" example:"connected"`
	ResourceID   *string   `json:"resource_id" example:"act_123456789"`
	ResourceName string    `json:"resource_name" example:"Main ad account"`
	UpdatedAt    time.Time `json:"updated_at" example:"2024-05-01T10:00:00Z"`
}

type SetResourceRequestDTO struct {
	ResourceID   string `json:"resource_id" example:"act_123456789"`
	ResourceName string `json:"resource_name" example:"Main ad account"`
}

type ResourceResponseDTO struct {
	ID   string `json:"id" example:"act_123456789"`
	Name string `json:"name" example:"Main ad account"`
}

type SubscriptionResponseDTO struct {
	Success              bool                  `json:"success" example:"true"`
	Message              string                `json:"message" example:"Webhook subscription for whatsapp_business_account created"`
	CurrentSubscriptions []domain.Subscription `json:"current_subscriptions"`
}
