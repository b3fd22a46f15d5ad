package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProviderMeta   = "meta"
	ProviderGoogle = "google"
)

// OAuthState is what travels through the provider redirect and back.
type OAuthState struct {
	UserID       string
	ReturnOrigin string
	Provider     string
}

// Resource is a downstream account discovered after a token exchange.
type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const (
	ConnectionConnected        = "connected"
	ConnectionPendingSelection = "pending_selection"
	ConnectionInactive         = "inactive"
)

type Connection struct {
	UserID       string    `db:"user_id"`
	Provider     string    `db:"provider"`
	AccessToken  string    `db:"access_token"`
	ResourceID   *string   `db:"resource_id"`
	ResourceName string    `db:"resource_name"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Usable reports whether the aggregator may read through this connection.
func (c *Connection) Usable() bool {
	return c != nil && c.IsActive && c.ResourceID != nil && *c.ResourceID != ""
}

func (c *Connection) Status() string {
	switch {
	case !c.IsActive:
		return ConnectionInactive
	case c.ResourceID == nil || *c.ResourceID == "":
		return ConnectionPendingSelection
	default:
		return ConnectionConnected
	}
}

type EntryKind string

const (
	EntryTopUp          EntryKind = "topup"
	EntryDomainPurchase EntryKind = "domain_purchase"
	EntryCashback       EntryKind = "cashback"
	EntryRefund         EntryKind = "refund"
)

// LedgerEntry is immutable once appended. Amount is signed: debits are negative.
type LedgerEntry struct {
	ID          int64           `db:"id"`
	UserID      string          `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Kind        EntryKind       `db:"kind"`
	Description string          `db:"description"`
	ReferenceID string          `db:"reference_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

type DomainQuote struct {
	Domain     string
	TLD        string
	CostPrice  decimal.Decimal
	FinalPrice decimal.Decimal
	Available  bool
}

const RegistrationActive = "active"

type DomainRegistration struct {
	ID                 int64           `db:"id"`
	UserID             string          `db:"user_id"`
	DomainName         string          `db:"domain_name"`
	Status             string          `db:"status"`
	PurchasePrice      decimal.Decimal `db:"purchase_price"`
	CostPrice          decimal.Decimal `db:"cost_price"`
	RegistrarReference string          `db:"registrar_reference"`
	Nameservers        []string        `db:"nameservers"`
	ExpiryDate         time.Time       `db:"expiry_date"`
	CreatedAt          time.Time       `db:"created_at"`
}

const (
	CampaignActive   = "active"
	CampaignPaused   = "paused"
	CampaignArchived = "archived"
	CampaignUnknown  = "unknown"
)

// CampaignSnapshot is the platform-neutral campaign view. Extra keeps the
// platform-specific fields that have no common counterpart.
type CampaignSnapshot struct {
	ID            string
	Platform      string
	Name          string
	Status        string
	Budget        decimal.Decimal
	Impressions   int64
	Clicks        int64
	Spend         decimal.Decimal
	CTR           decimal.Decimal
	CostPerResult decimal.Decimal
	Extra         map[string]string
}

type CampaignSummary struct {
	Impressions   int64
	Clicks        int64
	Spend         decimal.Decimal
	CTR           decimal.Decimal
	CostPerResult decimal.Decimal
}

type Subscription struct {
	Object      string   `json:"object"`
	CallbackURL string   `json:"callback_url"`
	Active      bool     `json:"active"`
	Fields      []string `json:"fields"`
}

type SubscriptionReport struct {
	Success bool
	Message string
	Current []Subscription
}

type CheckoutSession struct {
	ID                string
	URL               string
	Status            string
	PaymentStatus     string
	ClientReferenceID string
	AmountTotal       int64
	Currency          string
}
