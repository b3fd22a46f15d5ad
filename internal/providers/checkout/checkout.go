package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/clients"
)

const Name = "checkout"

// Client creates and reads hosted payment sessions on a Stripe-compatible API.
type Client struct {
	baseURL   string
	secretKey string
	currency  string
	http      clients.HTTPClientI
}

func New(baseURL, secretKey, currency string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		currency:  currency,
		http:      client,
	}
}

type SessionRequest struct {
	UserID      string
	AmountCents int64
	SuccessURL  string
	CancelURL   string
}

type session struct {
	ID                string `json:"id"`
	URL               string `json:"url"`
	Status            string `json:"status"`
	PaymentStatus     string `json:"payment_status"`
	ClientReferenceID string `json:"client_reference_id"`
	AmountTotal       *int64 `json:"amount_total"`
	Currency          string `json:"currency"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (*domain.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("client_reference_id", req.UserID)
	form.Set("metadata[user_id]", req.UserID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", c.currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", "Wallet top-up")

	s, err := c.call(ctx, http.MethodPost, "/checkout/sessions", form)
	if err != nil {
		return nil, err
	}
	if s.URL == "" {
		return nil, domain.NewUpstreamError(Name, http.StatusOK, "checkout url missing in response")
	}
	return s, nil
}

func (c *Client) Session(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	return c.call(ctx, http.MethodGet, "/checkout/sessions/"+url.PathEscape(id), nil)
}

func (c *Client) call(ctx context.Context, method, path string, form url.Values) (*domain.CheckoutSession, error) {
	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("Authorization", "Bearer "+c.secretKey)

	var status int
	var body []byte
	var err error
	if form != nil {
		headers.Set("Content-Type", "application/x-www-form-urlencoded")
		status, body, _, err = c.http.Send(ctx, method, c.baseURL+path, headers, strings.NewReader(form.Encode()))
	} else {
		status, body, _, err = c.http.Send(ctx, method, c.baseURL+path, headers, nil)
	}
	if err != nil {
		zap.L().Warn("checkout request failed", zap.String("path", path), zap.Error(clients.Redact(err)))
		return nil, domain.NewUpstreamError(Name, 0, "payment provider unreachable")
	}
	if status != http.StatusOK {
		var parsed errorResponse
		if json.Unmarshal(body, &parsed) == nil && parsed.Error.Message != "" {
			return nil, domain.NewUpstreamError(Name, status, parsed.Error.Message)
		}
		return nil, domain.NewUpstreamError(Name, status, http.StatusText(status))
	}

	var s session
	if err := json.Unmarshal(body, &s); err != nil || s.ID == "" || s.AmountTotal == nil {
		return nil, domain.NewUpstreamError(Name, status, "unexpected checkout session shape")
	}
	return &domain.CheckoutSession{
		ID:                s.ID,
		URL:               s.URL,
		Status:            s.Status,
		PaymentStatus:     s.PaymentStatus,
		ClientReferenceID: s.ClientReferenceID,
		AmountTotal:       *s.AmountTotal,
		Currency:          s.Currency,
	}, nil
}
