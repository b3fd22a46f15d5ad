package registrar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/clients"
)

const Name = "registrar"

type Result struct {
	Reference   string
	Nameservers []string
}

// Client is the HTTP registrar backend.
type Client struct {
	baseURL string
	apiKey  string
	http    clients.HTTPClientI
}

func New(baseURL, apiKey string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    client,
	}
}

type availabilityResponse struct {
	Domain    string `json:"domain"`
	Available *bool  `json:"available"`
}

func (c *Client) Available(ctx context.Context, name string) (bool, error) {
	var resp availabilityResponse
	if err := c.call(ctx, http.MethodGet, "/domains/"+url.PathEscape(name)+"/availability", nil, &resp); err != nil {
		return false, err
	}
	if resp.Available == nil {
		return false, domain.NewUpstreamError(Name, http.StatusOK, "availability missing in response")
	}
	return *resp.Available, nil
}

type registerRequest struct {
	Domain      string   `json:"domain"`
	Years       int      `json:"years"`
	Nameservers []string `json:"nameservers"`
}

type registerResponse struct {
	Reference   string   `json:"reference"`
	Domain      string   `json:"domain"`
	Nameservers []string `json:"nameservers"`
}

func (c *Client) Register(ctx context.Context, name string, years int, nameservers []string) (*Result, error) {
	var resp registerResponse
	req := registerRequest{Domain: name, Years: years, Nameservers: nameservers}
	if err := c.call(ctx, http.MethodPost, "/domains", req, &resp); err != nil {
		return nil, err
	}
	if resp.Reference == "" {
		return nil, domain.NewUpstreamError(Name, http.StatusOK, "registration reference missing in response")
	}
	if len(resp.Nameservers) == 0 {
		resp.Nameservers = nameservers
	}
	return &Result{Reference: resp.Reference, Nameservers: resp.Nameservers}, nil
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) call(ctx context.Context, method, path string, payload, out any) error {
	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("Authorization", "Bearer "+c.apiKey)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
		headers.Set("Content-Type", "application/json")
	}

	status, respBody, _, err := c.http.Send(ctx, method, c.baseURL+path, headers, body)
	if err != nil {
		zap.L().Warn("registrar request failed", zap.String("path", path), zap.Error(clients.Redact(err)))
		return domain.NewUpstreamError(Name, 0, "registrar unreachable")
	}
	if status < 200 || status > 299 {
		var parsed errorResponse
		_ = json.Unmarshal(respBody, &parsed)
		msg := parsed.Message
		if msg == "" {
			msg = parsed.Error
		}
		if msg == "" {
			msg = http.StatusText(status)
		}
		return domain.NewUpstreamError(Name, status, msg)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return domain.NewUpstreamError(Name, status, "unexpected response for "+path)
	}
	return nil
}
