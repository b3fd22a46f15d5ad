package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/GlebRadaev/adhub/internal/config"
	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/clients"
)

const Name = domain.ProviderGoogle

type Client struct {
	cfg    config.Google
	oauth  *oauth2.Config
	http   clients.HTTPClientI
	oauthc *http.Client
}

func New(cfg config.Google, callbackURL string, client *clients.HTTPClient) *Client {
	endpoint := google.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	return &Client{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			RedirectURL:  callbackURL,
			Scopes:       cfg.Scopes,
		},
		http:   client,
		oauthc: client.Standard(),
	}
}

func (c *Client) Name() string {
	return Name
}

// AuthCodeURL asks for offline access so the grant survives the session.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (c *Client) Exchange(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.oauthc)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieve *oauth2.RetrieveError
		if errors.As(err, &retrieve) && retrieve.Response != nil {
			msg := retrieve.ErrorDescription
			if msg == "" {
				msg = retrieve.ErrorCode
			}
			if msg == "" {
				msg = "token exchange failed"
			}
			return "", domain.NewUpstreamError(Name, retrieve.Response.StatusCode, msg)
		}
		zap.L().Warn("google token exchange failed", zap.Error(clients.Redact(err)))
		return "", domain.NewUpstreamError(Name, 0, "token exchange failed")
	}
	return token.AccessToken, nil
}

type accessibleCustomers struct {
	ResourceNames *[]string `json:"resourceNames"`
}

// Discover lists the Ads customer accounts the grant can reach.
func (c *Client) Discover(ctx context.Context, token string) ([]domain.Resource, error) {
	var resp accessibleCustomers
	if err := c.call(ctx, http.MethodGet, "/customers:listAccessibleCustomers", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.ResourceNames == nil {
		return []domain.Resource{}, nil
	}

	resources := make([]domain.Resource, 0, len(*resp.ResourceNames))
	for _, name := range *resp.ResourceNames {
		id := strings.TrimPrefix(name, "customers/")
		if id == "" || id == name {
			return nil, domain.NewUpstreamError(Name, http.StatusOK, "unexpected customer resource name")
		}
		resources = append(resources, domain.Resource{ID: id, Name: "Google Ads " + formatCustomerID(id)})
	}
	return resources, nil
}

// formatCustomerID renders 1234567890 as 123-456-7890.
func formatCustomerID(id string) string {
	if len(id) != 10 {
		return id
	}
	return id[:3] + "-" + id[3:6] + "-" + id[6:]
}

type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func apiError(status int, body []byte) error {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return domain.NewUpstreamError(Name, status, parsed.Error.Message)
	}
	// searchStream wraps errors in an array
	var batch []apiErrorBody
	if err := json.Unmarshal(body, &batch); err == nil && len(batch) > 0 && batch[0].Error.Message != "" {
		return domain.NewUpstreamError(Name, status, batch[0].Error.Message)
	}
	return domain.NewUpstreamError(Name, status, http.StatusText(status))
}

func (c *Client) call(ctx context.Context, method, path, token string, payload any, out any) error {
	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("developer-token", c.cfg.DeveloperToken)
	if c.cfg.LoginCustomerID != "" {
		headers.Set("login-customer-id", c.cfg.LoginCustomerID)
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
		headers.Set("Content-Type", "application/json")
	}

	status, respBody, _, err := c.http.Send(ctx, method, strings.TrimRight(c.cfg.AdsURL, "/")+path, headers, body)
	if err != nil {
		zap.L().Warn("google ads request failed", zap.String("path", path), zap.Error(clients.Redact(err)))
		return domain.NewUpstreamError(Name, 0, "google ads api unreachable")
	}
	if status != http.StatusOK {
		return apiError(status, respBody)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return domain.NewUpstreamError(Name, status, "unexpected response for "+path)
	}
	return nil
}
