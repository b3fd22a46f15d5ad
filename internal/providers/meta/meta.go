package meta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	"github.com/GlebRadaev/adhub/internal/config"
	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/clients"
)

const Name = domain.ProviderMeta

// Client talks to the Graph API on behalf of one app registration.
type Client struct {
	cfg    config.Meta
	oauth  *oauth2.Config
	http   clients.HTTPClientI
	oauthc *http.Client
}

func New(cfg config.Meta, callbackURL string, client *clients.HTTPClient) *Client {
	endpoint := facebook.Endpoint
	if cfg.DialogURL != "" {
		endpoint.AuthURL = cfg.DialogURL
	}
	endpoint.TokenURL = strings.TrimRight(cfg.GraphURL, "/") + "/oauth/access_token"
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &Client{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.AppID,
			ClientSecret: cfg.AppSecret,
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

func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

func (c *Client) Exchange(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.oauthc)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", exchangeError(err)
	}
	return token.AccessToken, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UpgradeToken trades a short-lived user token for a long-lived one.
func (c *Client) UpgradeToken(ctx context.Context, token string) (string, error) {
	query := url.Values{}
	query.Set("grant_type", "fb_exchange_token")
	query.Set("client_id", c.cfg.AppID)
	query.Set("client_secret", c.cfg.AppSecret)
	query.Set("fb_exchange_token", token)

	var resp tokenResponse
	if err := c.get(ctx, "/oauth/access_token", query, "", &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", domain.NewUpstreamError(Name, http.StatusOK, "long-lived token missing in response")
	}
	return resp.AccessToken, nil
}

type adAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
}

type adAccountsResponse struct {
	Data *[]adAccount `json:"data"`
}

// Discover lists the ad accounts the token can read.
func (c *Client) Discover(ctx context.Context, token string) ([]domain.Resource, error) {
	query := url.Values{}
	query.Set("fields", "id,name,account_status")
	query.Set("limit", "100")

	var resp adAccountsResponse
	if err := c.get(ctx, "/me/adaccounts", query, token, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, domain.NewUpstreamError(Name, http.StatusOK, "ad accounts missing in response")
	}

	resources := make([]domain.Resource, 0, len(*resp.Data))
	for _, account := range *resp.Data {
		if account.ID == "" {
			return nil, domain.NewUpstreamError(Name, http.StatusOK, "ad account without id")
		}
		name := account.Name
		if name == "" {
			name = account.ID
		}
		resources = append(resources, domain.Resource{ID: account.ID, Name: name})
	}
	return resources, nil
}

func (c *Client) appToken() string {
	return c.cfg.AppID + "|" + c.cfg.AppSecret
}

type graphErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func graphError(status int, body []byte) error {
	var parsed graphErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Error.Message == "" {
		return domain.NewUpstreamError(Name, status, http.StatusText(status))
	}
	return domain.NewUpstreamError(Name, status, parsed.Error.Message)
}

func exchangeError(err error) error {
	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) && retrieve.Response != nil {
		return graphError(retrieve.Response.StatusCode, retrieve.Body)
	}
	zap.L().Warn("meta token exchange failed", zap.Error(err))
	return domain.NewUpstreamError(Name, 0, "token exchange failed")
}

func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, query, token, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body io.Reader, out any) error {
	target := strings.TrimRight(c.cfg.GraphURL, "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		headers.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	status, respBody, _, err := c.http.Send(ctx, method, target, headers, body)
	if err != nil {
		zap.L().Warn("graph api request failed", zap.String("path", path), zap.Error(clients.Redact(err)))
		return domain.NewUpstreamError(Name, 0, "graph api unreachable")
	}
	if status != http.StatusOK {
		return graphError(status, respBody)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return domain.NewUpstreamError(Name, status, fmt.Sprintf("unexpected response for %s", path))
	}
	return nil
}
