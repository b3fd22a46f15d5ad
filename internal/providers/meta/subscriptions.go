package meta

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/GlebRadaev/adhub/internal/domain"
)

type subscriptionField struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type subscription struct {
	Object      string              `json:"object"`
	CallbackURL string              `json:"callback_url"`
	Active      bool                `json:"active"`
	Fields      []subscriptionField `json:"fields"`
}

type subscriptionsResponse struct {
	Data *[]subscription `json:"data"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Subscriptions reads the app-level webhook subscriptions.
func (c *Client) Subscriptions(ctx context.Context) ([]domain.Subscription, error) {
	var resp subscriptionsResponse
	if err := c.get(ctx, "/"+url.PathEscape(c.cfg.AppID)+"/subscriptions", nil, c.appToken(), &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, domain.NewUpstreamError(Name, http.StatusOK, "subscriptions missing in response")
	}

	subs := make([]domain.Subscription, 0, len(*resp.Data))
	for _, s := range *resp.Data {
		fields := make([]string, 0, len(s.Fields))
		for _, f := range s.Fields {
			fields = append(fields, f.Name)
		}
		subs = append(subs, domain.Subscription{
			Object:      s.Object,
			CallbackURL: s.CallbackURL,
			Active:      s.Active,
			Fields:      fields,
		})
	}
	return subs, nil
}

// Subscribe registers the callback for object. The Graph API treats repeated
// calls as updates.
func (c *Client) Subscribe(ctx context.Context, object, callbackURL, verifyToken string, fields []string) error {
	form := url.Values{}
	form.Set("object", object)
	form.Set("callback_url", callbackURL)
	form.Set("verify_token", verifyToken)
	form.Set("fields", strings.Join(fields, ","))
	form.Set("include_values", "true")

	var resp successResponse
	path := "/" + url.PathEscape(c.cfg.AppID) + "/subscriptions"
	if err := c.do(ctx, http.MethodPost, path, nil, c.appToken(), strings.NewReader(form.Encode()), &resp); err != nil {
		return err
	}
	if !resp.Success {
		return domain.NewUpstreamError(Name, http.StatusOK, "subscription was not accepted")
	}
	return nil
}

// AppSecret signs webhook deliveries.
func (c *Client) AppSecret() string {
	return c.cfg.AppSecret
}
