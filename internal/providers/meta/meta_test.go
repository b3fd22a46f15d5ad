package meta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/adhub/internal/config"
	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/clients"
)

func newGraph(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "app-1", r.PostForm.Get("client_id"))
			assert.Equal(t, "https://api.adhub.test/api/oauth/meta/callback", r.PostForm.Get("redirect_uri"))
			if r.PostForm.Get("code") != "good-code" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"message":"Invalid verification code format.","code":100}}`))
				return
			}
			_, _ = w.Write([]byte(`{"access_token":"short-token","token_type":"bearer","expires_in":3600}`))
			return
		}
		assert.Equal(t, "fb_exchange_token", r.URL.Query().Get("grant_type"))
		if r.URL.Query().Get("fb_exchange_token") != "short-token" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Error validating access token","code":190}}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"long-token","token_type":"bearer"}`))
	})
	mux.HandleFunc("/me/adaccounts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer long-token":
			_, _ = w.Write([]byte(`{"data":[{"id":"act_1","name":"Main","account_status":1},{"id":"act_2","account_status":1}]}`))
		case "Bearer odd-token":
			_, _ = w.Write([]byte(`{"accounts":[]}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token.","code":190}}`))
		}
	})
	mux.HandleFunc("/act_1/campaigns", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("fields"), "insights.date_preset(last_30d)")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"c1","name":"Spring","status":"ACTIVE","effective_status":"ACTIVE","objective":"OUTCOME_TRAFFIC",
			 "daily_budget":"5000","insights":{"data":[{"impressions":"1000","clicks":"50","spend":"12.34"}]}},
			{"id":"c2","name":"Old","status":"PAUSED","effective_status":"CAMPAIGN_PAUSED","lifetime_budget":"120000"}
		]}`))
	})
	mux.HandleFunc("/app-1/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer app-1|app-secret", r.Header.Get("Authorization"))
		if r.Method == http.MethodPost {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "whatsapp_business_account", r.PostForm.Get("object"))
			assert.Equal(t, "messages,message_template_status_update", r.PostForm.Get("fields"))
			_, _ = w.Write([]byte(`{"success":true}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"object":"whatsapp_business_account","callback_url":"https://api.adhub.test/api/webhooks/whatsapp","active":true,"fields":[{"name":"messages","version":"v19.0"}]}]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newClient(graphURL string) *Client {
	return New(config.Meta{
		AppID:     "app-1",
		AppSecret: "app-secret",
		GraphURL:  graphURL,
		DialogURL: "https://www.facebook.test/dialog/oauth",
		Scopes:    []string{"ads_read", "business_management"},
	}, "https://api.adhub.test/api/oauth/meta/callback", clients.NewHTTPClient())
}

func TestClient_AuthCodeURL(t *testing.T) {
	client := newClient("https://graph.facebook.test")

	authURL, err := url.Parse(client.AuthCodeURL("signed-state"))
	require.NoError(t, err)

	query := authURL.Query()
	assert.Equal(t, "www.facebook.test", authURL.Host)
	assert.Equal(t, "app-1", query.Get("client_id"))
	assert.Equal(t, "https://api.adhub.test/api/oauth/meta/callback", query.Get("redirect_uri"))
	assert.Equal(t, "signed-state", query.Get("state"))
	assert.Equal(t, "ads_read business_management", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
}

func TestClient_ExchangeAndUpgrade(t *testing.T) {
	client := newClient(newGraph(t).URL)

	token, err := client.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "short-token", token)

	long, err := client.UpgradeToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "long-token", long)

	_, err = client.Exchange(context.Background(), "bad-code")
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadRequest, upstream.Status)
	assert.Equal(t, "Invalid verification code format.", upstream.Message)

	_, err = client.UpgradeToken(context.Background(), "unknown")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_Discover(t *testing.T) {
	client := newClient(newGraph(t).URL)

	tests := []struct {
		name      string
		token     string
		expected  []domain.Resource
		expectErr bool
	}{
		{
			name:  "Accounts found",
			token: "long-token",
			expected: []domain.Resource{
				{ID: "act_1", Name: "Main"},
				{ID: "act_2", Name: "act_2"},
			},
		},
		{name: "Rejected token", token: "expired", expectErr: true},
		{name: "Unexpected shape", token: "odd-token", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resources, err := client.Discover(context.Background(), tt.token)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrUpstream)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resources)
		})
	}
}

func TestClient_Campaigns(t *testing.T) {
	client := newClient(newGraph(t).URL)

	campaigns, err := client.Campaigns(context.Background(), "long-token", "act_1")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	spring := campaigns[0]
	assert.Equal(t, "c1", spring.ID)
	assert.Equal(t, domain.ProviderMeta, spring.Platform)
	assert.Equal(t, domain.CampaignActive, spring.Status)
	assert.Equal(t, "50.00", spring.Budget.StringFixed(2))
	assert.Equal(t, int64(1000), spring.Impressions)
	assert.Equal(t, int64(50), spring.Clicks)
	assert.Equal(t, "12.34", spring.Spend.StringFixed(2))
	assert.Equal(t, "5.00", spring.CTR.StringFixed(2))
	assert.Equal(t, "0.25", spring.CostPerResult.StringFixed(2))
	assert.Equal(t, "OUTCOME_TRAFFIC", spring.Extra["objective"])

	old := campaigns[1]
	assert.Equal(t, domain.CampaignPaused, old.Status)
	assert.Equal(t, "1200.00", old.Budget.StringFixed(2))
	assert.Equal(t, "lifetime", old.Extra["budget_type"])
	assert.True(t, old.Spend.IsZero())
}

func TestMapCampaign(t *testing.T) {
	tests := []struct {
		name      string
		raw       Campaign
		status    string
		expectErr bool
	}{
		{name: "Archived", raw: Campaign{ID: "1", Status: "ARCHIVED"}, status: domain.CampaignArchived},
		{name: "Deleted", raw: Campaign{ID: "1", EffectiveStatus: "DELETED"}, status: domain.CampaignArchived},
		{name: "In review", raw: Campaign{ID: "1", EffectiveStatus: "IN_PROCESS"}, status: domain.CampaignUnknown},
		{name: "Missing id", raw: Campaign{Status: "ACTIVE"}, expectErr: true},
		{name: "Bad budget", raw: Campaign{ID: "1", DailyBudget: "lots"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := MapCampaign(tt.raw)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrUpstream)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, snapshot.Status)
		})
	}
}

func TestClient_Subscriptions(t *testing.T) {
	client := newClient(newGraph(t).URL)

	subs, err := client.Subscriptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Subscription{{
		Object:      "whatsapp_business_account",
		CallbackURL: "https://api.adhub.test/api/webhooks/whatsapp",
		Active:      true,
		Fields:      []string{"messages"},
	}}, subs)

	err = client.Subscribe(context.Background(), "whatsapp_business_account",
		"https://api.adhub.test/api/webhooks/whatsapp", "verify", []string{"messages", "message_template_status_update"})
	assert.NoError(t, err)
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := newClient(server.URL)

	_, err := client.Discover(context.Background(), "long-token")
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 0, upstream.Status)
}
