package registrar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/clients"
)

func newRegistrarAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/domains/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer reg-key", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/domains/free.com/availability":
			_, _ = w.Write([]byte(`{"domain":"free.com","available":true}`))
		case "/domains/taken.com/availability":
			_, _ = w.Write([]byte(`{"domain":"taken.com","available":false}`))
		case "/domains/odd.com/availability":
			_, _ = w.Write([]byte(`{"domain":"odd.com"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	mux.HandleFunc("/domains", func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.Years)
		if req.Domain == "fail.com" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"domain_unavailable","message":"fail.com is not available"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"reference":"REG-77","domain":"` + req.Domain + `"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_Available(t *testing.T) {
	client := New(newRegistrarAPI(t).URL+"/", "reg-key", clients.NewHTTPClient())

	tests := []struct {
		name      string
		domain    string
		available bool
		expectErr bool
	}{
		{name: "Free", domain: "free.com", available: true},
		{name: "Taken", domain: "taken.com"},
		{name: "Missing flag", domain: "odd.com", expectErr: true},
		{name: "Unknown", domain: "nope.com", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, err := client.Available(context.Background(), tt.domain)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrUpstream)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.available, available)
		})
	}
}

func TestClient_Register(t *testing.T) {
	client := New(newRegistrarAPI(t).URL, "reg-key", clients.NewHTTPClient())
	nameservers := []string{"ns1.adhub.app", "ns2.adhub.app"}

	result, err := client.Register(context.Background(), "mysite.com", 1, nameservers)
	require.NoError(t, err)
	assert.Equal(t, "REG-77", result.Reference)
	assert.Equal(t, nameservers, result.Nameservers)

	_, err = client.Register(context.Background(), "fail.com", 1, nameservers)
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnprocessableEntity, upstream.Status)
	assert.Equal(t, "fail.com is not available", upstream.Message)
}

func TestSimulator(t *testing.T) {
	sim := NewSimulator([]string{"ns1.sim", "ns2.sim"})

	available, err := sim.Available(context.Background(), "anything.io")
	require.NoError(t, err)
	assert.True(t, available)

	result, err := sim.Register(context.Background(), "anything.io", 1, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Reference, "SIM-"))
	assert.Equal(t, []string{"ns1.sim", "ns2.sim"}, result.Nameservers)

	other, err := sim.Register(context.Background(), "anything.io", 1, []string{"ns.custom"})
	require.NoError(t, err)
	assert.NotEqual(t, result.Reference, other.Reference)
	assert.Equal(t, []string{"ns.custom"}, other.Nameservers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.Available(ctx, "anything.io")
	assert.ErrorIs(t, err, context.Canceled)
}
