package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/clients"
)

func newCheckoutAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "eur", r.PostForm.Get("line_items[0][price_data][currency]"))
		if r.PostForm.Get("line_items[0][price_data][unit_amount]") == "0" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Amount must be at least 50 cents","type":"invalid_request_error"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.test/pay/cs_test_1","status":"open",
			"payment_status":"unpaid","client_reference_id":"` + r.PostForm.Get("client_reference_id") + `",
			"amount_total":` + r.PostForm.Get("line_items[0][price_data][unit_amount]") + `,"currency":"eur"}`))
	})
	mux.HandleFunc("/v1/checkout/sessions/cs_paid", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"cs_paid","status":"complete","payment_status":"paid",
			"client_reference_id":"user-1","amount_total":2550,"currency":"eur"}`))
	})
	mux.HandleFunc("/v1/checkout/sessions/cs_broken", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"cs_broken","status":"complete"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_CreateSession(t *testing.T) {
	client := New(newCheckoutAPI(t).URL+"/v1", "sk_test", "eur", clients.NewHTTPClient())

	s, err := client.CreateSession(context.Background(), SessionRequest{
		UserID:      "user-1",
		AmountCents: 2550,
		SuccessURL:  "https://app.adhub.test/wallet?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   "https://app.adhub.test/wallet",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", s.ID)
	assert.Equal(t, "https://checkout.test/pay/cs_test_1", s.URL)
	assert.Equal(t, int64(2550), s.AmountTotal)
	assert.Equal(t, "user-1", s.ClientReferenceID)

	_, err = client.CreateSession(context.Background(), SessionRequest{UserID: "user-1"})
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Amount must be at least 50 cents", upstream.Message)
}

func TestClient_Session(t *testing.T) {
	client := New(newCheckoutAPI(t).URL+"/v1", "sk_test", "eur", clients.NewHTTPClient())

	s, err := client.Session(context.Background(), "cs_paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", s.PaymentStatus)
	assert.Equal(t, int64(2550), s.AmountTotal)

	_, err = client.Session(context.Background(), "cs_broken")
	assert.ErrorIs(t, err, domain.ErrUpstream)

	_, err = client.Session(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
