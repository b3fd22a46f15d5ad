package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Header().Set("X-Request-Id", "42")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	status, body, headers, err := client.Get(context.Background(), srv.URL, http.Header{"Authorization": {"Bearer token"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, "42", headers.Get("X-Request-Id"))
}

func TestHTTPClient_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "a=1", string(payload))
		_, _ = w.Write([]byte("done"))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	status, body, _, err := client.Send(context.Background(), http.MethodPost, srv.URL, nil, strings.NewReader("a=1"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "done", string(body))
}

func TestHTTPClient_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := NewHTTPClient().Get(ctx, srv.URL, nil)
	assert.Error(t, err)
}

func TestHTTPClient_Standard(t *testing.T) {
	client := NewHTTPClient()
	assert.Equal(t, timeout, client.Standard().Timeout)
}

func TestRedact(t *testing.T) {
	inner := errors.New("connection refused")
	err := &url.Error{Op: "Get", URL: "https://graph.test/oauth?client_secret=s3cr3t", Err: inner}

	redacted := Redact(err)
	assert.NotContains(t, redacted.Error(), "s3cr3t")
	assert.ErrorIs(t, redacted, inner)

	plain := errors.New("plain")
	assert.Equal(t, plain, Redact(plain))
}
