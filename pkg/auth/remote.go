package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/clients"
)

// RemoteVerifier asks the identity provider who a bearer belongs to.
type RemoteVerifier struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

type remoteUser struct {
	ID string `json:"id"`
}

func NewRemoteVerifier(url, apiKey string, client clients.HTTPClientI) *RemoteVerifier {
	return &RemoteVerifier{
		url:    url,
		apiKey: apiKey,
		client: client,
	}
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("Accept", "application/json")
	if v.apiKey != "" {
		headers.Set("apikey", v.apiKey)
	}

	status, body, _, err := v.client.Get(ctx, v.url, headers)
	if err != nil {
		return "", domain.NewUpstreamError("identity", 0, "identity provider unreachable")
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "", ErrInvalidCredential
	case status != http.StatusOK:
		return "", domain.NewUpstreamError("identity", status, "unexpected response from identity provider")
	}

	var user remoteUser
	if err := json.Unmarshal(body, &user); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if user.ID == "" {
		return "", ErrInvalidCredential
	}
	return user.ID, nil
}
