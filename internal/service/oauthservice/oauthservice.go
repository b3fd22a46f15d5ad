package oauthservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/auth"
	"github.com/GlebRadaev/adhub/pkg/utils"
)

//go:generate mockgen -source=oauthservice.go -destination=mock_deps.go -package=oauthservice

type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	Discover(ctx context.Context, token string) ([]domain.Resource, error)
}

// TokenUpgrader is implemented by providers that hand out short-lived tokens
// which can be traded for long-lived ones.
type TokenUpgrader interface {
	UpgradeToken(ctx context.Context, token string) (string, error)
}

type Repo interface {
	Upsert(ctx context.Context, conn *domain.Connection) error
	Get(ctx context.Context, userID, provider string) (*domain.Connection, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Connection, error)
	SetResource(ctx context.Context, userID, provider, resourceID, resourceName string) (bool, error)
	Deactivate(ctx context.Context, userID, provider string) (bool, error)
}

var (
	ErrUnknownProvider    = fmt.Errorf("%w: unknown provider", domain.ErrMalformedInput)
	ErrUnknownResource    = fmt.Errorf("%w: account is not available for this connection", domain.ErrMalformedInput)
	ErrConnectionNotFound = errors.New("connection not found")
)

const (
	msgInvalidState   = "invalid or expired state"
	msgMissingCode    = "missing authorization code"
	msgExchangeFailed = "failed to exchange authorization code"
	msgDiscoverFailed = "failed to load ad accounts"
	msgSaveFailed     = "failed to save connection"
	msgNoAccounts     = "no ad accounts found"
)

type CallbackParams struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

type Service struct {
	providers map[string]Provider
	repo      Repo
	states    *auth.StateCodec
	origins   *utils.OriginPolicy
}

func New(repo Repo, states *auth.StateCodec, origins *utils.OriginPolicy, providers ...Provider) *Service {
	registry := make(map[string]Provider, len(providers))
	for _, p := range providers {
		registry[p.Name()] = p
	}
	return &Service{
		providers: registry,
		repo:      repo,
		states:    states,
		origins:   origins,
	}
}

func (s *Service) provider(name string) (Provider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return p, nil
}

func (s *Service) IssueAuthURL(_ context.Context, userID, provider, returnOrigin string) (string, error) {
	p, err := s.provider(provider)
	if err != nil {
		return "", err
	}
	state, err := s.states.Encode(domain.OAuthState{
		UserID:       userID,
		ReturnOrigin: s.origins.Resolve(returnOrigin),
		Provider:     p.Name(),
	})
	if err != nil {
		zap.L().Error("failed to encode oauth state", zap.Error(err))
		return "", err
	}
	return p.AuthCodeURL(state), nil
}

// HandleCallback completes the authorization code flow and always yields the
// dashboard URL to redirect the browser to.
func (s *Service) HandleCallback(ctx context.Context, provider string, params CallbackParams) string {
	fallback := s.origins.Fallback()

	state, err := s.states.Decode(params.State)
	if err != nil {
		if params.Error != "" {
			return failure(fallback, providerMessage(params))
		}
		zap.L().Warn("rejected oauth callback", zap.String("provider", provider), zap.Error(err))
		return failure(fallback, msgInvalidState)
	}
	origin := s.origins.Resolve(state.ReturnOrigin)

	p, err := s.provider(provider)
	if err != nil || state.Provider != provider {
		return failure(origin, msgInvalidState)
	}
	if params.Error != "" {
		return failure(origin, providerMessage(params))
	}
	if params.Code == "" {
		return failure(origin, msgMissingCode)
	}

	token, err := p.Exchange(ctx, params.Code)
	if err != nil {
		zap.L().Error("token exchange failed", zap.String("provider", provider), zap.Error(err))
		return failure(origin, msgExchangeFailed)
	}

	if upgrader, ok := p.(TokenUpgrader); ok {
		long, err := upgrader.UpgradeToken(ctx, token)
		if err != nil {
			zap.L().Warn("keeping short-lived token", zap.String("provider", provider), zap.Error(err))
		} else {
			token = long
		}
	}

	resources, err := p.Discover(ctx, token)
	if err != nil {
		zap.L().Error("resource discovery failed", zap.String("provider", provider), zap.Error(err))
		return failure(origin, msgDiscoverFailed)
	}

	conn := &domain.Connection{
		UserID:      state.UserID,
		Provider:    provider,
		AccessToken: token,
		IsActive:    true,
	}
	if len(resources) == 1 {
		conn.ResourceID = &resources[0].ID
		conn.ResourceName = resources[0].Name
	}
	if err := s.repo.Upsert(ctx, conn); err != nil {
		zap.L().Error("failed to store connection", zap.String("provider", provider), zap.Error(err))
		return failure(origin, msgSaveFailed)
	}

	switch len(resources) {
	case 0:
		return failure(origin, msgNoAccounts)
	case 1:
		return redirect(origin, url.Values{
			"connected":    {"true"},
			"provider":     {provider},
			"account_name": {resources[0].Name},
		})
	default:
		accounts, err := json.Marshal(resources)
		if err != nil {
			return failure(origin, msgDiscoverFailed)
		}
		return redirect(origin, url.Values{
			"pick_account": {"true"},
			"provider":     {provider},
			"accounts":     {string(accounts)},
		})
	}
}

// SetResource completes a pending selection. The account must still be
// visible to the stored token; the provider's name for it wins over the
// submitted one.
func (s *Service) SetResource(ctx context.Context, userID, provider, resourceID, resourceName string) (*domain.Resource, error) {
	p, err := s.provider(provider)
	if err != nil {
		return nil, err
	}
	conn, err := s.repo.Get(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	if conn == nil || !conn.IsActive {
		return nil, ErrConnectionNotFound
	}

	resources, err := p.Discover(ctx, conn.AccessToken)
	if err != nil {
		return nil, err
	}
	var selected *domain.Resource
	for i := range resources {
		if resources[i].ID == resourceID {
			selected = &resources[i]
			break
		}
	}
	if selected == nil {
		return nil, ErrUnknownResource
	}
	if selected.Name == "" {
		selected.Name = resourceName
	}

	updated, err := s.repo.SetResource(ctx, userID, provider, selected.ID, selected.Name)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrConnectionNotFound
	}
	return selected, nil
}

func (s *Service) ListConnections(ctx context.Context, userID string) ([]domain.Connection, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Disconnect(ctx context.Context, userID, provider string) error {
	if _, err := s.provider(provider); err != nil {
		return err
	}
	ok, err := s.repo.Deactivate(ctx, userID, provider)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConnectionNotFound
	}
	return nil
}

func providerMessage(params CallbackParams) string {
	if params.ErrorDescription != "" {
		return params.ErrorDescription
	}
	return params.Error
}

func failure(origin, message string) string {
	return redirect(origin, url.Values{"error": {message}})
}

func redirect(origin string, query url.Values) string {
	return origin + "/settings?" + query.Encode()
}
