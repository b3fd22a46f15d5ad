package webhookservice

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/config"
	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/workerpool"
)

//go:generate mockgen -source=webhookservice.go -destination=mock_subscriber.go -package=webhookservice

type Subscriber interface {
	Subscriptions(ctx context.Context) ([]domain.Subscription, error)
	Subscribe(ctx context.Context, object, callbackURL, verifyToken string, fields []string) error
}

type Dispatcher interface {
	AddTask(ctx context.Context, task workerpool.Task) error
}

var (
	ErrVerificationFailed = errors.New("webhook verification failed")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrMalformedEvent     = fmt.Errorf("%w: webhook payload is not valid json", domain.ErrMalformedInput)
)

const signaturePrefix = "sha256="

type Service struct {
	api         Subscriber
	events      Dispatcher
	object      string
	callbackURL string
	verifyToken string
	fields      []string
	appSecret   []byte
}

func New(api Subscriber, events Dispatcher, cfg config.Webhook, callbackURL, appSecret string) *Service {
	return &Service{
		api:         api,
		events:      events,
		object:      cfg.Object,
		callbackURL: callbackURL,
		verifyToken: cfg.VerifyToken,
		fields:      cfg.Fields,
		appSecret:   []byte(appSecret),
	}
}

// EnsureSubscribed makes sure the app delivers events for the configured
// object to our callback and reports what the provider has after the attempt.
func (s *Service) EnsureSubscribed(ctx context.Context) (*domain.SubscriptionReport, error) {
	before, err := s.api.Subscriptions(ctx)
	if err != nil {
		zap.L().Error("failed to read webhook subscriptions", zap.Error(err))
		return nil, err
	}
	existed := s.subscribed(before)

	subscribeErr := s.api.Subscribe(ctx, s.object, s.callbackURL, s.verifyToken, s.fields)
	if subscribeErr != nil {
		zap.L().Warn("webhook subscribe call failed", zap.String("object", s.object), zap.Error(subscribeErr))
	}

	after, err := s.api.Subscriptions(ctx)
	if err != nil {
		zap.L().Error("failed to re-read webhook subscriptions", zap.Error(err))
		return nil, err
	}

	report := &domain.SubscriptionReport{
		Success: s.subscribed(after),
		Current: after,
	}
	switch {
	case report.Success && existed:
		report.Message = "Webhook subscription for " + s.object + " was already active"
	case report.Success:
		report.Message = "Webhook subscription for " + s.object + " created"
	case subscribeErr != nil:
		report.Message = "Webhook subscription for " + s.object + " is missing: " + subscribeErr.Error()
	default:
		report.Message = "Webhook subscription for " + s.object + " is missing after subscribe"
	}
	return report, nil
}

func (s *Service) subscribed(subs []domain.Subscription) bool {
	for _, sub := range subs {
		if sub.Active && sub.Object == s.object && sub.CallbackURL == s.callbackURL {
			return true
		}
	}
	return false
}

// VerifyChallenge answers the provider's verification handshake.
func (s *Service) VerifyChallenge(mode, token, challenge string) (string, error) {
	if mode != "subscribe" || s.verifyToken == "" {
		return "", ErrVerificationFailed
	}
	if !hmac.Equal([]byte(token), []byte(s.verifyToken)) {
		return "", ErrVerificationFailed
	}
	return challenge, nil
}

// VerifySignature checks X-Hub-Signature-256 against the raw body.
func (s *Service) VerifySignature(body []byte, header string) error {
	if len(s.appSecret) == 0 || !strings.HasPrefix(header, signaturePrefix) {
		return ErrInvalidSignature
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, s.appSecret)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}

type change struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

type event struct {
	Object string `json:"object"`
	Entry  []struct {
		ID      string   `json:"id"`
		Changes []change `json:"changes"`
	} `json:"entry"`
}

// Receive accepts a signed delivery and hands every change to the event
// workers, so the provider gets its acknowledgement without waiting.
func (s *Service) Receive(ctx context.Context, body []byte, signature string) error {
	if err := s.VerifySignature(body, signature); err != nil {
		zap.L().Warn("rejected webhook delivery", zap.Error(err))
		return err
	}
	var e event
	if err := json.Unmarshal(body, &e); err != nil {
		return ErrMalformedEvent
	}
	for _, entry := range e.Entry {
		for _, c := range entry.Changes {
			task := handleChange(e.Object, entry.ID, c)
			if s.events == nil {
				task()
				continue
			}
			if err := s.events.AddTask(ctx, task); err != nil {
				zap.L().Error("failed to queue webhook event", zap.String("entry_id", entry.ID), zap.Error(err))
				return err
			}
		}
	}
	return nil
}

func handleChange(object, entryID string, c change) workerpool.Task {
	return func() error {
		zap.L().Info("webhook event received",
			zap.String("object", object),
			zap.String("entry_id", entryID),
			zap.String("field", c.Field),
			zap.Int("value_size", len(c.Value)),
		)
		return nil
	}
}
