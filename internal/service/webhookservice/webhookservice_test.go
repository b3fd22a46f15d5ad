package webhookservice

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adhub/internal/config"
	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/pkg/workerpool"
)

const (
	callbackURL = "https://api.adhub.test/api/webhooks/whatsapp"
	object      = "whatsapp_business_account"
	appSecret   = "app-secret"
)

func NewMock(t *testing.T) (*Service, *MockSubscriber) {
	ctrl := gomock.NewController(t)
	api := NewMockSubscriber(ctrl)
	cfg := config.Webhook{VerifyToken: "verify-me", Object: object, Fields: []string{"messages"}}
	return New(api, nil, cfg, callbackURL, appSecret), api
}

func ours() domain.Subscription {
	return domain.Subscription{Object: object, CallbackURL: callbackURL, Active: true, Fields: []string{"messages"}}
}

func TestService_EnsureSubscribed(t *testing.T) {
	service, api := NewMock(t)
	ctx := context.Background()
	subscribe := func(err error) *gomock.Call {
		return api.EXPECT().Subscribe(gomock.Any(), object, callbackURL, "verify-me", []string{"messages"}).Return(err)
	}

	tests := []struct {
		name            string
		prepareMock     func()
		expectedSuccess bool
		expectedMessage string
		expectErr       bool
	}{
		{
			name: "Already active",
			prepareMock: func() {
				gomock.InOrder(
					api.EXPECT().Subscriptions(gomock.Any()).Return([]domain.Subscription{ours()}, nil),
					subscribe(nil),
					api.EXPECT().Subscriptions(gomock.Any()).Return([]domain.Subscription{ours()}, nil),
				)
			},
			expectedSuccess: true,
			expectedMessage: "already active",
		},
		{
			name: "Newly created",
			prepareMock: func() {
				gomock.InOrder(
					api.EXPECT().Subscriptions(gomock.Any()).Return([]domain.Subscription{}, nil),
					subscribe(nil),
					api.EXPECT().Subscriptions(gomock.Any()).Return([]domain.Subscription{ours()}, nil),
				)
			},
			expectedSuccess: true,
			expectedMessage: "created",
		},
		{
			name: "Subscribe failed",
			prepareMock: func() {
				gomock.InOrder(
					api.EXPECT().Subscriptions(gomock.Any()).Return(nil, nil),
					subscribe(domain.NewUpstreamError("meta", 400, "Invalid verify token")),
					api.EXPECT().Subscriptions(gomock.Any()).Return(nil, nil),
				)
			},
			expectedSuccess: false,
			expectedMessage: "Invalid verify token",
		},
		{
			name: "Callback points elsewhere",
			prepareMock: func() {
				other := ours()
				other.CallbackURL = "https://old.adhub.test/hook"
				gomock.InOrder(
					api.EXPECT().Subscriptions(gomock.Any()).Return([]domain.Subscription{other}, nil),
					subscribe(nil),
					api.EXPECT().Subscriptions(gomock.Any()).Return([]domain.Subscription{other}, nil),
				)
			},
			expectedSuccess: false,
			expectedMessage: "missing",
		},
		{
			name: "Read failure",
			prepareMock: func() {
				api.EXPECT().Subscriptions(gomock.Any()).Return(nil, domain.NewUpstreamError("meta", 500, "unavailable"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			report, err := service.EnsureSubscribed(ctx)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrUpstream)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSuccess, report.Success)
			assert.Contains(t, report.Message, tt.expectedMessage)
		})
	}
}

func TestService_VerifyChallenge(t *testing.T) {
	service, _ := NewMock(t)

	challenge, err := service.VerifyChallenge("subscribe", "verify-me", "12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", challenge)

	_, err = service.VerifyChallenge("subscribe", "wrong", "12345")
	assert.ErrorIs(t, err, ErrVerificationFailed)

	_, err = service.VerifyChallenge("unsubscribe", "verify-me", "12345")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestService_Receive(t *testing.T) {
	service, _ := NewMock(t)
	body := []byte(`{"object":"whatsapp_business_account","entry":[{"id":"1","changes":[{"field":"messages"}]}]}`)

	tests := []struct {
		name        string
		body        []byte
		signature   string
		expectedErr error
	}{
		{name: "Valid", body: body, signature: sign(body)},
		{name: "Missing signature", body: body, signature: "", expectedErr: ErrInvalidSignature},
		{name: "Wrong prefix", body: body, signature: "sha1=abc", expectedErr: ErrInvalidSignature},
		{name: "Not hex", body: body, signature: "sha256=zz", expectedErr: ErrInvalidSignature},
		{name: "Tampered body", body: []byte(`{"object":"page"}`), signature: sign(body), expectedErr: ErrInvalidSignature},
		{name: "Signed garbage", body: []byte("not json"), signature: sign([]byte("not json")), expectedErr: ErrMalformedEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Receive(context.Background(), tt.body, tt.signature)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_ReceiveDispatch(t *testing.T) {
	body := []byte(`{"object":"whatsapp_business_account","entry":[` +
		`{"id":"1","changes":[{"field":"messages","value":{"messages":[{"id":"wamid.1"}]}}]},` +
		`{"id":"2","changes":[{"field":"statuses"}]}]}`)

	tests := []struct {
		name        string
		prepareMock func(events *MockDispatcher, ran *int)
		expectedErr error
	}{
		{
			name: "Every change is queued",
			prepareMock: func(events *MockDispatcher, ran *int) {
				events.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, task workerpool.Task) error {
						*ran++
						return task()
					}).Times(2)
			},
		},
		{
			name: "Queue rejects the event",
			prepareMock: func(events *MockDispatcher, _ *int) {
				events.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(workerpool.ErrClosed)
			},
			expectedErr: workerpool.ErrClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			events := NewMockDispatcher(ctrl)
			var ran int
			tt.prepareMock(events, &ran)

			cfg := config.Webhook{VerifyToken: "verify-me", Object: object}
			service := New(NewMockSubscriber(ctrl), events, cfg, callbackURL, appSecret)

			err := service.Receive(context.Background(), body, sign(body))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, ran)
		})
	}
}

func TestService_ReceiveWithWorkerPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := workerpool.New(2)
	defer pool.Close()

	cfg := config.Webhook{VerifyToken: "verify-me", Object: object}
	service := New(NewMockSubscriber(ctrl), pool, cfg, callbackURL, appSecret)

	body := []byte(`{"object":"whatsapp_business_account","entry":[{"id":"1","changes":[{"field":"messages"}]}]}`)
	assert.NoError(t, service.Receive(context.Background(), body, sign(body)))
}
