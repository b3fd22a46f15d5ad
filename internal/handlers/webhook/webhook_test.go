package webhook

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/dto"
	"github.com/GlebRadaev/adhub/internal/service/webhookservice"
)

func NewMock(t *testing.T) (*WebhookHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestSubscribeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.SubscriptionResponseDTO
	}{
		{
			name: "Reported",
			prepareMock: func() {
				service.EXPECT().EnsureSubscribed(gomock.Any()).Return(&domain.SubscriptionReport{
					Success: false,
					Message: "missing",
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.SubscriptionResponseDTO{Message: "missing", CurrentSubscriptions: []domain.Subscription{}},
		},
		{
			name: "Provider failure",
			prepareMock: func() {
				service.EXPECT().EnsureSubscribed(gomock.Any()).Return(nil, domain.NewUpstreamError("meta", 500, "down"))
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "Unexpected failure",
			prepareMock: func() {
				service.EXPECT().EnsureSubscribed(gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/webhooks/whatsapp/subscribe", nil)
			w := httptest.NewRecorder()
			handler.Subscribe(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.SubscriptionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestVerifyHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().VerifyChallenge("subscribe", "verify-me", "1158201444").Return("1158201444", nil)
	r := httptest.NewRequest(http.MethodGet, "/api/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=1158201444", nil)
	w := httptest.NewRecorder()
	handler.Verify(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1158201444", w.Body.String())

	service.EXPECT().VerifyChallenge("subscribe", "wrong", "1").Return("", webhookservice.ErrVerificationFailed)
	r = httptest.NewRequest(http.MethodGet, "/api/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=1", nil)
	w = httptest.NewRecorder()
	handler.Verify(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReceiveHandler(t *testing.T) {
	handler, service := NewMock(t)
	payload := `{"object":"whatsapp_business_account","entry":[]}`

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Accepted", expectedCode: http.StatusOK},
		{name: "Bad signature", err: webhookservice.ErrInvalidSignature, expectedCode: http.StatusForbidden},
		{name: "Malformed", err: webhookservice.ErrMalformedEvent, expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().Receive(gomock.Any(), []byte(payload), "sha256=abc").Return(tt.err)
			r := httptest.NewRequest(http.MethodPost, "/api/webhooks/whatsapp", strings.NewReader(payload))
			r.Header.Set("X-Hub-Signature-256", "sha256=abc")
			w := httptest.NewRecorder()
			handler.Receive(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
