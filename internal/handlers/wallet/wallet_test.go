package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/dto"
	"github.com/GlebRadaev/adhub/internal/service/ledgerservice"
	"github.com/GlebRadaev/adhub/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, "user-1")
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().Balance(userCtx(), "user-1").Return(decimal.RequireFromString("18.00"), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 18},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Balance(userCtx(), "user-1").Return(decimal.Zero, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/wallet/balance", nil).WithContext(userCtx())
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetEntriesHandler(t *testing.T) {
	handler, service := NewMock(t)
	created := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "Default limit",
			query: "",
			prepareMock: func() {
				service.EXPECT().Entries(userCtx(), "user-1", 0).Return([]domain.LedgerEntry{
					{ID: 2, Amount: decimal.RequireFromString("-27.00"), Kind: domain.EntryDomainPurchase, CreatedAt: created},
					{ID: 1, Amount: decimal.RequireFromString("30.00"), Kind: domain.EntryTopUp, CreatedAt: created},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "Explicit limit",
			query: "?limit=5",
			prepareMock: func() {
				service.EXPECT().Entries(userCtx(), "user-1", 5).Return([]domain.LedgerEntry{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "Invalid limit",
			query:        "?limit=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Storage failure",
			query: "",
			prepareMock: func() {
				service.EXPECT().Entries(userCtx(), "user-1", 0).Return(nil, errors.New("db"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/wallet/entries"+tt.query, nil).WithContext(userCtx())
			w := httptest.NewRecorder()
			handler.GetEntries(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.LedgerEntryResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, -27.0, body[0].Amount)
					assert.Equal(t, "domain_purchase", body[0].Kind)
				}
			}
		})
	}
}

func TestTopUpHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Session created",
			body: `{"amount":25.5,"return_origin":"https://app.adhub.test"}`,
			prepareMock: func() {
				service.EXPECT().CreateTopUp(userCtx(), "user-1", gomock.Any(), "https://app.adhub.test").
					DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal, _ string) (*ledgerservice.TopUpSession, error) {
						assert.Equal(t, "25.50", amount.StringFixed(2))
						return &ledgerservice.TopUpSession{SessionID: "cs_1", CheckoutURL: "https://checkout.test/cs_1"}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid body",
			body:         `{"amount":"abc"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().CreateTopUp(userCtx(), "user-1", gomock.Any(), "").Return(nil, ledgerservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Provider failure",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().CreateTopUp(userCtx(), "user-1", gomock.Any(), "").Return(nil, domain.NewUpstreamError("checkout", 500, "down"))
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/wallet/topup", strings.NewReader(tt.body)).WithContext(userCtx())
			w := httptest.NewRecorder()
			handler.TopUp(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.TopUpResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "cs_1", body.SessionID)
				assert.Equal(t, "https://checkout.test/cs_1", body.CheckoutURL)
			}
		})
	}
}

func TestConfirmTopUpHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Credited", expectedCode: http.StatusOK},
		{name: "Missing session", err: ledgerservice.ErrInvalidSession, expectedCode: http.StatusBadRequest},
		{name: "Unpaid", err: ledgerservice.ErrPaymentNotCompleted, expectedCode: http.StatusPaymentRequired},
		{name: "Foreign session", err: ledgerservice.ErrSessionMismatch, expectedCode: http.StatusForbidden},
		{name: "Storage", err: errors.New("db"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result *ledgerservice.TopUpResult
			if tt.err == nil {
				result = &ledgerservice.TopUpResult{Balance: decimal.RequireFromString("55.50"), Credited: true}
			}
			service.EXPECT().ConfirmTopUp(userCtx(), "user-1", "cs_1").Return(result, tt.err)

			r := httptest.NewRequest(http.MethodPost, "/api/wallet/topup/confirm", strings.NewReader(`{"session_id":"cs_1"}`)).WithContext(userCtx())
			w := httptest.NewRecorder()
			handler.ConfirmTopUp(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.TopUpConfirmResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, dto.TopUpConfirmResponseDTO{Balance: 55.5, Credited: true}, body)
			}
		})
	}
}
