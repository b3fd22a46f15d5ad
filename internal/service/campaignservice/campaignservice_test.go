package campaignservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adhub/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPlatform, *MockPlatform) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	meta := NewMockPlatform(ctrl)
	google := NewMockPlatform(ctrl)
	meta.EXPECT().Platform().Return(domain.ProviderMeta).AnyTimes()
	google.EXPECT().Platform().Return(domain.ProviderGoogle).AnyTimes()
	return New(repo, meta, google), repo, meta, google
}

func connected(resourceID string) *domain.Connection {
	return &domain.Connection{AccessToken: "token-" + resourceID, ResourceID: &resourceID, IsActive: true}
}

func snapshot(id string, impressions, clicks int64, spend string) domain.CampaignSnapshot {
	return domain.CampaignSnapshot{
		ID:          id,
		Impressions: impressions,
		Clicks:      clicks,
		Spend:       decimal.RequireFromString(spend),
	}
}

func TestService_List(t *testing.T) {
	service, repo, meta, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		platform      string
		prepareMock   func()
		expectedOK    bool
		expectedError string
		expectedCount int
	}{
		{
			name:          "Unknown platform",
			platform:      "tiktok",
			prepareMock:   func() {},
			expectedError: ErrUnknownPlatform.Error(),
		},
		{
			name:     "Not connected",
			platform: domain.ProviderMeta,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderMeta).Return(nil, nil)
			},
			expectedError: domain.ErrNotConnected.Error(),
		},
		{
			name:     "Inactive",
			platform: domain.ProviderMeta,
			prepareMock: func() {
				c := connected("act_1")
				c.IsActive = false
				repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderMeta).Return(c, nil)
			},
			expectedError: domain.ErrNotConnected.Error(),
		},
		{
			name:     "Pending selection",
			platform: domain.ProviderMeta,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderMeta).Return(&domain.Connection{IsActive: true}, nil)
			},
			expectedError: domain.ErrPendingSelection.Error(),
		},
		{
			name:     "Storage failure",
			platform: domain.ProviderMeta,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderMeta).Return(nil, errors.New("db error"))
			},
			expectedError: msgStorage,
		},
		{
			name:     "Provider failure",
			platform: domain.ProviderMeta,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderMeta).Return(connected("act_1"), nil)
				meta.EXPECT().Campaigns(gomock.Any(), "token-act_1", "act_1").Return(nil, domain.NewUpstreamError("meta", 400, "Session has expired"))
			},
			expectedError: "meta: status 400: Session has expired",
		},
		{
			name:     "Campaigns",
			platform: domain.ProviderMeta,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderMeta).Return(connected("act_1"), nil)
				meta.EXPECT().Campaigns(gomock.Any(), "token-act_1", "act_1").Return([]domain.CampaignSnapshot{
					snapshot("1", 1000, 50, "25.00"),
					snapshot("2", 0, 0, "0"),
				}, nil)
			},
			expectedOK:    true,
			expectedCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result := service.List(ctx, "user-1", tt.platform)
			assert.Equal(t, tt.platform, result.Platform)
			assert.Equal(t, tt.expectedOK, result.Success)
			assert.Equal(t, tt.expectedError, result.Error)
			assert.NotNil(t, result.Campaigns)
			assert.Len(t, result.Campaigns, tt.expectedCount)
		})
	}
}

func TestService_ListRates(t *testing.T) {
	service, repo, meta, _ := NewMock(t)

	repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderMeta).Return(connected("act_1"), nil)
	meta.EXPECT().Campaigns(gomock.Any(), gomock.Any(), "act_1").Return([]domain.CampaignSnapshot{
		snapshot("1", 1000, 50, "25.00"),
		snapshot("2", 0, 0, "0"),
	}, nil)

	result := service.List(context.Background(), "user-1", domain.ProviderMeta)
	require.Len(t, result.Campaigns, 2)
	assert.Equal(t, "5.00", result.Campaigns[0].CTR.StringFixed(2))
	assert.Equal(t, "0.50", result.Campaigns[0].CostPerResult.StringFixed(2))
	assert.True(t, result.Campaigns[1].CTR.IsZero())
	assert.True(t, result.Campaigns[1].CostPerResult.IsZero())
}

func TestService_ListAll(t *testing.T) {
	t.Run("One platform fails", func(t *testing.T) {
		service, repo, meta, google := NewMock(t)

		repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderMeta).Return(connected("act_1"), nil)
		repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderGoogle).Return(connected("123"), nil)
		meta.EXPECT().Campaigns(gomock.Any(), gomock.Any(), "act_1").Return([]domain.CampaignSnapshot{
			snapshot("m1", 1000, 40, "20.00"),
		}, nil)
		google.EXPECT().Campaigns(gomock.Any(), gomock.Any(), "123").Return(nil, domain.NewUpstreamError("google", 401, "UNAUTHENTICATED"))

		overview := service.ListAll(context.Background(), "user-1")
		assert.True(t, overview.Success)
		require.Len(t, overview.Campaigns, 1)
		assert.Equal(t, "m1", overview.Campaigns[0].ID)
		assert.Contains(t, overview.Errors[domain.ProviderGoogle], "UNAUTHENTICATED")
		assert.NotContains(t, overview.Errors, domain.ProviderMeta)
		assert.Equal(t, int64(1000), overview.Summary.Impressions)
		assert.Equal(t, "4.00", overview.Summary.CTR.StringFixed(2))
		assert.Equal(t, "0.50", overview.Summary.CostPerResult.StringFixed(2))
	})

	t.Run("Summary across platforms", func(t *testing.T) {
		service, repo, meta, google := NewMock(t)

		repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderMeta).Return(connected("act_1"), nil)
		repo.EXPECT().Get(gomock.Any(), "user-1", domain.ProviderGoogle).Return(connected("123"), nil)
		meta.EXPECT().Campaigns(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.CampaignSnapshot{
			snapshot("m1", 1000, 10, "10.00"),
		}, nil)
		google.EXPECT().Campaigns(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.CampaignSnapshot{
			snapshot("g1", 3000, 30, "50.00"),
		}, nil)

		overview := service.ListAll(context.Background(), "user-1")
		assert.True(t, overview.Success)
		assert.Empty(t, overview.Errors)
		assert.Equal(t, []string{"m1", "g1"}, []string{overview.Campaigns[0].ID, overview.Campaigns[1].ID})
		assert.Equal(t, int64(4000), overview.Summary.Impressions)
		assert.Equal(t, int64(40), overview.Summary.Clicks)
		assert.Equal(t, "60.00", overview.Summary.Spend.StringFixed(2))
		assert.Equal(t, "1.00", overview.Summary.CTR.StringFixed(2))
		assert.Equal(t, "1.50", overview.Summary.CostPerResult.StringFixed(2))
	})

	t.Run("Nothing connected", func(t *testing.T) {
		service, repo, _, _ := NewMock(t)

		repo.EXPECT().Get(gomock.Any(), "user-1", gomock.Any()).Return(nil, nil).Times(2)

		overview := service.ListAll(context.Background(), "user-1")
		assert.False(t, overview.Success)
		assert.Empty(t, overview.Campaigns)
		assert.Len(t, overview.Errors, 2)
		assert.True(t, overview.Summary.Spend.IsZero())
	})
}
