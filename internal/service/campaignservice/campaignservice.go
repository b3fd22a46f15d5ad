package campaignservice

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/adhub/internal/domain"
)

//go:generate mockgen -source=campaignservice.go -destination=mock_deps.go -package=campaignservice

type Platform interface {
	Platform() string
	Campaigns(ctx context.Context, token, accountID string) ([]domain.CampaignSnapshot, error)
}

type Repo interface {
	Get(ctx context.Context, userID, provider string) (*domain.Connection, error)
}

var ErrUnknownPlatform = errors.New("unsupported platform")

const msgStorage = "failed to load connection"

// PlatformResult never carries a Go error: failures are reported inline so
// one platform cannot break the dashboard.
type PlatformResult struct {
	Platform  string
	Success   bool
	Error     string
	Campaigns []domain.CampaignSnapshot
}

type Overview struct {
	Success   bool
	Campaigns []domain.CampaignSnapshot
	Errors    map[string]string
	Summary   domain.CampaignSummary
}

type Service struct {
	repo      Repo
	platforms []Platform
}

func New(repo Repo, platforms ...Platform) *Service {
	return &Service{repo: repo, platforms: platforms}
}

func (s *Service) List(ctx context.Context, userID, platform string) PlatformResult {
	for _, p := range s.platforms {
		if p.Platform() == platform {
			return s.fetch(ctx, userID, p)
		}
	}
	return failed(platform, ErrUnknownPlatform.Error())
}

// ListAll reads every platform concurrently and merges what succeeded.
func (s *Service) ListAll(ctx context.Context, userID string) Overview {
	results := make([]PlatformResult, len(s.platforms))

	var g errgroup.Group
	for i, p := range s.platforms {
		g.Go(func() error {
			results[i] = s.fetch(ctx, userID, p)
			return nil
		})
	}
	_ = g.Wait()

	overview := Overview{
		Campaigns: []domain.CampaignSnapshot{},
		Errors:    make(map[string]string),
	}
	for _, r := range results {
		if !r.Success {
			overview.Errors[r.Platform] = r.Error
			continue
		}
		overview.Campaigns = append(overview.Campaigns, r.Campaigns...)
	}
	overview.Success = len(overview.Errors) < len(results)
	overview.Summary = domain.Summarize(overview.Campaigns)
	return overview
}

func (s *Service) fetch(ctx context.Context, userID string, p Platform) PlatformResult {
	name := p.Platform()

	conn, err := s.repo.Get(ctx, userID, name)
	if err != nil {
		zap.L().Error("failed to load connection", zap.String("platform", name), zap.Error(err))
		return failed(name, msgStorage)
	}
	if conn == nil || !conn.IsActive {
		return failed(name, domain.ErrNotConnected.Error())
	}
	if !conn.Usable() {
		return failed(name, domain.ErrPendingSelection.Error())
	}

	campaigns, err := p.Campaigns(ctx, conn.AccessToken, *conn.ResourceID)
	if err != nil {
		zap.L().Warn("failed to fetch campaigns", zap.String("platform", name), zap.Error(err))
		return failed(name, err.Error())
	}
	for i := range campaigns {
		campaigns[i] = campaigns[i].WithRates()
	}
	return PlatformResult{Platform: name, Success: true, Campaigns: campaigns}
}

func failed(platform, message string) PlatformResult {
	return PlatformResult{
		Platform:  platform,
		Error:     message,
		Campaigns: []domain.CampaignSnapshot{},
	}
}
