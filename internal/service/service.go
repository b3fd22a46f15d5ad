package service

import (
	"fmt"

	"github.com/GlebRadaev/adhub/internal/config"
	"github.com/GlebRadaev/adhub/internal/handlers/campaigns"
	"github.com/GlebRadaev/adhub/internal/handlers/domains"
	"github.com/GlebRadaev/adhub/internal/handlers/oauth"
	"github.com/GlebRadaev/adhub/internal/handlers/wallet"
	"github.com/GlebRadaev/adhub/internal/handlers/webhook"
	"github.com/GlebRadaev/adhub/internal/pg"
	"github.com/GlebRadaev/adhub/internal/providers/googleads"
	"github.com/GlebRadaev/adhub/internal/providers/meta"
	"github.com/GlebRadaev/adhub/internal/repo"
	"github.com/GlebRadaev/adhub/internal/service/campaignservice"
	"github.com/GlebRadaev/adhub/internal/service/domainservice"
	"github.com/GlebRadaev/adhub/internal/service/ledgerservice"
	"github.com/GlebRadaev/adhub/internal/service/oauthservice"
	"github.com/GlebRadaev/adhub/internal/service/webhookservice"
	"github.com/GlebRadaev/adhub/pkg/auth"
	"github.com/GlebRadaev/adhub/pkg/utils"
)

// Providers are the outbound clients the services talk through.
type Providers struct {
	Meta      *meta.Client
	Google    *googleads.Client
	Registrar domainservice.Registrar
	Checkout  ledgerservice.Checkout
}

type Services struct {
	OAuthService    oauth.Service
	WebhookService  webhook.Service
	LedgerService   wallet.Service
	DomainService   domains.Service
	CampaignService campaigns.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, p Providers, events webhookservice.Dispatcher) (*Services, error) {
	prices, err := cfg.Domain.PriceTable()
	if err != nil {
		return nil, fmt.Errorf("can't build price table: %w", err)
	}

	origins := utils.NewOriginPolicy(cfg.FrontendURL, cfg.AllowedOrigins)
	states := auth.NewStateCodec(cfg.StateSecret, cfg.StateTTL)

	ledgerService := ledgerservice.New(repo.LedgerRepo, txManager, p.Checkout, origins)
	domainService := domainservice.New(ledgerService, p.Registrar, repo.RegistrationRepo, domainservice.Pricing{
		Margin:       cfg.Domain.Margin,
		Cashback:     cfg.Domain.Cashback,
		DefaultCost:  cfg.Domain.DefaultCost,
		Prices:       prices,
		PopularTLDs:  cfg.Domain.PopularTLDs,
		Nameservers:  cfg.Registrar.Nameservers,
		ProbeTimeout: cfg.Registrar.ProbeTimeout,
	})

	return &Services{
		OAuthService:    oauthservice.New(repo.ConnectionRepo, states, origins, p.Meta, p.Google),
		WebhookService:  webhookservice.New(p.Meta, events, cfg.Webhook, cfg.WebhookURL(), p.Meta.AppSecret()),
		LedgerService:   ledgerService,
		DomainService:   domainService,
		CampaignService: campaignservice.New(repo.ConnectionRepo, p.Meta, p.Google),
	}, nil
}
