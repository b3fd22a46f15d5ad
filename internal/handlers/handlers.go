package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/adhub/docs"
	campaignhandlers "github.com/GlebRadaev/adhub/internal/handlers/campaigns"
	domainhandlers "github.com/GlebRadaev/adhub/internal/handlers/domains"
	oauthhandlers "github.com/GlebRadaev/adhub/internal/handlers/oauth"
	wallethandlers "github.com/GlebRadaev/adhub/internal/handlers/wallet"
	webhookhandlers "github.com/GlebRadaev/adhub/internal/handlers/webhook"
	"github.com/GlebRadaev/adhub/internal/service"
	"github.com/GlebRadaev/adhub/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type OAuthHandler interface {
	Authorize(w http.ResponseWriter, r *http.Request)
	Callback(w http.ResponseWriter, r *http.Request)
	ListConnections(w http.ResponseWriter, r *http.Request)
	SetResource(w http.ResponseWriter, r *http.Request)
	Disconnect(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	Subscribe(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Receive(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetEntries(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	ConfirmTopUp(w http.ResponseWriter, r *http.Request)
}

type DomainHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	ListRegistrations(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OAuthHandler    OAuthHandler
	WebhookHandler  WebhookHandler
	WalletHandler   WalletHandler
	DomainHandler   DomainHandler
	CampaignHandler CampaignHandler

	verifier       auth.Verifier
	allowedOrigins []string
}

func New(s *service.Services, verifier auth.Verifier, allowedOrigins []string) *Handlers {
	return &Handlers{
		OAuthHandler:    oauthhandlers.New(s.OAuthService),
		WebhookHandler:  webhookhandlers.New(s.WebhookService),
		WalletHandler:   wallethandlers.New(s.LedgerService),
		DomainHandler:   domainhandlers.New(s.DomainService),
		CampaignHandler: campaignhandlers.New(s.CampaignService),
		verifier:        verifier,
		allowedOrigins:  allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/oauth/{provider}/callback", h.OAuthHandler.Callback)
		r.Get("/webhooks/whatsapp", h.WebhookHandler.Verify)
		r.Post("/webhooks/whatsapp", h.WebhookHandler.Receive)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.verifier))

			r.Get("/oauth/{provider}/authorize", h.OAuthHandler.Authorize)
			r.Route("/connections", func(r chi.Router) {
				r.Get("/", h.OAuthHandler.ListConnections)
				r.Put("/{provider}/resource", h.OAuthHandler.SetResource)
				r.Delete("/{provider}", h.OAuthHandler.Disconnect)
			})
			r.Post("/webhooks/whatsapp/subscribe", h.WebhookHandler.Subscribe)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Get("/entries", h.WalletHandler.GetEntries)
				r.Post("/topup", h.WalletHandler.TopUp)
				r.Post("/topup/confirm", h.WalletHandler.ConfirmTopUp)
			})
			r.Route("/domains", func(r chi.Router) {
				r.Get("/", h.DomainHandler.ListRegistrations)
				r.Post("/search", h.DomainHandler.Search)
				r.Post("/register", h.DomainHandler.Register)
			})
			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", h.CampaignHandler.ListAll)
				r.Get("/{platform}", h.CampaignHandler.List)
			})
		})
	})

	return r
}
