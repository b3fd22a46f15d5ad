package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/config"
	"github.com/GlebRadaev/adhub/internal/handlers"
	"github.com/GlebRadaev/adhub/internal/pg"
	"github.com/GlebRadaev/adhub/internal/providers/checkout"
	"github.com/GlebRadaev/adhub/internal/providers/googleads"
	"github.com/GlebRadaev/adhub/internal/providers/meta"
	"github.com/GlebRadaev/adhub/internal/providers/registrar"
	"github.com/GlebRadaev/adhub/internal/repo"
	"github.com/GlebRadaev/adhub/internal/service"
	"github.com/GlebRadaev/adhub/internal/service/domainservice"
	"github.com/GlebRadaev/adhub/pkg/auth"
	"github.com/GlebRadaev/adhub/pkg/clients"
	"github.com/GlebRadaev/adhub/pkg/logger"
	"github.com/GlebRadaev/adhub/pkg/secrets"
	"github.com/GlebRadaev/adhub/pkg/workerpool"
)

const subscribeTimeout = 30 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	events *workerpool.WorkerPool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err = logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	sealer, err := secrets.NewSealer(cfg.SealingSecret)
	if err != nil {
		return fmt.Errorf("can't build token sealer: %w", err)
	}

	httpClient := clients.NewHTTPClient()
	conn := pg.New(pool)

	a.cfg = cfg
	a.repo = repo.New(conn, sealer)
	a.events = workerpool.New(cfg.Webhook.Workers)
	a.srv, err = service.New(cfg, a.repo, txManager, newProviders(cfg, httpClient), a.events)
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	a.api = handlers.New(a.srv, newVerifier(cfg, httpClient), allowedOrigins(cfg))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startWebhookSubscription(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func newProviders(cfg *config.Config, client *clients.HTTPClient) service.Providers {
	var reg domainservice.Registrar
	if cfg.Registrar.APIKey == "" {
		zap.L().Warn("registrar api key is not set, domain registrations are simulated")
		reg = registrar.NewSimulator(cfg.Registrar.Nameservers)
	} else {
		reg = registrar.New(cfg.Registrar.URL, cfg.Registrar.APIKey, client)
	}

	return service.Providers{
		Meta:      meta.New(cfg.Meta, cfg.CallbackURL(meta.Name), client),
		Google:    googleads.New(cfg.Google, cfg.CallbackURL(googleads.Name), client),
		Registrar: reg,
		Checkout:  checkout.New(cfg.Checkout.URL, cfg.Checkout.SecretKey, cfg.Checkout.Currency, client),
	}
}

func newVerifier(cfg *config.Config, client *clients.HTTPClient) auth.Verifier {
	if cfg.Identity.Mode == "remote" {
		return auth.NewRemoteVerifier(cfg.Identity.UserURL, cfg.Identity.APIKey, client)
	}
	return auth.NewJWTVerifier(cfg.Identity.JWTSecret, cfg.Identity.Issuer, cfg.Identity.Audience)
}

// allowedOrigins always admits the dashboard itself.
func allowedOrigins(cfg *config.Config) []string {
	origins := make([]string, 0, len(cfg.AllowedOrigins)+1)
	origins = append(origins, cfg.FrontendURL)
	for _, origin := range cfg.AllowedOrigins {
		if origin != "" && origin != cfg.FrontendURL {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.events.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startWebhookSubscription makes sure the messaging webhook is registered once
// the server is reachable. Failures are logged, the endpoint can retry later.
func (a *Application) startWebhookSubscription(ctx context.Context) {
	if a.cfg.Meta.AppID == "" || a.cfg.Meta.AppSecret == "" {
		zap.L().Info("meta app credentials are not set, skipping webhook subscription")
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		sCtx, cancel := context.WithTimeout(ctx, subscribeTimeout)
		defer cancel()

		report, err := a.srv.WebhookService.EnsureSubscribed(sCtx)
		if err != nil {
			zap.L().Warn("webhook subscription check failed", zap.Error(err))
			return
		}
		zap.L().Info("webhook subscription checked",
			zap.Bool("success", report.Success),
			zap.String("message", report.Message),
		)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
