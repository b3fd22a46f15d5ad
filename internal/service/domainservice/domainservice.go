package domainservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/providers/registrar"
	"github.com/GlebRadaev/adhub/internal/service/ledgerservice"
)

//go:generate mockgen -source=domainservice.go -destination=mock_deps.go -package=domainservice

type Ledger interface {
	Purchase(ctx context.Context, req ledgerservice.PurchaseRequest) (*ledgerservice.PurchaseResult, error)
}

type Registrar interface {
	Available(ctx context.Context, name string) (bool, error)
	Register(ctx context.Context, name string, years int, nameservers []string) (*registrar.Result, error)
}

type Repo interface {
	Create(ctx context.Context, reg *domain.DomainRegistration) (*domain.DomainRegistration, error)
	FindByDomain(ctx context.Context, name string) (*domain.DomainRegistration, error)
	ListByUser(ctx context.Context, userID string) ([]domain.DomainRegistration, error)
}

var (
	ErrPriceMismatch = fmt.Errorf("%w: submitted price does not match the current quote", domain.ErrMalformedInput)
	ErrDomainTaken   = errors.New("domain is already registered")
)

const registrationYears = 1

// Pricing holds the resale terms. Prices maps a TLD to the registrar's cost.
type Pricing struct {
	Margin       decimal.Decimal
	Cashback     decimal.Decimal
	DefaultCost  decimal.Decimal
	Prices       map[string]decimal.Decimal
	PopularTLDs  []string
	Nameservers  []string
	ProbeTimeout time.Duration
}

type SearchResult struct {
	Primary     domain.DomainQuote
	Suggestions []domain.DomainQuote
}

type RegisterResult struct {
	Domain       string
	NewBalance   decimal.Decimal
	Cashback     decimal.Decimal
	Registration *domain.DomainRegistration
}

type Service struct {
	ledger    Ledger
	registrar Registrar
	repo      Repo
	pricing   Pricing
	now       func() time.Time
}

func New(ledger Ledger, registrar Registrar, repo Repo, pricing Pricing) *Service {
	if pricing.ProbeTimeout <= 0 {
		pricing.ProbeTimeout = 5 * time.Second
	}
	return &Service{
		ledger:    ledger,
		registrar: registrar,
		repo:      repo,
		pricing:   pricing,
		now:       time.Now,
	}
}

// Quote prices a TLD: registrar cost plus the fixed margin.
func (s *Service) Quote(tld string) domain.DomainQuote {
	cost, ok := s.pricing.Prices[tld]
	if !ok {
		cost = s.pricing.DefaultCost
	}
	return domain.DomainQuote{
		TLD:        tld,
		CostPrice:  cost.Round(2),
		FinalPrice: cost.Add(s.pricing.Margin).Round(2),
	}
}

func (s *Service) quoteFor(name string) domain.DomainQuote {
	sld, tld := Split(name)
	quote := s.Quote(tld)
	quote.Domain = sld + "." + tld
	return quote
}

func (s *Service) Register(ctx context.Context, userID, raw string, finalPrice, costPrice decimal.Decimal) (*RegisterResult, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	quote := s.quoteFor(normalized)
	name := quote.Domain

	if !finalPrice.Equal(quote.FinalPrice) || !costPrice.Equal(quote.CostPrice) {
		return nil, ErrPriceMismatch
	}

	existing, err := s.repo.FindByDomain(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDomainTaken
	}

	var registered *registrar.Result
	var stored *domain.DomainRegistration
	result, err := s.ledger.Purchase(ctx, ledgerservice.PurchaseRequest{
		UserID:      userID,
		Cost:        quote.FinalPrice,
		Cashback:    s.pricing.Cashback,
		Kind:        domain.EntryDomainPurchase,
		Description: "Domain registration: " + name,
		ReferenceID: name,
		SideEffect: func(ctx context.Context) error {
			res, err := s.registrar.Register(ctx, name, registrationYears, s.pricing.Nameservers)
			if err != nil {
				return err
			}
			registered = res
			return nil
		},
		Persist: func(ctx context.Context) error {
			now := s.now().UTC()
			reg, err := s.repo.Create(ctx, &domain.DomainRegistration{
				UserID:             userID,
				DomainName:         name,
				Status:             domain.RegistrationActive,
				PurchasePrice:      quote.FinalPrice,
				CostPrice:          quote.CostPrice,
				RegistrarReference: registered.Reference,
				Nameservers:        registered.Nameservers,
				ExpiryDate:         now.AddDate(registrationYears, 0, 0),
				CreatedAt:          now,
			})
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					return ErrDomainTaken
				}
				return err
			}
			stored = reg
			return nil
		},
		Voids: func(err error) bool {
			return errors.Is(err, ErrDomainTaken)
		},
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("domain registered",
		zap.String("domain", name),
		zap.String("user_id", userID),
		zap.String("reference", registered.Reference),
	)
	return &RegisterResult{
		Domain:       name,
		NewBalance:   result.NewBalance,
		Cashback:     result.Cashback,
		Registration: stored,
	}, nil
}

func (s *Service) ListRegistrations(ctx context.Context, userID string) ([]domain.DomainRegistration, error) {
	registrations, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list registrations", zap.Error(err))
		return nil, err
	}
	return registrations, nil
}
