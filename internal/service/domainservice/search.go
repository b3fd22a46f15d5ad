package domainservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/adhub/internal/domain"
)

// Search quotes the requested name and the same label under every popular
// TLD. Availability probes run concurrently; a failed probe only marks its
// own candidate unavailable.
func (s *Service) Search(ctx context.Context, raw string) (*SearchResult, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	primary := s.quoteFor(normalized)
	sld, _ := Split(primary.Domain)

	candidates := []domain.DomainQuote{primary}
	for _, tld := range s.pricing.PopularTLDs {
		if tld == primary.TLD {
			continue
		}
		quote := s.Quote(tld)
		quote.Domain = sld + "." + tld
		candidates = append(candidates, quote)
	}

	var g errgroup.Group
	g.SetLimit(len(candidates))
	for i := range candidates {
		g.Go(func() error {
			candidates[i].Available = s.probe(ctx, candidates[i].Domain)
			return nil
		})
	}
	_ = g.Wait()

	return &SearchResult{
		Primary:     candidates[0],
		Suggestions: candidates[1:],
	}, nil
}

func (s *Service) probe(ctx context.Context, name string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.pricing.ProbeTimeout)
	defer cancel()

	available, err := s.registrar.Available(ctx, name)
	if err != nil {
		zap.L().Warn("availability probe failed", zap.String("domain", name), zap.Error(err))
		return false
	}
	if available {
		existing, err := s.repo.FindByDomain(ctx, name)
		if err != nil || existing != nil {
			return false
		}
	}
	return available
}
