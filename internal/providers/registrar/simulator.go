package registrar

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Simulator stands in for a registrar when no API key is configured: every
// domain is available and registrations always succeed.
type Simulator struct {
	nameservers []string
}

func NewSimulator(nameservers []string) *Simulator {
	return &Simulator{nameservers: nameservers}
}

func (s *Simulator) Available(ctx context.Context, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Simulator) Register(ctx context.Context, name string, years int, nameservers []string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(nameservers) == 0 {
		nameservers = s.nameservers
	}
	ref := "SIM-" + uuid.NewString()
	zap.L().Info("simulated domain registration",
		zap.String("domain", name),
		zap.Int("years", years),
		zap.String("reference", ref),
	)
	return &Result{Reference: ref, Nameservers: nameservers}, nil
}
