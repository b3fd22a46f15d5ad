package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/pg"
	"github.com/GlebRadaev/adhub/internal/providers/checkout"
	"github.com/GlebRadaev/adhub/pkg/utils"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_repo.go -package=ledgerservice

type Repo interface {
	LockUser(ctx context.Context, userID string) error
	Balance(ctx context.Context, userID string) (decimal.Decimal, error)
	Append(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	AppendUnique(ctx context.Context, entry domain.LedgerEntry) (bool, error)
	Entries(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error)
}

type Checkout interface {
	CreateSession(ctx context.Context, req checkout.SessionRequest) (*domain.CheckoutSession, error)
	Session(ctx context.Context, id string) (*domain.CheckoutSession, error)
}

var (
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be a positive value with at most two decimals", domain.ErrMalformedInput)
	ErrInvalidSession      = fmt.Errorf("%w: session id is required", domain.ErrMalformedInput)
	ErrPaymentNotCompleted = errors.New("payment is not completed")
	ErrSessionMismatch     = errors.New("checkout session belongs to another user")
)

const (
	DefaultEntriesLimit = 50
	MaxEntriesLimit     = 200
)

type Service struct {
	repo     Repo
	tx       pg.TXManager
	checkout Checkout
	origins  *utils.OriginPolicy
}

func New(repo Repo, tx pg.TXManager, checkout Checkout, origins *utils.OriginPolicy) *Service {
	return &Service{
		repo:     repo,
		tx:       tx,
		checkout: checkout,
		origins:  origins,
	}
}

func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

func (s *Service) Balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	balance, err := s.repo.Balance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *Service) Credit(ctx context.Context, userID string, amount decimal.Decimal, kind domain.EntryKind, description, referenceID string) (*domain.LedgerEntry, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}
	return s.repo.Append(ctx, domain.LedgerEntry{
		UserID:      userID,
		Amount:      amount,
		Kind:        kind,
		Description: description,
		ReferenceID: referenceID,
	})
}

// Debit appends -amount only if the balance covers it. The check and the
// append happen under the user's ledger lock.
func (s *Service) Debit(ctx context.Context, userID string, amount decimal.Decimal, kind domain.EntryKind, description, referenceID string) (*domain.LedgerEntry, error) {
	entry, _, err := s.debit(ctx, userID, amount, kind, description, referenceID)
	return entry, err
}

func (s *Service) debit(ctx context.Context, userID string, amount decimal.Decimal, kind domain.EntryKind, description, referenceID string) (*domain.LedgerEntry, decimal.Decimal, error) {
	if !validAmount(amount) {
		return nil, decimal.Zero, ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	var previous decimal.Decimal
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.LockUser(ctx, userID); err != nil {
			return err
		}
		balance, err := s.repo.Balance(ctx, userID)
		if err != nil {
			return err
		}
		if balance.LessThan(amount) {
			return &domain.InsufficientFundsError{Balance: balance, Required: amount}
		}
		previous = balance
		entry, err = s.repo.Append(ctx, domain.LedgerEntry{
			UserID:      userID,
			Amount:      amount.Neg(),
			Kind:        kind,
			Description: description,
			ReferenceID: referenceID,
		})
		return err
	})
	if err != nil {
		var funds *domain.InsufficientFundsError
		if !errors.As(err, &funds) {
			zap.L().Error("failed to debit ledger", zap.String("kind", string(kind)), zap.Error(err))
		}
		return nil, decimal.Zero, err
	}
	return entry, previous, nil
}

func (s *Service) Entries(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = DefaultEntriesLimit
	}
	if limit > MaxEntriesLimit {
		limit = MaxEntriesLimit
	}
	entries, err := s.repo.Entries(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to list ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
