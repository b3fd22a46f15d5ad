package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
)

var (
	ErrRefunded     = errors.New("the charge was refunded")
	ErrRefundFailed = errors.New("the charge could not be refunded")
	ErrNotRecorded  = errors.New("purchase completed but could not be recorded")
)

// PurchaseRequest describes a paid action. SideEffect runs after the debit;
// Persist runs after a successful SideEffect, in the same transaction as the
// cashback credit. A Persist error for which Voids reports true cancels the
// purchase and refunds the debit.
type PurchaseRequest struct {
	UserID      string
	Cost        decimal.Decimal
	Cashback    decimal.Decimal
	Kind        domain.EntryKind
	Description string
	ReferenceID string
	SideEffect  func(ctx context.Context) error
	Persist     func(ctx context.Context) error
	Voids       func(err error) bool
}

type PurchaseResult struct {
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Cashback        decimal.Decimal
}

func (s *Service) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error) {
	if req.Cashback.IsNegative() {
		return nil, ErrInvalidAmount
	}

	_, previous, err := s.debit(ctx, req.UserID, req.Cost, req.Kind, req.Description, req.ReferenceID)
	if err != nil {
		return nil, err
	}

	if req.SideEffect != nil {
		if err := req.SideEffect(ctx); err != nil {
			return nil, s.compensate(ctx, req, fmt.Errorf("purchase of %s failed: %w", req.ReferenceID, err))
		}
	}

	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		if req.Persist != nil {
			if err := req.Persist(ctx); err != nil {
				return err
			}
		}
		return s.creditCashback(ctx, req)
	})
	if err != nil {
		if req.Voids != nil && req.Voids(err) {
			return nil, s.compensate(ctx, req, err)
		}

		// the side effect already happened, so the debit and the cashback stand
		zap.L().Error("purchase completed but could not be recorded",
			zap.String("user_id", req.UserID),
			zap.String("reference", req.ReferenceID),
			zap.Error(err),
		)
		if cbErr := s.creditCashback(context.WithoutCancel(ctx), req); cbErr != nil {
			zap.L().Error("failed to credit cashback",
				zap.String("user_id", req.UserID),
				zap.String("reference", req.ReferenceID),
				zap.String("amount", req.Cashback.StringFixed(2)),
				zap.Error(cbErr),
			)
		}
		return nil, fmt.Errorf("%w: %w", ErrNotRecorded, err)
	}

	return &PurchaseResult{
		PreviousBalance: previous,
		NewBalance:      previous.Sub(req.Cost).Add(req.Cashback),
		Cashback:        req.Cashback,
	}, nil
}

func (s *Service) creditCashback(ctx context.Context, req PurchaseRequest) error {
	if !req.Cashback.IsPositive() {
		return nil
	}
	_, err := s.repo.Append(ctx, domain.LedgerEntry{
		UserID:      req.UserID,
		Amount:      req.Cashback,
		Kind:        domain.EntryCashback,
		Description: "Cashback for " + req.ReferenceID,
		ReferenceID: req.ReferenceID,
	})
	return err
}

// compensate refunds the debit and wraps cause with ErrRefunded or
// ErrRefundFailed.
func (s *Service) compensate(ctx context.Context, req PurchaseRequest, cause error) error {
	zap.L().Warn("purchase failed, refunding",
		zap.String("user_id", req.UserID),
		zap.String("reference", req.ReferenceID),
		zap.Error(cause),
	)
	_, err := s.repo.Append(context.WithoutCancel(ctx), domain.LedgerEntry{
		UserID:      req.UserID,
		Amount:      req.Cost,
		Kind:        domain.EntryRefund,
		Description: "Refund: " + req.Description,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		zap.L().Error("failed to refund purchase",
			zap.String("user_id", req.UserID),
			zap.String("reference", req.ReferenceID),
			zap.String("amount", req.Cost.StringFixed(2)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", cause, ErrRefundFailed)
	}
	return fmt.Errorf("%w: %w", cause, ErrRefunded)
}
