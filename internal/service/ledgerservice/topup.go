package ledgerservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/providers/checkout"
)

const paymentPaid = "paid"

var (
	minTopUp = decimal.NewFromInt(1)
	maxTopUp = decimal.NewFromInt(10000)
)

type TopUpSession struct {
	SessionID   string
	CheckoutURL string
}

type TopUpResult struct {
	Balance  decimal.Decimal
	Credited bool
}

func (s *Service) CreateTopUp(ctx context.Context, userID string, amount decimal.Decimal, returnOrigin string) (*TopUpSession, error) {
	if !validAmount(amount) || amount.LessThan(minTopUp) || amount.GreaterThan(maxTopUp) {
		return nil, ErrInvalidAmount
	}

	origin := s.origins.Resolve(returnOrigin)
	session, err := s.checkout.CreateSession(ctx, checkout.SessionRequest{
		UserID:      userID,
		AmountCents: amount.Shift(2).IntPart(),
		SuccessURL:  origin + "/wallet?topup=success&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/wallet?topup=cancelled",
	})
	if err != nil {
		zap.L().Error("failed to create checkout session", zap.Error(err))
		return nil, err
	}
	return &TopUpSession{SessionID: session.ID, CheckoutURL: session.URL}, nil
}

// ConfirmTopUp credits a paid session exactly once. Confirming it again only
// reports the balance.
func (s *Service) ConfirmTopUp(ctx context.Context, userID, sessionID string) (*TopUpResult, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	session, err := s.checkout.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ClientReferenceID != userID {
		return nil, ErrSessionMismatch
	}
	if session.PaymentStatus != paymentPaid || session.AmountTotal <= 0 {
		return nil, ErrPaymentNotCompleted
	}

	credited, err := s.repo.AppendUnique(ctx, domain.LedgerEntry{
		UserID:      userID,
		Amount:      decimal.New(session.AmountTotal, -2),
		Kind:        domain.EntryTopUp,
		Description: fmt.Sprintf("Wallet top-up (%s)", session.Currency),
		ReferenceID: session.ID,
	})
	if err != nil {
		zap.L().Error("failed to credit top-up", zap.String("session_id", session.ID), zap.Error(err))
		return nil, err
	}

	balance, err := s.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &TopUpResult{Balance: balance, Credited: credited}, nil
}
