package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/dto"
	"github.com/GlebRadaev/adhub/internal/service/ledgerservice"
	"github.com/GlebRadaev/adhub/pkg/auth"
	"github.com/GlebRadaev/adhub/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_service.go -package=wallet

type Service interface {
	Balance(ctx context.Context, userID string) (decimal.Decimal, error)
	Entries(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error)
	CreateTopUp(ctx context.Context, userID string, amount decimal.Decimal, returnOrigin string) (*ledgerservice.TopUpSession, error)
	ConfirmTopUp(ctx context.Context, userID, sessionID string) (*ledgerservice.TopUpResult, error)
}

type WalletHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *WalletHandler {
	return &WalletHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Sum of all ledger entries of the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	balance, err := h.ledgerService.Balance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance.InexactFloat64()})
}

// GetEntries godoc
//
//	@Summary		Get wallet history
//	@Description	Ledger entries of the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int							false	"Maximum number of entries"	default(50)
//	@Success		200		{array}		dto.LedgerEntryResponseDTO	"Entries"
//	@Failure		400		{object}	utils.Response				"Invalid limit"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/entries [get]
func (h *WalletHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.ledgerService.Entries(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			ID:          e.ID,
			Amount:      e.Amount.InexactFloat64(),
			Kind:        string(e.Kind),
			Description: e.Description,
			ReferenceID: e.ReferenceID,
			CreatedAt:   e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// TopUp godoc
//
//	@Summary		Start a wallet top-up
//	@Description	Create a hosted checkout session for the given amount.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpRequestDTO		true	"Top-up amount"
//	@Success		200		{object}	dto.TopUpResponseDTO	"Checkout session"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		502		{object}	utils.Response			"Payment provider unavailable"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/topup [post]
func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.ledgerService.CreateTopUp(r.Context(), userID, req.Amount, req.ReturnOrigin)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopUpResponseDTO{
		SessionID:   session.SessionID,
		CheckoutURL: session.CheckoutURL,
	})
}

// ConfirmTopUp godoc
//
//	@Summary		Confirm a wallet top-up
//	@Description	Credit a paid checkout session. Confirming the same session again does not credit twice.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpConfirmRequestDTO	true	"Checkout session"
//	@Success		200		{object}	dto.TopUpConfirmResponseDTO	"Balance after confirmation"
//	@Failure		400		{object}	utils.Response				"Invalid session"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Payment not completed"
//	@Failure		403		{object}	utils.Response				"Session belongs to another user"
//	@Failure		502		{object}	utils.Response				"Payment provider unavailable"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/topup/confirm [post]
func (h *WalletHandler) ConfirmTopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.TopUpConfirmRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.ledgerService.ConfirmTopUp(r.Context(), userID, req.SessionID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopUpConfirmResponseDTO{
		Balance:  result.Balance.InexactFloat64(),
		Credited: result.Credited,
	})
}

func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerservice.ErrPaymentNotCompleted):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, ledgerservice.ErrSessionMismatch):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUpstream):
		utils.RespondWithError(w, http.StatusBadGateway, "Payment provider unavailable")
	default:
		zap.L().Error("wallet request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
