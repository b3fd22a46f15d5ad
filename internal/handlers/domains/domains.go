package domains

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/dto"
	"github.com/GlebRadaev/adhub/internal/service/domainservice"
	"github.com/GlebRadaev/adhub/internal/service/ledgerservice"
	"github.com/GlebRadaev/adhub/pkg/auth"
	"github.com/GlebRadaev/adhub/pkg/utils"
)

//go:generate mockgen -source=domains.go -destination=mock_service.go -package=domains

type Service interface {
	Search(ctx context.Context, raw string) (*domainservice.SearchResult, error)
	Register(ctx context.Context, userID, raw string, finalPrice, costPrice decimal.Decimal) (*domainservice.RegisterResult, error)
	ListRegistrations(ctx context.Context, userID string) ([]domain.DomainRegistration, error)
}

type DomainHandler struct {
	domainService Service
}

func New(domainService Service) *DomainHandler {
	return &DomainHandler{
		domainService: domainService,
	}
}

// Search godoc
//
//	@Summary		Search a domain
//	@Description	Quote the requested domain and the same name under the popular TLDs, with availability.
//	@Tags			Domains
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DomainSearchRequestDTO	true	"Domain to look up"
//	@Success		200		{object}	dto.DomainSearchResponseDTO	"Quotes"
//	@Failure		400		{object}	utils.Response				"Invalid domain"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/domains/search [post]
func (h *DomainHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.DomainSearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.domainService.Search(r.Context(), req.Domain)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMalformedInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	suggestions := make([]dto.DomainQuoteDTO, len(result.Suggestions))
	for i, s := range result.Suggestions {
		suggestions[i] = toQuoteDTO(s)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DomainSearchResponseDTO{
		DomainQuoteDTO: toQuoteDTO(result.Primary),
		Suggestions:    suggestions,
	})
}

// Register godoc
//
//	@Summary		Register a domain
//	@Description	Pay for the domain from the wallet, register it and credit the cashback.
//	@Tags			Domains
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DomainRegisterRequestDTO		true	"Domain and the quoted prices"
//	@Success		200		{object}	dto.DomainRegisterResponseDTO		"Registered"
//	@Failure		400		{object}	dto.InsufficientFundsResponseDTO	"Insufficient funds, invalid domain or stale price"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		409		{object}	utils.Response						"Domain already registered"
//	@Failure		502		{object}	utils.Response						"Registrar unavailable"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/domains/register [post]
func (h *DomainHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.DomainRegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.domainService.Register(r.Context(), userID, req.Domain, req.FinalPrice, req.CostPrice)
	if err != nil {
		var funds *domain.InsufficientFundsError
		switch {
		case errors.As(err, &funds):
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.InsufficientFundsResponseDTO{
				Error:    "Insufficient funds",
				Balance:  funds.Balance.InexactFloat64(),
				Required: funds.Required.InexactFloat64(),
			})
		case errors.Is(err, ledgerservice.ErrRefundFailed):
			zap.L().Error("domain registration failed without refund", zap.String("user_id", userID), zap.Error(err))
			utils.RespondWithError(w, refundFailedStatus(err), "Domain registration failed and the charge could not be refunded")
		case errors.Is(err, domainservice.ErrDomainTaken) && errors.Is(err, ledgerservice.ErrRefunded):
			utils.RespondWithError(w, http.StatusConflict, "Domain is already registered, the charge was refunded")
		case errors.Is(err, domainservice.ErrDomainTaken):
			utils.RespondWithError(w, http.StatusConflict, domainservice.ErrDomainTaken.Error())
		case errors.Is(err, domain.ErrMalformedInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUpstream) && errors.Is(err, ledgerservice.ErrRefunded):
			utils.RespondWithError(w, http.StatusBadGateway, "Domain registration failed, the charge was refunded")
		case errors.Is(err, domain.ErrUpstream):
			utils.RespondWithError(w, http.StatusBadGateway, "Domain registration failed")
		case errors.Is(err, ledgerservice.ErrNotRecorded):
			zap.L().Error("domain registration not recorded", zap.String("user_id", userID), zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Domain registration could not be recorded, the charge stands")
		default:
			zap.L().Error("domain registration failed", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DomainRegisterResponseDTO{
		Success:    true,
		Domain:     result.Domain,
		NewBalance: result.NewBalance.InexactFloat64(),
		Cashback:   result.Cashback.InexactFloat64(),
	})
}

// ListRegistrations godoc
//
//	@Summary		List registered domains
//	@Tags			Domains
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DomainRegistrationResponseDTO	"Registrations"
//	@Failure		401	{object}	utils.Response						"User not authorized"
//	@Failure		500	{object}	utils.Response						"Internal server error"
//	@Router			/api/domains [get]
func (h *DomainHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	registrations, err := h.domainService.ListRegistrations(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}

	response := make([]dto.DomainRegistrationResponseDTO, len(registrations))
	for i, reg := range registrations {
		response[i] = dto.DomainRegistrationResponseDTO{
			ID:                 reg.ID,
			DomainName:         reg.DomainName,
			Status:             reg.Status,
			PurchasePrice:      reg.PurchasePrice.InexactFloat64(),
			CostPrice:          reg.CostPrice.InexactFloat64(),
			RegistrarReference: reg.RegistrarReference,
			Nameservers:        reg.Nameservers,
			ExpiryDate:         reg.ExpiryDate,
			CreatedAt:          reg.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toQuoteDTO(q domain.DomainQuote) dto.DomainQuoteDTO {
	return dto.DomainQuoteDTO{
		Domain:     q.Domain,
		Available:  q.Available,
		CostPrice:  q.CostPrice.InexactFloat64(),
		FinalPrice: q.FinalPrice.InexactFloat64(),
		TLD:        q.TLD,
	}
}

func refundFailedStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, domainservice.ErrDomainTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
