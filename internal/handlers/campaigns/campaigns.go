package campaigns

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/dto"
	"github.com/GlebRadaev/adhub/internal/service/campaignservice"
	"github.com/GlebRadaev/adhub/pkg/auth"
	"github.com/GlebRadaev/adhub/pkg/utils"
)

//go:generate mockgen -source=campaigns.go -destination=mock_service.go -package=campaigns

type Service interface {
	List(ctx context.Context, userID, platform string) campaignservice.PlatformResult
	ListAll(ctx context.Context, userID string) campaignservice.Overview
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// ListAll godoc
//
//	@Summary		Campaigns across all platforms
//	@Description	Normalized campaigns of every connected platform with a KPI summary. Platform failures are reported in errors.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CampaignsOverviewResponseDTO	"Campaigns"
//	@Failure		401	{object}	utils.Response						"User not authorized"
//	@Router			/api/campaigns [get]
func (h *CampaignHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	overview := h.campaignService.ListAll(r.Context(), userID)
	utils.RespondWithJSON(w, http.StatusOK, dto.CampaignsOverviewResponseDTO{
		Success:   overview.Success,
		Campaigns: toCampaignDTOs(overview.Campaigns),
		Errors:    overview.Errors,
		Summary: dto.CampaignSummaryDTO{
			Impressions:   overview.Summary.Impressions,
			Clicks:        overview.Summary.Clicks,
			Spend:         overview.Summary.Spend.InexactFloat64(),
			CTR:           overview.Summary.CTR.InexactFloat64(),
			CostPerResult: overview.Summary.CostPerResult.InexactFloat64(),
		},
	})
}

// List godoc
//
//	@Summary		Campaigns of one platform
//	@Description	Always answers 200; a missing or broken connection is reported with success=false.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			platform	path		string								true	"Platform"	Enums(meta, google)
//	@Success		200			{object}	dto.PlatformCampaignsResponseDTO	"Campaigns"
//	@Failure		401			{object}	utils.Response						"User not authorized"
//	@Router			/api/campaigns/{platform} [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	result := h.campaignService.List(r.Context(), userID, chi.URLParam(r, "platform"))
	utils.RespondWithJSON(w, http.StatusOK, dto.PlatformCampaignsResponseDTO{
		Success:   result.Success,
		Error:     result.Error,
		Campaigns: toCampaignDTOs(result.Campaigns),
	})
}

func toCampaignDTOs(campaigns []domain.CampaignSnapshot) []dto.CampaignDTO {
	response := make([]dto.CampaignDTO, len(campaigns))
	for i, c := range campaigns {
		response[i] = dto.CampaignDTO{
			ID:            c.ID,
			Platform:      c.Platform,
			Name:          c.Name,
			Status:        c.Status,
			Budget:        c.Budget.InexactFloat64(),
			Impressions:   c.Impressions,
			Clicks:        c.Clicks,
			Spend:         c.Spend.InexactFloat64(),
			CTR:           c.CTR.InexactFloat64(),
			CostPerResult: c.CostPerResult.InexactFloat64(),
			Extra:         c.Extra,
		}
	}
	return response
}
