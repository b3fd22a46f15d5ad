package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/dto"
	"github.com/GlebRadaev/adhub/internal/service/oauthservice"
	"github.com/GlebRadaev/adhub/pkg/auth"
	"github.com/GlebRadaev/adhub/pkg/utils"
)

//go:generate mockgen -source=oauth.go -destination=mock_service.go -package=oauth

type Service interface {
	IssueAuthURL(ctx context.Context, userID, provider, returnOrigin string) (string, error)
	HandleCallback(ctx context.Context, provider string, params oauthservice.CallbackParams) string
	SetResource(ctx context.Context, userID, provider, resourceID, resourceName string) (*domain.Resource, error)
	ListConnections(ctx context.Context, userID string) ([]domain.Connection, error)
	Disconnect(ctx context.Context, userID, provider string) error
}

type OAuthHandler struct {
	oauthService Service
}

func New(oauthService Service) *OAuthHandler {
	return &OAuthHandler{
		oauthService: oauthService,
	}
}

// Authorize godoc
//
//	@Summary		Start an OAuth connection
//	@Description	Build the provider authorization URL carrying a signed state bound to the caller.
//	@Tags			Connections
//	@Security		BearerAuth
//	@Produce		json
//	@Param			provider		path		string					true	"Provider"	Enums(meta, google)
//	@Param			return_origin	query		string					false	"Dashboard origin to return to"
//	@Success		200				{object}	dto.AuthURLResponseDTO	"Authorization URL"
//	@Failure		400				{object}	utils.Response			"Unknown provider"
//	@Failure		401				{object}	utils.Response			"User not authorized"
//	@Failure		500				{object}	utils.Response			"Internal server error"
//	@Router			/api/oauth/{provider}/authorize [get]
func (h *OAuthHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	provider := chi.URLParam(r, "provider")

	authURL, err := h.oauthService.IssueAuthURL(r.Context(), userID, provider, r.URL.Query().Get("return_origin"))
	if err != nil {
		switch {
		case errors.Is(err, oauthservice.ErrUnknownProvider):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthURLResponseDTO{AuthURL: authURL})
}

// Callback godoc
//
//	@Summary		OAuth redirect target
//	@Description	Exchange the authorization code and redirect the browser back to the dashboard settings page.
//	@Tags			Connections
//	@Param			provider			path	string	true	"Provider"	Enums(meta, google)
//	@Param			code				query	string	false	"Authorization code"
//	@Param			state				query	string	false	"Signed state"
//	@Param			error				query	string	false	"Provider error"
//	@Param			error_description	query	string	false	"Provider error description"
//	@Success		302
//	@Router			/api/oauth/{provider}/callback [get]
func (h *OAuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := oauthservice.CallbackParams{
		Code:             query.Get("code"),
		State:            query.Get("state"),
		Error:            query.Get("error"),
		ErrorDescription: query.Get("error_description"),
	}
	if params.ErrorDescription == "" {
		params.ErrorDescription = query.Get("error_message")
	}

	target := h.oauthService.HandleCallback(r.Context(), chi.URLParam(r, "provider"), params)
	http.Redirect(w, r, target, http.StatusFound)
}

// ListConnections godoc
//
//	@Summary		List platform connections
//	@Description	Connection status per provider. Tokens are never returned.
//	@Tags			Connections
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ConnectionResponseDTO	"Connections"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/connections [get]
func (h *OAuthHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	conns, err := h.oauthService.ListConnections(r.Context(), userID)
	if err != nil {
		zap.L().Error("failed to list connections", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ConnectionResponseDTO, len(conns))
	for i, c := range conns {
		response[i] = dto.ConnectionResponseDTO{
			Provider:     c.Provider,
			Status:       c.Status(),
			ResourceID:   c.ResourceID,
			ResourceName: c.ResourceName,
			UpdatedAt:    c.UpdatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetResource godoc
//
//	@Summary		Select the ad account of a connection
//	@Description	Complete a pending selection with one of the accounts the stored token can see.
//	@Tags			Connections
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			provider	path		string						true	"Provider"	Enums(meta, google)
//	@Param			request		body		dto.SetResourceRequestDTO	true	"Selected account"
//	@Success		200			{object}	dto.ResourceResponseDTO		"Selected account"
//	@Failure		400			{object}	utils.Response				"Unknown provider or account"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		404			{object}	utils.Response				"Connection not found"
//	@Failure		502			{object}	utils.Response				"Provider unavailable"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/connections/{provider}/resource [put]
func (h *OAuthHandler) SetResource(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.SetResourceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ResourceID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resource, err := h.oauthService.SetResource(r.Context(), userID, chi.URLParam(r, "provider"), req.ResourceID, req.ResourceName)
	if err != nil {
		switch {
		case errors.Is(err, oauthservice.ErrConnectionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrMalformedInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUpstream):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ResourceResponseDTO{ID: resource.ID, Name: resource.Name})
}

// Disconnect godoc
//
//	@Summary		Disconnect a platform
//	@Tags			Connections
//	@Security		BearerAuth
//	@Param			provider	path	string	true	"Provider"	Enums(meta, google)
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Unknown provider"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Connection not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/connections/{provider} [delete]
func (h *OAuthHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	err := h.oauthService.Disconnect(r.Context(), userID, chi.URLParam(r, "provider"))
	if err != nil {
		switch {
		case errors.Is(err, oauthservice.ErrConnectionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, oauthservice.ErrUnknownProvider):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
