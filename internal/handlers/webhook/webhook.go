package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/adhub/internal/domain"
	"github.com/GlebRadaev/adhub/internal/dto"
	"github.com/GlebRadaev/adhub/internal/service/webhookservice"
	"github.com/GlebRadaev/adhub/pkg/utils"
)

//go:generate mockgen -source=webhook.go -destination=mock_service.go -package=webhook

type Service interface {
	EnsureSubscribed(ctx context.Context) (*domain.SubscriptionReport, error)
	VerifyChallenge(mode, token, challenge string) (string, error)
	Receive(ctx context.Context, body []byte, signature string) error
}

const (
	maxEventSize    = 1 << 20
	signatureHeader = "X-Hub-Signature-256"
)

type WebhookHandler struct {
	webhookService Service
}

func New(webhookService Service) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// Subscribe godoc
//
//	@Summary		Ensure the WhatsApp webhook subscription
//	@Description	Subscribe the app to WhatsApp Business events and report the subscriptions the provider holds afterwards.
//	@Tags			Webhooks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SubscriptionResponseDTO	"Subscription report"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		502	{object}	utils.Response				"Provider unavailable"
//	@Router			/api/webhooks/whatsapp/subscribe [post]
func (h *WebhookHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	report, err := h.webhookService.EnsureSubscribed(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUpstream):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	current := report.Current
	if current == nil {
		current = []domain.Subscription{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubscriptionResponseDTO{
		Success:              report.Success,
		Message:              report.Message,
		CurrentSubscriptions: current,
	})
}

// Verify godoc
//
//	@Summary		Webhook verification handshake
//	@Tags			Webhooks
//	@Produce		plain
//	@Param			hub.mode			query		string	true	"Must be subscribe"
//	@Param			hub.verify_token	query		string	true	"Configured verify token"
//	@Param			hub.challenge		query		string	true	"Value to echo"
//	@Success		200					{string}	string	"Challenge"
//	@Failure		403					{object}	utils.Response	"Verification failed"
//	@Router			/api/webhooks/whatsapp [get]
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	challenge, err := h.webhookService.VerifyChallenge(query.Get("hub.mode"), query.Get("hub.verify_token"), query.Get("hub.challenge"))
	if err != nil {
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, challenge)
}

// Receive godoc
//
//	@Summary		Webhook event delivery
//	@Description	Accepts events signed with the app secret.
//	@Tags			Webhooks
//	@Accept			json
//	@Param			X-Hub-Signature-256	header		string	true	"sha256=<hex hmac>"
//	@Success		200					{string}	string	"EVENT_RECEIVED"
//	@Failure		400					{object}	utils.Response	"Malformed payload"
//	@Failure		403					{object}	utils.Response	"Invalid signature"
//	@Router			/api/webhooks/whatsapp [post]
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventSize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.webhookService.Receive(r.Context(), body, r.Header.Get(signatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, webhookservice.ErrInvalidSignature):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrMalformedInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "EVENT_RECEIVED")
}
