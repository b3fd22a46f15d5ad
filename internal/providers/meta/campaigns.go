package meta

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/adhub/internal/domain"
)

const campaignFields = "id,name,status,effective_status,objective,daily_budget,lifetime_budget," +
	"insights.date_preset(last_30d){impressions,clicks,spend}"

// Campaign is a Graph API campaign row. Numbers arrive as strings.
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	Objective       string `json:"objective"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
	Insights        *struct {
		Data []Insight `json:"data"`
	} `json:"insights"`
}

type Insight struct {
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	Spend       string `json:"spend"`
}

type campaignsResponse struct {
	Data *[]Campaign `json:"data"`
}

func (c *Client) Platform() string {
	return Name
}

func (c *Client) Campaigns(ctx context.Context, token, accountID string) ([]domain.CampaignSnapshot, error) {
	query := url.Values{}
	query.Set("fields", campaignFields)
	query.Set("limit", "100")

	var resp campaignsResponse
	if err := c.get(ctx, "/"+url.PathEscape(accountID)+"/campaigns", query, token, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, domain.NewUpstreamError(Name, http.StatusOK, "campaigns missing in response")
	}

	snapshots := make([]domain.CampaignSnapshot, 0, len(*resp.Data))
	for _, raw := range *resp.Data {
		snapshot, err := MapCampaign(raw)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

// MapCampaign converts a Graph row into the common snapshot. Budgets are in
// minor currency units.
func MapCampaign(raw Campaign) (domain.CampaignSnapshot, error) {
	if raw.ID == "" {
		return domain.CampaignSnapshot{}, domain.NewUpstreamError(Name, http.StatusOK, "campaign without id")
	}

	budgetRaw := raw.DailyBudget
	budgetType := "daily"
	if budgetRaw == "" || budgetRaw == "0" {
		budgetRaw = raw.LifetimeBudget
		budgetType = "lifetime"
	}
	budget, err := minorUnits(budgetRaw)
	if err != nil {
		return domain.CampaignSnapshot{}, malformed(raw.ID, "budget")
	}

	snapshot := domain.CampaignSnapshot{
		ID:       raw.ID,
		Platform: Name,
		Name:     raw.Name,
		Status:   normalizeStatus(raw.EffectiveStatus, raw.Status),
		Budget:   budget,
		Spend:    decimal.Zero,
		Extra: map[string]string{
			"objective":        raw.Objective,
			"effective_status": raw.EffectiveStatus,
			"budget_type":      budgetType,
		},
	}

	if raw.Insights != nil && len(raw.Insights.Data) > 0 {
		insight := raw.Insights.Data[0]
		if snapshot.Impressions, err = count(insight.Impressions); err != nil {
			return domain.CampaignSnapshot{}, malformed(raw.ID, "impressions")
		}
		if snapshot.Clicks, err = count(insight.Clicks); err != nil {
			return domain.CampaignSnapshot{}, malformed(raw.ID, "clicks")
		}
		if insight.Spend != "" {
			if snapshot.Spend, err = decimal.NewFromString(insight.Spend); err != nil {
				return domain.CampaignSnapshot{}, malformed(raw.ID, "spend")
			}
		}
	}
	return snapshot.WithRates(), nil
}

func normalizeStatus(effective, configured string) string {
	status := effective
	if status == "" {
		status = configured
	}
	switch strings.ToUpper(status) {
	case "ACTIVE":
		return domain.CampaignActive
	case "PAUSED", "CAMPAIGN_PAUSED", "ADSET_PAUSED":
		return domain.CampaignPaused
	case "ARCHIVED", "DELETED":
		return domain.CampaignArchived
	default:
		return domain.CampaignUnknown
	}
}

func minorUnits(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return value.Div(decimal.NewFromInt(100)).Round(2), nil
}

func count(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func malformed(id, field string) error {
	return domain.NewUpstreamError(Name, http.StatusOK, "campaign "+id+": malformed "+field)
}
