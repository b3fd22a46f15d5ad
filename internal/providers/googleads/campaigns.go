package googleads

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/adhub/internal/domain"
)

const campaignQuery = `SELECT campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type,
  campaign_budget.amount_micros, metrics.impressions, metrics.clicks, metrics.cost_micros
FROM campaign
WHERE segments.date DURING LAST_30_DAYS`

var micros = decimal.NewFromInt(1_000_000)

// Row is one searchStream result. int64 fields are encoded as strings.
type Row struct {
	Campaign struct {
		ResourceName           string `json:"resourceName"`
		ID                     string `json:"id"`
		Name                   string `json:"name"`
		Status                 string `json:"status"`
		AdvertisingChannelType string `json:"advertisingChannelType"`
	} `json:"campaign"`
	CampaignBudget struct {
		AmountMicros string `json:"amountMicros"`
	} `json:"campaignBudget"`
	Metrics struct {
		Impressions string `json:"impressions"`
		Clicks      string `json:"clicks"`
		CostMicros  string `json:"costMicros"`
	} `json:"metrics"`
}

type streamBatch struct {
	Results []Row `json:"results"`
}

type searchRequest struct {
	Query string `json:"query"`
}

func (c *Client) Platform() string {
	return Name
}

// Campaigns runs the 30-day campaign report for one customer. Rows for the
// same campaign across date segments are summed.
func (c *Client) Campaigns(ctx context.Context, token, customerID string) ([]domain.CampaignSnapshot, error) {
	var batches []streamBatch
	path := "/customers/" + customerID + "/googleAds:searchStream"
	if err := c.call(ctx, http.MethodPost, path, token, searchRequest{Query: campaignQuery}, &batches); err != nil {
		return nil, err
	}

	var order []string
	byID := make(map[string]domain.CampaignSnapshot)
	for _, batch := range batches {
		for _, row := range batch.Results {
			snapshot, err := MapRow(row)
			if err != nil {
				return nil, err
			}
			existing, ok := byID[snapshot.ID]
			if !ok {
				order = append(order, snapshot.ID)
				byID[snapshot.ID] = snapshot
				continue
			}
			existing.Impressions += snapshot.Impressions
			existing.Clicks += snapshot.Clicks
			existing.Spend = existing.Spend.Add(snapshot.Spend)
			byID[snapshot.ID] = existing
		}
	}

	snapshots := make([]domain.CampaignSnapshot, 0, len(order))
	for _, id := range order {
		snapshots = append(snapshots, byID[id].WithRates())
	}
	return snapshots, nil
}

// MapRow converts a searchStream row into the common snapshot. Money is in
// micros.
func MapRow(row Row) (domain.CampaignSnapshot, error) {
	if row.Campaign.ID == "" {
		return domain.CampaignSnapshot{}, domain.NewUpstreamError(Name, http.StatusOK, "campaign without id")
	}
	budget, err := fromMicros(row.CampaignBudget.AmountMicros)
	if err != nil {
		return domain.CampaignSnapshot{}, malformed(row.Campaign.ID, "budget")
	}
	spend, err := fromMicros(row.Metrics.CostMicros)
	if err != nil {
		return domain.CampaignSnapshot{}, malformed(row.Campaign.ID, "cost")
	}
	impressions, err := count(row.Metrics.Impressions)
	if err != nil {
		return domain.CampaignSnapshot{}, malformed(row.Campaign.ID, "impressions")
	}
	clicks, err := count(row.Metrics.Clicks)
	if err != nil {
		return domain.CampaignSnapshot{}, malformed(row.Campaign.ID, "clicks")
	}

	return domain.CampaignSnapshot{
		ID:          row.Campaign.ID,
		Platform:    Name,
		Name:        row.Campaign.Name,
		Status:      normalizeStatus(row.Campaign.Status),
		Budget:      budget,
		Impressions: impressions,
		Clicks:      clicks,
		Spend:       spend,
		Extra: map[string]string{
			"channel_type":  row.Campaign.AdvertisingChannelType,
			"resource_name": row.Campaign.ResourceName,
		},
	}.WithRates(), nil
}

func normalizeStatus(status string) string {
	switch status {
	case "ENABLED":
		return domain.CampaignActive
	case "PAUSED":
		return domain.CampaignPaused
	case "REMOVED":
		return domain.CampaignArchived
	default:
		return domain.CampaignUnknown
	}
}

func fromMicros(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return value.Div(micros).Round(2), nil
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
