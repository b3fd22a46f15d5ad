package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Rates returns click-through rate in percent and spend per click, both
// rounded to cents. Zero denominators yield zero.
func Rates(impressions, clicks int64, spend decimal.Decimal) (ctr, costPerResult decimal.Decimal) {
	ctr, costPerResult = decimal.Zero, decimal.Zero
	if impressions > 0 {
		ctr = decimal.NewFromInt(clicks).Mul(hundred).Div(decimal.NewFromInt(impressions)).Round(2)
	}
	if clicks > 0 {
		costPerResult = spend.Div(decimal.NewFromInt(clicks)).Round(2)
	}
	return ctr, costPerResult
}

// WithRates fills CTR and CostPerResult from the raw counters.
func (c CampaignSnapshot) WithRates() CampaignSnapshot {
	c.CTR, c.CostPerResult = Rates(c.Impressions, c.Clicks, c.Spend)
	return c
}

func Summarize(campaigns []CampaignSnapshot) CampaignSummary {
	summary := CampaignSummary{Spend: decimal.Zero}
	for _, c := range campaigns {
		summary.Impressions += c.Impressions
		summary.Clicks += c.Clicks
		summary.Spend = summary.Spend.Add(c.Spend)
	}
	summary.CTR, summary.CostPerResult = Rates(summary.Impressions, summary.Clicks, summary.Spend)
	return summary
}
