package dto

type CampaignDTO struct {
	ID            string            `json:"id" example:"120200000000001"`
	Platform      string            `json:"platform" example:"meta"`
	Name          string            `json:"name" example:"Spring sale"`
	Status        string            `json:"status" example:"active"`
	Budget        float64           `json:"budget" example:"50"`
	Impressions   int64             `json:"impressions" example:"12000"`
	Clicks        int64             `json:"clicks" example:"340"`
	Spend         float64           `json:"spend" example:"85.4"`
	CTR           float64           `json:"ctr" example:"2.83"`
	CostPerResult float64           `json:"cost_per_result" example:"0.25"`
	Extra         map[string]string `json:"extra,omitempty"`
}

type CampaignSummaryDTO struct {
	Impressions   int64   `json:"impressions" example:"15000"`
	Clicks        int64   `json:"clicks" example:"400"`
	Spend         float64 `json:"spend" example:"120.5"`
	CTR           float64 `json:"ctr" example:"2.67"`
	CostPerResult float64 `json:"cost_per_result" example:"0.3"`
}

type PlatformCampaignsResponseDTO struct {
	Success   bool          `json:"success" example:"false"`
	Error     string        `json:"error,omitempty" example:"platform is not connected"`
	Campaigns []CampaignDTO `json:"campaigns"`
}

type CampaignsOverviewResponseDTO struct {
	Success   bool               `json:"success" example:"true"`
	Campaigns []CampaignDTO      `json:"campaigns"`
	Errors    map[string]string  `json:"errors"`
	Summary   CampaignSummaryDTO `json:"summary"`
}
