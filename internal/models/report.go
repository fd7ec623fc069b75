package models

// ReportSummary is the aggregate snapshot behind the Reports & Export
// page and its PDF rendering.
type ReportSummary struct {
	Clients      int `json:"clients"`
	Contacts     int `json:"contacts"`
	Campaigns    int `json:"campaigns"`
	Leads        int `json:"leads"`
	Interactions int `json:"interactions"`
	Meetings     int `json:"meetings"`
	Tasks        int `json:"tasks"`

	InteractionsByType []LabelCount   `json:"interactions_by_type"`
	PipelineByStage    []FunnelStage  `json:"pipeline_by_stage"`
	RevenueTotals      RevenueSummary `json:"revenue_totals"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type RevenueSummary struct {
	ClientRevenue    float64 `json:"client_revenue"`
	PotentialValue   float64 `json:"potential_value"`
	OpportunityValue float64 `json:"opportunity_value"` // held meetings only
}
