package models

// Chart-ready datasets served to the dashboard. Rendering is the
// frontend's concern; these carry only the numbers.

type DashboardSummary struct {
	CompaniesReached   int `json:"companies_reached"`
	InteractionsLogged int `json:"interactions_logged"`
	SectorsCovered     int `json:"sectors_covered"`
}

type TimeseriesPoint struct {
	Day   string `json:"day"` // ISO date
	Count int    `json:"count"`
}

// HeatmapCell is one cell of the sector x action-type crosstab.
type HeatmapCell struct {
	Sector     string `json:"sector"`
	ActionType string `json:"action_type"`
	Count      int    `json:"count"`
}

type SectorCount struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

// FunnelStage is one bar of the pipeline funnel. Stages always appear
// in LeadStages order with zero counts kept in place.
type FunnelStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}
