package models

// Target is a per-user, per-period performance goal. One row exists
// per (user_id, month, year).
type Target struct {
	ID               int     `json:"id"`
	UserID           int     `json:"user_id"`
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	NewClientsTarget int     `json:"new_clients_target"`
	ProposalsTarget  int     `json:"proposals_target"`
	RevenueTarget    float64 `json:"revenue_target"`
}

// TargetPerformance pairs a target with the actuals observed for the
// same period.
type TargetPerformance struct {
	Target
	NewClientsActual int     `json:"new_clients_actual"`
	ProposalsActual  int     `json:"proposals_actual"`
	RevenueActual    float64 `json:"revenue_actual"`
}
