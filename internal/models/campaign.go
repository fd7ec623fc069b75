package models

import "time"

type Campaign struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	CType       string    `json:"ctype"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Lead tracks a client through the pipeline funnel. Stage is one of
// LeadStages; new leads start at "Lead".
type Lead struct {
	ID         int       `json:"id"`
	ClientID   int       `json:"client_id"`
	CampaignID *int      `json:"campaign_id"`
	LeadSource string    `json:"lead_source"`
	Stage      string    `json:"stage"`
	AssignedTo *int      `json:"assigned_to"`
	CreatedAt  time.Time `json:"created_at"`
}
