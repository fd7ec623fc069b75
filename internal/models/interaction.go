package models

import "time"

// Interaction is a logged contact event (call, email, meeting, ...)
// tied to a client. Dates are ISO "YYYY-MM-DD" strings, matching the
// form inputs that produce them.
type Interaction struct {
	ID              int       `json:"id"`
	ClientID        int       `json:"client_id"`
	ActionType      string    `json:"action_type"`
	Notes           string    `json:"notes"`
	InteractionDate string    `json:"interaction_date"`
	Outcome         string    `json:"outcome"`
	NextActionDate  string    `json:"next_action_date"`
	AssignedTo      *int      `json:"assigned_to"`
	CampaignID      *int      `json:"campaign_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// InteractionRow is an interaction joined with its client columns, as
// the dashboard consumes it.
type InteractionRow struct {
	Interaction
	ClientName string `json:"client_name"`
	Sector     string `json:"sector"`
	Region     string `json:"region"`
}
