package models

import "time"

type Meeting struct {
	ID               int       `json:"id"`
	ClientID         int       `json:"client_id"`
	MeetingDate      string    `json:"meeting_date"`
	Purpose          string    `json:"purpose"`
	Notes            string    `json:"notes"`
	NextSteps        string    `json:"next_steps"`
	OpportunityValue float64   `json:"opportunity_value"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

var MeetingStatuses = []string{"Planned", "Held", "Cancelled"}

func ValidMeetingStatus(v string) bool { return oneOf(MeetingStatuses, v) }
