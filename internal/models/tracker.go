package models

import "time"

// TrackerEntry is one row of the weekly sales campaign tracker, a
// flat worksheet kept alongside the relational CRM tables.
type TrackerEntry struct {
	ID               int       `json:"id"`
	Week             string    `json:"week"`
	DateRange        string    `json:"date_range"`
	CompanyName      string    `json:"company_name"`
	Address          string    `json:"address"`
	ContactPerson    string    `json:"contact_person"`
	Telephone        string    `json:"telephone"`
	Email            string    `json:"email"`
	ProposalStatus   string    `json:"proposal_status"`
	SiteVisit        string    `json:"site_visit"`
	FollowUpComments string    `json:"follow_up_comments"`
	Sector           string    `json:"sector"`
	CreatedAt        time.Time `json:"created_at"`
}
