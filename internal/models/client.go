package models

import "time"

// Client is a company in the CRM database.
type Client struct {
	ID             int       `json:"id"`
	CompanyName    string    `json:"company_name"`
	Sector         string    `json:"sector"`
	Region         string    `json:"region"`
	Location       string    `json:"location"`
	Size           string    `json:"size"`
	Revenue        float64   `json:"revenue"`
	PotentialValue float64   `json:"potential_value"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// Contact is a person at a client company. Contacts are removed with
// their client (ON DELETE CASCADE).
type Contact struct {
	ID          int       `json:"id"`
	ClientID    int       `json:"client_id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	LinkedIn    string    `json:"linkedin"`
	CreatedAt   time.Time `json:"created_at"`
}
