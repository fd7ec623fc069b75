package database

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Date-valued columns are stored as ISO "YYYY-MM-DD" text. ISO strings
// order and compare correctly, which is all the filter queries need.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		company_name TEXT NOT NULL,
		sector TEXT,
		region TEXT,
		location TEXT,
		size TEXT,
		revenue DOUBLE PRECISION NOT NULL DEFAULT 0,
		potential_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id SERIAL PRIMARY KEY,
		client_id INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		designation TEXT,
		phone TEXT,
		email TEXT,
		linkedin TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		ctype TEXT,
		start_date TEXT,
		end_date TEXT,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id SERIAL PRIMARY KEY,
		client_id INTEGER REFERENCES clients(id),
		campaign_id INTEGER REFERENCES campaigns(id),
		lead_source TEXT,
		stage TEXT,
		assigned_to INTEGER REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS interactions (
		id SERIAL PRIMARY KEY,
		client_id INTEGER NOT NULL REFERENCES clients(id),
		action_type TEXT NOT NULL,
		notes TEXT,
		interaction_date TEXT NOT NULL,
		outcome TEXT,
		next_action_date TEXT,
		assigned_to INTEGER REFERENCES users(id),
		campaign_id INTEGER REFERENCES campaigns(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		id SERIAL PRIMARY KEY,
		client_id INTEGER NOT NULL REFERENCES clients(id),
		meeting_date TEXT NOT NULL,
		purpose TEXT,
		notes TEXT,
		next_steps TEXT,
		opportunity_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'Planned',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		client_id INTEGER REFERENCES clients(id),
		interaction_id INTEGER REFERENCES interactions(id),
		title TEXT NOT NULL,
		due_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Open',
		assigned_to INTEGER REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS targets (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users(id),
		month INTEGER NOT NULL,
		year INTEGER NOT NULL,
		new_clients_target INTEGER NOT NULL DEFAULT 0,
		proposals_target INTEGER NOT NULL DEFAULT 0,
		revenue_target DOUBLE PRECISION NOT NULL DEFAULT 0,
		UNIQUE (user_id, month, year)
	)`,
	`CREATE TABLE IF NOT EXISTS sales_campaign_tracker (
		id SERIAL PRIMARY KEY,
		week TEXT,
		date_range TEXT,
		company_name TEXT,
		address TEXT,
		contact_person TEXT,
		telephone TEXT,
		email TEXT,
		proposal_status TEXT,
		site_visit TEXT,
		follow_up_comments TEXT,
		sector TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Tables in drop order (children before parents).
var tableNames = []string{
	"sales_campaign_tracker",
	"targets",
	"tasks",
	"meetings",
	"interactions",
	"leads",
	"contacts",
	"campaigns",
	"clients",
	"users",
}

// DefaultAdminUsername / DefaultAdminPassword are the documented
// bootstrap credentials, seeded whenever the users table is empty.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password123"
)

// InitSchema creates any missing tables and guarantees the bootstrap
// admin account exists. hashPassword is injected so this package does
// not depend on the auth service.
func InitSchema(db *sql.DB, hashPassword func(string) string) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return seedDefaults(db, hashPassword)
}

func seedDefaults(db *sql.DB, hashPassword func(string) string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := db.Exec(
		`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)`,
		DefaultAdminUsername, hashPassword(DefaultAdminPassword), "Admin",
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	logrus.Infof("[db][seed] created default %q account", DefaultAdminUsername)
	return nil
}

// Reset drops every CRM table and rebuilds the schema from scratch,
// reseeding the bootstrap admin. Irreversible; callers must have
// collected the double confirmation before getting here.
func Reset(db *sql.DB, hashPassword func(string) string) error {
	for _, name := range tableNames {
		if _, err := db.Exec(`DROP TABLE IF EXISTS ` + name + ` CASCADE`); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}
	logrus.Warn("[db][reset] all tables dropped, recreating schema")
	return InitSchema(db, hashPassword)
}
