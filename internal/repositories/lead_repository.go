package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type LeadRepository struct {
	store *database.Store
}

func NewLeadRepository(store *database.Store) *LeadRepository {
	return &LeadRepository{store: store}
}

func (r *LeadRepository) Create(lead *models.Lead) (int64, error) {
	const q = `
                INSERT INTO leads (client_id, campaign_id, lead_source, stage, assigned_to)
                VALUES ($1, $2, $3, $4, $5)
                RETURNING id, created_at
        `
	var id int64
	err := r.store.QueryRow(q,
		lead.ClientID, lead.CampaignID, lead.LeadSource, lead.Stage, lead.AssignedTo,
	).Scan(&id, &lead.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create lead: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

func (r *LeadRepository) GetByID(id int) (*models.Lead, error) {
	const q = `
                SELECT id, COALESCE(client_id,0), campaign_id, COALESCE(lead_source,''),
                       COALESCE(stage,''), assigned_to, created_at
                FROM leads
                WHERE id=$1
        `
	var l models.Lead
	err := r.store.QueryRow(q, id).Scan(&l.ID, &l.ClientID, &l.CampaignID, &l.LeadSource, &l.Stage, &l.AssignedTo, &l.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// List filters by stage and/or assignee; zero values drop the
// predicate, matching the sidebar's empty-filter behavior.
func (r *LeadRepository) List(stage string, assignedTo int) ([]*models.Lead, error) {
	base := `
                SELECT id, COALESCE(client_id,0), campaign_id, COALESCE(lead_source,''),
                       COALESCE(stage,''), assigned_to, created_at
                FROM leads`
	var (
		conds []string
		args  []any
		argID = 1
	)
	if stage != "" {
		conds = append(conds, fmt.Sprintf("stage = $%d", argID))
		args = append(args, stage)
		argID++
	}
	if assignedTo > 0 {
		conds = append(conds, fmt.Sprintf("assigned_to = $%d", argID))
		args = append(args, assignedTo)
		argID++
	}
	q := base
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"

	key := database.Key(q, args...)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]*models.Lead), nil
	}
	rows, err := r.store.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var res []*models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.ClientID, &l.CampaignID, &l.LeadSource, &l.Stage, &l.AssignedTo, &l.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

func (r *LeadRepository) UpdateStage(id int, stage string) error {
	if _, err := r.store.Exec(`UPDATE leads SET stage=$1 WHERE id=$2`, stage, id); err != nil {
		return fmt.Errorf("update lead stage: %w", err)
	}
	r.store.InvalidateReads()
	return nil
}

// StageCounts tallies leads per stage across the whole table. Callers
// reindex the result onto the fixed funnel order.
func (r *LeadRepository) StageCounts() (map[string]int, error) {
	const q = `SELECT COALESCE(stage,''), COUNT(*) FROM leads GROUP BY stage`
	key := database.Key(q)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.(map[string]int), nil
	}
	rows, err := r.store.Query(q)
	if err != nil {
		return nil, fmt.Errorf("lead stage counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var stage string
		var n int
		if err := rows.Scan(&stage, &n); err != nil {
			return nil, err
		}
		counts[stage] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, counts)
	return counts, nil
}

func (r *LeadRepository) Count() (int, error) {
	var n int
	if err := r.store.QueryRow(`SELECT COUNT(*) FROM leads`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}

// CountNewClients counts leads assigned to a user that reached the
// "Client" stage inside a calendar month; the Targets page compares
// it against new_clients_target.
func (r *LeadRepository) CountNewClients(userID, month, year int) (int, error) {
	const q = `
                SELECT COUNT(*)
                FROM leads
                WHERE stage = 'Client'
                  AND assigned_to = $1
                  AND EXTRACT(MONTH FROM created_at) = $2
                  AND EXTRACT(YEAR FROM created_at) = $3
        `
	var n int
	if err := r.store.QueryRow(q, userID, month, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("count new clients: %w", err)
	}
	return n, nil
}
