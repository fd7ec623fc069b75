package repositories

import (
	"database/sql"
	"fmt"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type TargetRepository struct {
	store *database.Store
}

func NewTargetRepository(store *database.Store) *TargetRepository {
	return &TargetRepository{store: store}
}

// Upsert writes the single target row for (user_id, month, year),
// replacing the goal values when the period already exists.
func (r *TargetRepository) Upsert(t *models.Target) (int64, error) {
	const q = `
                INSERT INTO targets (user_id, month, year, new_clients_target, proposals_target, revenue_target)
                VALUES ($1, $2, $3, $4, $5, $6)
                ON CONFLICT (user_id, month, year) DO UPDATE
                SET new_clients_target=EXCLUDED.new_clients_target,
                    proposals_target=EXCLUDED.proposals_target,
                    revenue_target=EXCLUDED.revenue_target
                RETURNING id
        `
	var id int64
	err := r.store.QueryRow(q,
		t.UserID, t.Month, t.Year, t.NewClientsTarget, t.ProposalsTarget, t.RevenueTarget,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert target: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

func (r *TargetRepository) Get(userID, month, year int) (*models.Target, error) {
	const q = `
                SELECT id, user_id, month, year, new_clients_target, proposals_target, revenue_target
                FROM targets
                WHERE user_id=$1 AND month=$2 AND year=$3
        `
	var t models.Target
	err := r.store.QueryRow(q, userID, month, year).Scan(
		&t.ID, &t.UserID, &t.Month, &t.Year, &t.NewClientsTarget, &t.ProposalsTarget, &t.RevenueTarget,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get target: %w", err)
	}
	return &t, nil
}

func (r *TargetRepository) ListByUser(userID, year int) ([]*models.Target, error) {
	const q = `
                SELECT id, user_id, month, year, new_clients_target, proposals_target, revenue_target
                FROM targets
                WHERE user_id=$1 AND year=$2
                ORDER BY month
        `
	key := database.Key(q, userID, year)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]*models.Target), nil
	}
	rows, err := r.store.Query(q, userID, year)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	defer rows.Close()

	var res []*models.Target
	for rows.Next() {
		var t models.Target
		if err := rows.Scan(&t.ID, &t.UserID, &t.Month, &t.Year, &t.NewClientsTarget, &t.ProposalsTarget, &t.RevenueTarget); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}
