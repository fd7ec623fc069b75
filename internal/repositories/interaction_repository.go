package repositories

import (
	"fmt"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type InteractionRepository struct {
	store *database.Store
}

func NewInteractionRepository(store *database.Store) *InteractionRepository {
	return &InteractionRepository{store: store}
}

func (r *InteractionRepository) Create(in *models.Interaction) (int64, error) {
	const q = `
                INSERT INTO interactions (client_id, action_type, notes, interaction_date, outcome,
                                          next_action_date, assigned_to, campaign_id)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                RETURNING id, created_at
        `
	var id int64
	err := r.store.QueryRow(q,
		in.ClientID, in.ActionType, in.Notes, in.InteractionDate, in.Outcome,
		in.NextActionDate, in.AssignedTo, in.CampaignID,
	).Scan(&id, &in.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create interaction: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

const interactionJoin = `
                SELECT i.id, i.client_id, i.action_type, COALESCE(i.notes,''), i.interaction_date,
                       COALESCE(i.outcome,''), COALESCE(i.next_action_date,''), i.assigned_to, i.campaign_id,
                       i.created_at, c.company_name, COALESCE(c.sector,''), COALESCE(c.region,'')
                FROM interactions i
                JOIN clients c ON c.id = i.client_id
`

// ListFiltered applies the sidebar FilterSet to the interactions x
// clients join. An all-empty filter returns the whole join.
func (r *InteractionRepository) ListFiltered(f models.FilterSet) ([]models.InteractionRow, error) {
	where, args := interactionFilterWhere(f)
	q := interactionJoin + where + " ORDER BY i.interaction_date DESC, i.id DESC"

	key := database.Key(q, args...)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]models.InteractionRow), nil
	}
	rows, err := r.store.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	var res []models.InteractionRow
	for rows.Next() {
		var ir models.InteractionRow
		if err := rows.Scan(
			&ir.ID, &ir.ClientID, &ir.ActionType, &ir.Notes, &ir.InteractionDate,
			&ir.Outcome, &ir.NextActionDate, &ir.AssignedTo, &ir.CampaignID,
			&ir.CreatedAt, &ir.ClientName, &ir.Sector, &ir.Region,
		); err != nil {
			return nil, err
		}
		res = append(res, ir)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

// CountFiltered mirrors ListFiltered for the KPI row.
func (r *InteractionRepository) CountFiltered(f models.FilterSet) (int, error) {
	where, args := interactionFilterWhere(f)
	q := `
                SELECT COUNT(*)
                FROM interactions i
                JOIN clients c ON c.id = i.client_id
        ` + where
	var n int
	if err := r.store.QueryRow(q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return n, nil
}

// DailyCounts groups filtered interactions per day for the trend line.
func (r *InteractionRepository) DailyCounts(f models.FilterSet) ([]models.TimeseriesPoint, error) {
	where, args := interactionFilterWhere(f)
	q := `
                SELECT substr(i.interaction_date, 1, 10) AS day, COUNT(*)
                FROM interactions i
                JOIN clients c ON c.id = i.client_id
        ` + where + `
                GROUP BY day
                ORDER BY day
        `
	key := database.Key(q, args...)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]models.TimeseriesPoint), nil
	}
	rows, err := r.store.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("interaction daily counts: %w", err)
	}
	defer rows.Close()

	var res []models.TimeseriesPoint
	for rows.Next() {
		var p models.TimeseriesPoint
		if err := rows.Scan(&p.Day, &p.Count); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

// Crosstab counts filtered interactions per (sector, action_type)
// pair for the heatmap.
func (r *InteractionRepository) Crosstab(f models.FilterSet) ([]models.HeatmapCell, error) {
	where, args := interactionFilterWhere(f)
	q := `
                SELECT COALESCE(c.sector,''), i.action_type, COUNT(*)
                FROM interactions i
                JOIN clients c ON c.id = i.client_id
        ` + where + `
                GROUP BY c.sector, i.action_type
                ORDER BY c.sector, i.action_type
        `
	key := database.Key(q, args...)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]models.HeatmapCell), nil
	}
	rows, err := r.store.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("interaction crosstab: %w", err)
	}
	defer rows.Close()

	var res []models.HeatmapCell
	for rows.Next() {
		var cell models.HeatmapCell
		if err := rows.Scan(&cell.Sector, &cell.ActionType, &cell.Count); err != nil {
			return nil, err
		}
		res = append(res, cell)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

// CountsByActionType tallies interactions per action type between two
// ISO dates (either may be empty).
func (r *InteractionRepository) CountsByActionType(start, end string) ([]models.LabelCount, error) {
	var (
		conds []string
		args  []any
		argID = 1
	)
	if start != "" {
		conds = append(conds, fmt.Sprintf("interaction_date >= $%d", argID))
		args = append(args, start)
		argID++
	}
	if end != "" {
		conds = append(conds, fmt.Sprintf("interaction_date <= $%d", argID))
		args = append(args, end)
		argID++
	}
	q := `SELECT action_type, COUNT(*) FROM interactions`
	if len(conds) > 0 {
		q += " WHERE " + conds[0]
		for _, c := range conds[1:] {
			q += " AND " + c
		}
	}
	q += " GROUP BY action_type ORDER BY COUNT(*) DESC"

	rows, err := r.store.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("interactions by action type: %w", err)
	}
	defer rows.Close()

	var res []models.LabelCount
	for rows.Next() {
		var lc models.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		res = append(res, lc)
	}
	return res, rows.Err()
}

// CountProposals counts Proposal interactions logged by a user inside
// a calendar month, for target tracking.
func (r *InteractionRepository) CountProposals(userID, month, year int) (int, error) {
	const q = `
                SELECT COUNT(*)
                FROM interactions
                WHERE action_type = 'Proposal'
                  AND assigned_to = $1
                  AND EXTRACT(MONTH FROM to_date(interaction_date, 'YYYY-MM-DD')) = $2
                  AND EXTRACT(YEAR FROM to_date(interaction_date, 'YYYY-MM-DD')) = $3
        `
	var n int
	if err := r.store.QueryRow(q, userID, month, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("count proposals: %w", err)
	}
	return n, nil
}

func (r *InteractionRepository) Count() (int, error) {
	var n int
	if err := r.store.QueryRow(`SELECT COUNT(*) FROM interactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return n, nil
}
