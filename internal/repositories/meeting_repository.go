package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type MeetingRepository struct {
	store *database.Store
}

func NewMeetingRepository(store *database.Store) *MeetingRepository {
	return &MeetingRepository{store: store}
}

func (r *MeetingRepository) Create(m *models.Meeting) (int64, error) {
	const q = `
                INSERT INTO meetings (client_id, meeting_date, purpose, notes, next_steps, opportunity_value, status)
                VALUES ($1, $2, $3, $4, $5, $6, $7)
                RETURNING id, created_at
        `
	var id int64
	err := r.store.QueryRow(q,
		m.ClientID, m.MeetingDate, m.Purpose, m.Notes, m.NextSteps, m.OpportunityValue, m.Status,
	).Scan(&id, &m.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create meeting: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

func (r *MeetingRepository) GetByID(id int) (*models.Meeting, error) {
	const q = `
                SELECT id, client_id, meeting_date, COALESCE(purpose,''), COALESCE(notes,''),
                       COALESCE(next_steps,''), opportunity_value, status, created_at
                FROM meetings
                WHERE id=$1
        `
	var m models.Meeting
	err := r.store.QueryRow(q, id).Scan(
		&m.ID, &m.ClientID, &m.MeetingDate, &m.Purpose, &m.Notes,
		&m.NextSteps, &m.OpportunityValue, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	return &m, nil
}

func (r *MeetingRepository) List(clientID int, status string) ([]*models.Meeting, error) {
	base := `
                SELECT id, client_id, meeting_date, COALESCE(purpose,''), COALESCE(notes,''),
                       COALESCE(next_steps,''), opportunity_value, status, created_at
                FROM meetings`
	var (
		conds []string
		args  []any
		argID = 1
	)
	if clientID > 0 {
		conds = append(conds, fmt.Sprintf("client_id = $%d", argID))
		args = append(args, clientID)
		argID++
	}
	if status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", argID))
		args = append(args, status)
		argID++
	}
	q := base
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY meeting_date DESC, id DESC"

	key := database.Key(q, args...)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]*models.Meeting), nil
	}
	rows, err := r.store.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	var res []*models.Meeting
	for rows.Next() {
		var m models.Meeting
		if err := rows.Scan(
			&m.ID, &m.ClientID, &m.MeetingDate, &m.Purpose, &m.Notes,
			&m.NextSteps, &m.OpportunityValue, &m.Status, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

func (r *MeetingRepository) UpdateStatus(id int, status string) error {
	if _, err := r.store.Exec(`UPDATE meetings SET status=$1 WHERE id=$2`, status, id); err != nil {
		return fmt.Errorf("update meeting status: %w", err)
	}
	r.store.InvalidateReads()
	return nil
}

func (r *MeetingRepository) Count() (int, error) {
	var n int
	if err := r.store.QueryRow(`SELECT COUNT(*) FROM meetings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count meetings: %w", err)
	}
	return n, nil
}

// HeldOpportunityValue sums opportunity value over meetings marked
// Held, optionally narrowed to a calendar month.
func (r *MeetingRepository) HeldOpportunityValue(month, year int) (float64, error) {
	q := `SELECT COALESCE(SUM(opportunity_value), 0) FROM meetings WHERE status = 'Held'`
	var args []any
	if month > 0 && year > 0 {
		q += ` AND EXTRACT(MONTH FROM to_date(meeting_date, 'YYYY-MM-DD')) = $1
                       AND EXTRACT(YEAR FROM to_date(meeting_date, 'YYYY-MM-DD')) = $2`
		args = append(args, month, year)
	}
	var total float64
	if err := r.store.QueryRow(q, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("held opportunity value: %w", err)
	}
	return total, nil
}
