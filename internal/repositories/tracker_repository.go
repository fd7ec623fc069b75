package repositories

import (
	"fmt"
	"strings"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type TrackerRepository struct {
	store *database.Store
}

func NewTrackerRepository(store *database.Store) *TrackerRepository {
	return &TrackerRepository{store: store}
}

const trackerInsert = `
                INSERT INTO sales_campaign_tracker (week, date_range, company_name, address, contact_person,
                                                    telephone, email, proposal_status, site_visit,
                                                    follow_up_comments, sector)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

func (r *TrackerRepository) Create(e *models.TrackerEntry) (int64, error) {
	const q = trackerInsert + ` RETURNING id, created_at`
	var id int64
	err := r.store.QueryRow(q,
		e.Week, e.DateRange, e.CompanyName, e.Address, e.ContactPerson,
		e.Telephone, e.Email, e.ProposalStatus, e.SiteVisit, e.FollowUpComments, e.Sector,
	).Scan(&id, &e.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create tracker entry: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

// CreateBatch imports many tracker rows in one transaction through
// the store's batch path.
func (r *TrackerRepository) CreateBatch(entries []*models.TrackerEntry) error {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			e.Week, e.DateRange, e.CompanyName, e.Address, e.ContactPerson,
			e.Telephone, e.Email, e.ProposalStatus, e.SiteVisit, e.FollowUpComments, e.Sector,
		})
	}
	if err := r.store.ExecBatch(trackerInsert, rows); err != nil {
		return fmt.Errorf("import tracker entries: %w", err)
	}
	r.store.InvalidateReads()
	return nil
}

func (r *TrackerRepository) List(week, sector string) ([]*models.TrackerEntry, error) {
	base := `
                SELECT id, COALESCE(week,''), COALESCE(date_range,''), COALESCE(company_name,''),
                       COALESCE(address,''), COALESCE(contact_person,''), COALESCE(telephone,''),
                       COALESCE(email,''), COALESCE(proposal_status,''), COALESCE(site_visit,''),
                       COALESCE(follow_up_comments,''), COALESCE(sector,''), created_at
                FROM sales_campaign_tracker`
	var (
		conds []string
		args  []any
		argID = 1
	)
	if week != "" {
		conds = append(conds, fmt.Sprintf("week = $%d", argID))
		args = append(args, week)
		argID++
	}
	if sector != "" {
		conds = append(conds, fmt.Sprintf("sector = $%d", argID))
		args = append(args, sector)
		argID++
	}
	q := base
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"

	key := database.Key(q, args...)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]*models.TrackerEntry), nil
	}
	rows, err := r.store.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tracker entries: %w", err)
	}
	defer rows.Close()

	var res []*models.TrackerEntry
	for rows.Next() {
		var e models.TrackerEntry
		if err := rows.Scan(
			&e.ID, &e.Week, &e.DateRange, &e.CompanyName, &e.Address, &e.ContactPerson,
			&e.Telephone, &e.Email, &e.ProposalStatus, &e.SiteVisit, &e.FollowUpComments,
			&e.Sector, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}
