package repositories

import (
	"database/sql"
	"fmt"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type ClientRepository struct {
	store *database.Store
}

func NewClientRepository(store *database.Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) Create(client *models.Client) (int64, error) {
	const q = `
                INSERT INTO clients (company_name, sector, region, location, size, revenue, potential_value, notes)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                RETURNING id, created_at
        `
	var id int64
	err := r.store.QueryRow(q,
		client.CompanyName, client.Sector, client.Region, client.Location,
		client.Size, client.Revenue, client.PotentialValue, client.Notes,
	).Scan(&id, &client.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

func (r *ClientRepository) GetByID(id int) (*models.Client, error) {
	const q = `
                SELECT id, company_name, COALESCE(sector,''), COALESCE(region,''), COALESCE(location,''),
                       COALESCE(size,''), revenue, potential_value, COALESCE(notes,''), created_at
                FROM clients
                WHERE id=$1
        `
	var c models.Client
	err := r.store.QueryRow(q, id).Scan(
		&c.ID, &c.CompanyName, &c.Sector, &c.Region, &c.Location,
		&c.Size, &c.Revenue, &c.PotentialValue, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List returns every client newest first. The full table is fetched;
// search narrows the result in-process (see ClientService.Search).
func (r *ClientRepository) List() ([]*models.Client, error) {
	const q = `
                SELECT id, company_name, COALESCE(sector,''), COALESCE(region,''), COALESCE(location,''),
                       COALESCE(size,''), revenue, potential_value, COALESCE(notes,''), created_at
                FROM clients
                ORDER BY created_at DESC, id DESC
        `
	key := database.Key(q)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]*models.Client), nil
	}
	rows, err := r.store.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var res []*models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(
			&c.ID, &c.CompanyName, &c.Sector, &c.Region, &c.Location,
			&c.Size, &c.Revenue, &c.PotentialValue, &c.Notes, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

// CountBySector groups all clients by sector, most populous first.
func (r *ClientRepository) CountBySector() ([]models.SectorCount, error) {
	const q = `
                SELECT COALESCE(sector,''), COUNT(*)
                FROM clients
                GROUP BY sector
                ORDER BY COUNT(*) DESC
        `
	key := database.Key(q)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]models.SectorCount), nil
	}
	rows, err := r.store.Query(q)
	if err != nil {
		return nil, fmt.Errorf("count clients by sector: %w", err)
	}
	defer rows.Close()

	var res []models.SectorCount
	for rows.Next() {
		var sc models.SectorCount
		if err := rows.Scan(&sc.Sector, &sc.Count); err != nil {
			return nil, err
		}
		res = append(res, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

// RevenueTotals sums recorded revenue and potential value across all
// clients for the report snapshot.
func (r *ClientRepository) RevenueTotals() (revenue, potential float64, err error) {
	const q = `SELECT COALESCE(SUM(revenue),0), COALESCE(SUM(potential_value),0) FROM clients`
	if err = r.store.QueryRow(q).Scan(&revenue, &potential); err != nil {
		return 0, 0, fmt.Errorf("client revenue totals: %w", err)
	}
	return revenue, potential, nil
}

// Count reports the total number of client rows.
func (r *ClientRepository) Count() (int, error) {
	var n int
	if err := r.store.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// DistinctCounts reports distinct company names and sectors across
// the whole clients table, feeding the dashboard KPI row.
func (r *ClientRepository) DistinctCounts() (companies, sectors int, err error) {
	const q = `
                SELECT COUNT(DISTINCT company_name),
                       COUNT(DISTINCT sector)
                FROM clients
        `
	if err = r.store.QueryRow(q).Scan(&companies, &sectors); err != nil {
		return 0, 0, fmt.Errorf("client distinct counts: %w", err)
	}
	return companies, sectors, nil
}
