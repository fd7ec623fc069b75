package repositories

import (
	"database/sql"
	"fmt"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type CampaignRepository struct {
	store *database.Store
}

func NewCampaignRepository(store *database.Store) *CampaignRepository {
	return &CampaignRepository{store: store}
}

func (r *CampaignRepository) Create(campaign *models.Campaign) (int64, error) {
	const q = `
                INSERT INTO campaigns (name, ctype, start_date, end_date, description)
                VALUES ($1, $2, $3, $4, $5)
                RETURNING id, created_at
        `
	var id int64
	err := r.store.QueryRow(q,
		campaign.Name, campaign.CType, campaign.StartDate, campaign.EndDate, campaign.Description,
	).Scan(&id, &campaign.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create campaign: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

func (r *CampaignRepository) GetByID(id int) (*models.Campaign, error) {
	const q = `
                SELECT id, name, COALESCE(ctype,''), COALESCE(start_date,''), COALESCE(end_date,''),
                       COALESCE(description,''), created_at
                FROM campaigns
                WHERE id=$1
        `
	var cp models.Campaign
	err := r.store.QueryRow(q, id).Scan(&cp.ID, &cp.Name, &cp.CType, &cp.StartDate, &cp.EndDate, &cp.Description, &cp.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &cp, nil
}

func (r *CampaignRepository) List() ([]*models.Campaign, error) {
	const q = `
                SELECT id, name, COALESCE(ctype,''), COALESCE(start_date,''), COALESCE(end_date,''),
                       COALESCE(description,''), created_at
                FROM campaigns
                ORDER BY created_at DESC, id DESC
        `
	key := database.Key(q)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]*models.Campaign), nil
	}
	rows, err := r.store.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var res []*models.Campaign
	for rows.Next() {
		var cp models.Campaign
		if err := rows.Scan(&cp.ID, &cp.Name, &cp.CType, &cp.StartDate, &cp.EndDate, &cp.Description, &cp.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &cp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

func (r *CampaignRepository) Count() (int, error) {
	var n int
	if err := r.store.QueryRow(`SELECT COUNT(*) FROM campaigns`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	return n, nil
}
