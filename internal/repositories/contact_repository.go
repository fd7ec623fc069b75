package repositories

import (
	"fmt"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type ContactRepository struct {
	store *database.Store
}

func NewContactRepository(store *database.Store) *ContactRepository {
	return &ContactRepository{store: store}
}

func (r *ContactRepository) Create(contact *models.Contact) (int64, error) {
	const q = `
                INSERT INTO contacts (client_id, name, designation, phone, email, linkedin)
                VALUES ($1, $2, $3, $4, $5, $6)
                RETURNING id, created_at
        `
	var id int64
	err := r.store.QueryRow(q,
		contact.ClientID, contact.Name, contact.Designation,
		contact.Phone, contact.Email, contact.LinkedIn,
	).Scan(&id, &contact.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create contact: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

func (r *ContactRepository) ListByClient(clientID int) ([]*models.Contact, error) {
	const q = `
                SELECT id, client_id, name, COALESCE(designation,''), COALESCE(phone,''),
                       COALESCE(email,''), COALESCE(linkedin,''), created_at
                FROM contacts
                WHERE client_id=$1
                ORDER BY name
        `
	key := database.Key(q, clientID)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]*models.Contact), nil
	}
	rows, err := r.store.Query(q, clientID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var res []*models.Contact
	for rows.Next() {
		var ct models.Contact
		if err := rows.Scan(&ct.ID, &ct.ClientID, &ct.Name, &ct.Designation, &ct.Phone, &ct.Email, &ct.LinkedIn, &ct.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &ct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

func (r *ContactRepository) Count() (int, error) {
	var n int
	if err := r.store.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}
