package repositories

import (
	"database/sql"
	"fmt"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type UserRepository struct {
	store *database.Store
}

func NewUserRepository(store *database.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(user *models.User) (int64, error) {
	const q = `
                INSERT INTO users (username, password_hash, role)
                VALUES ($1, $2, $3)
                RETURNING id, created_at
        `
	var id int64
	if err := r.store.QueryRow(q, user.Username, user.PasswordHash, user.Role).Scan(&id, &user.CreatedAt); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	const q = `
                SELECT id, username, password_hash, role, created_at
                FROM users
                WHERE username=$1
        `
	var u models.User
	if err := r.store.QueryRow(q, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id int) (*models.User, error) {
	const q = `
                SELECT id, username, password_hash, role, created_at
                FROM users
                WHERE id=$1
        `
	var u models.User
	if err := r.store.QueryRow(q, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List returns every user ordered by username, as the sidebar rep
// picker consumes it.
func (r *UserRepository) List() ([]*models.User, error) {
	const q = `
                SELECT id, username, password_hash, role, created_at
                FROM users
                ORDER BY username
        `
	key := database.Key(q)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]*models.User), nil
	}
	rows, err := r.store.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, res)
	return res, nil
}

func (r *UserRepository) Count() (int, error) {
	var n int
	if err := r.store.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
