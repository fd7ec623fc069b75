package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

type TaskRepository struct {
	store *database.Store
}

func NewTaskRepository(store *database.Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) Create(task *models.Task) (int64, error) {
	const q = `
                INSERT INTO tasks (client_id, interaction_id, title, due_date, status, assigned_to)
                VALUES ($1, $2, $3, $4, $5, $6)
                RETURNING id, created_at
        `
	var id int64
	err := r.store.QueryRow(q,
		task.ClientID, task.InteractionID, task.Title, task.DueDate, task.Status, task.AssignedTo,
	).Scan(&id, &task.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}
	r.store.InvalidateReads()
	return id, nil
}

func (r *TaskRepository) GetByID(id int) (*models.Task, error) {
	const q = `
                SELECT id, client_id, interaction_id, title, due_date, status, assigned_to, created_at
                FROM tasks
                WHERE id=$1
        `
	var t models.Task
	err := r.store.QueryRow(q, id).Scan(
		&t.ID, &t.ClientID, &t.InteractionID, &t.Title, &t.DueDate, &t.Status, &t.AssignedTo, &t.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) FindAll(filter models.TaskFilter) ([]models.Task, error) {
	baseQuery := `
                SELECT id, client_id, interaction_id, title, due_date, status, assigned_to, created_at
                FROM tasks`

	conditions := []string{}
	args := []any{}
	argID := 1

	if filter.AssignedTo != nil {
		conditions = append(conditions, fmt.Sprintf("assigned_to = $%d", argID))
		args = append(args, *filter.AssignedTo)
		argID++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}
	if filter.DueBefore != nil {
		conditions = append(conditions, fmt.Sprintf("due_date <= $%d", argID))
		args = append(args, *filter.DueBefore)
		argID++
	}

	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY due_date, id"

	key := database.Key(baseQuery, args...)
	if v, ok := r.store.Cache.Get(key); ok {
		return v.([]models.Task), nil
	}
	rows, err := r.store.Query(baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.ClientID, &t.InteractionID, &t.Title, &t.DueDate, &t.Status, &t.AssignedTo, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.store.Cache.Set(key, tasks)
	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(id int, status string) error {
	if _, err := r.store.Exec(`UPDATE tasks SET status=$1 WHERE id=$2`, status, id); err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	r.store.InvalidateReads()
	return nil
}

func (r *TaskRepository) Count() (int, error) {
	var n int
	if err := r.store.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}
