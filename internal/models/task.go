package models

import "time"

type Task struct {
	ID            int       `json:"id"`
	ClientID      *int      `json:"client_id"`
	InteractionID *int      `json:"interaction_id"`
	Title         string    `json:"title"`
	DueDate       string    `json:"due_date"`
	Status        string    `json:"status"`
	AssignedTo    *int      `json:"assigned_to"`
	CreatedAt     time.Time `json:"created_at"`
}

var TaskStatuses = []string{"Open", "In Progress", "Done"}

func ValidTaskStatus(v string) bool { return oneOf(TaskStatuses, v) }

// TaskFilter narrows task listings; nil fields are ignored.
type TaskFilter struct {
	AssignedTo *int
	Status     *string
	DueBefore  *string // ISO date, inclusive
}
