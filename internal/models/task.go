package models

import "database/sql"

// Task status constants
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// DateLayout is the ISO calendar date format completion dates are stored in.
const DateLayout = "2006-01-02"

type Task struct {
	ID            int64          `db:"id"`
	UserID        int64          `db:"user_id"`
	Task          string         `db:"task"`
	Category      string         `db:"category"`
	Notes         sql.NullString `db:"notes"`
	Status        string         `db:"status"`
	DateCompleted sql.NullString `db:"date_completed"`
}

func (t Task) Completed() bool {
	return t.Status == TaskStatusCompleted
}
