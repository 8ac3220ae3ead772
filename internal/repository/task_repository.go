// internal/repository/task_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tracker/internal/models"
)

type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a pending task and returns the generated id.
func (r *TaskRepository) Create(ctx context.Context, t *TaskInput) (int64, error) {
	if r.db.DriverName() == "postgres" {
		var id int64
		query := r.db.Rebind(`INSERT INTO tasks (user_id, task, category, notes, status) VALUES (?, ?, ?, ?, ?) RETURNING id`)
		if err := r.db.QueryRowxContext(ctx, query, t.UserID, t.Task, t.Category, t.Notes, models.TaskStatusPending).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert task: %w", err)
		}
		return id, nil
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, task, category, notes, status) VALUES (?, ?, ?, ?, ?)`,
		t.UserID, t.Task, t.Category, t.Notes, models.TaskStatusPending)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return id, nil
}

// ListByUser returns the user's tasks newest-first. The slice is never nil.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	tasks := []models.Task{}
	query := r.db.Rebind(`SELECT id, user_id, task, category, notes, status, date_completed
		FROM tasks WHERE user_id = ? ORDER BY id DESC`)
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Complete marks the task completed and stamps date_completed, but only when
// the task belongs to userID. Returns the number of rows updated; zero means
// no such task is owned by the caller. Re-completing is allowed and simply
// re-stamps the date.
func (r *TaskRepository) Complete(ctx context.Context, userID, taskID int64, date string) (int64, error) {
	query := r.db.Rebind(`UPDATE tasks SET status = ?, date_completed = ? WHERE id = ? AND user_id = ?`)
	res, err := r.db.ExecContext(ctx, query, models.TaskStatusCompleted, date, taskID, userID)
	if err != nil {
		return 0, fmt.Errorf("complete task: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("complete task: %w", err)
	}
	return rows, nil
}

// TaskInput carries the fields needed to insert a task.
type TaskInput struct {
	UserID   int64
	Task     string
	Category string
	Notes    string
}
