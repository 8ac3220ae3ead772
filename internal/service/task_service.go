// internal/service/task_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tracker/internal/models"
	"tracker/internal/repository"
)

// DefaultCategory is assigned when a task is created without a category.
const DefaultCategory = "General"

// TaskService wraps task business logic over the task repository.
type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create inserts a pending task for the user and returns its id.
func (s *TaskService) Create(ctx context.Context, userID int64, text, category, notes string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, &ValidationError{Msg: "Task name cannot be empty."}
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	id, err := s.tasks.Create(ctx, &repository.TaskInput{
		UserID:   userID,
		Task:     text,
		Category: category,
		Notes:    strings.TrimSpace(notes),
	})
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}
	return id, nil
}

// List returns all of the user's tasks, newest first.
func (s *TaskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

// Complete marks the task completed with today's date. Completion is one-way;
// calling it again on an already-completed task re-stamps the date, matching
// how the tracker has always behaved.
func (s *TaskService) Complete(ctx context.Context, userID, taskID int64, today time.Time) error {
	rows, err := s.tasks.Complete(ctx, userID, taskID, today.Format(models.DateLayout))
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}
