package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// TaskRepository exposes storage operations for Task records.
//
// Create validates the owner against the user collection inside the same
// critical section (or constraint check) as the insert, so a task never
// references a user that did not exist at creation time.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Patch(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
