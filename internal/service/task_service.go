package service

import (
	"context"
	"errors"

	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

// TaskService coordinates task level operations backed by repositories.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID int64, title, description string) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context, ownerID *int64) ([]domain.Task, error)
	PatchTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	CancelTask(ctx context.Context, id int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) CreateTask(ctx context.Context, ownerID int64, title, description string) (*domain.Task, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}

	task := &domain.Task{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      domain.TaskStatusQueued,
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.Get(ctx, id)
}

func (s *taskService) ListTasks(ctx context.Context, ownerID *int64) ([]domain.Task, error) {
	if ownerID != nil {
		return s.tasks.ListByOwner(ctx, *ownerID)
	}
	return s.tasks.List(ctx)
}

func (s *taskService) PatchTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, errors.New("unknown task status")
	}
	return s.tasks.Patch(ctx, id, patch)
}

func (s *taskService) CancelTask(ctx context.Context, id int64) (*domain.Task, error) {
	status := domain.TaskStatusCancelled
	return s.tasks.Patch(ctx, id, domain.TaskPatch{Status: &status})
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}
