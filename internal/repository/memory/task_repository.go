package memory

import (
	"context"
	"sort"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) repository.TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) Init(ctx context.Context) error { return nil }

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// owner check and insert happen under the same lock
	if _, ok := s.users[task.OwnerID]; !ok {
		return 0, repository.ErrUserNotFound
	}

	s.taskSeq++
	now := time.Now().UTC()
	task.ID = s.taskSeq
	task.CreatedAt = now
	task.UpdatedAt = now

	stored := *task
	s.tasks[task.ID] = &stored
	return task.ID, nil
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*domain.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectTasks(s, func(*domain.Task) bool { return true }), nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return collectTasks(s, func(t *domain.Task) bool { return t.OwnerID == ownerID }), nil
}

// collectTasks must be called with the store lock held.
func collectTasks(s *Store, keep func(*domain.Task) bool) []domain.Task {
	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if keep(task) {
			tasks = append(tasks, *task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

func (r *TaskRepository) Patch(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	task.UpdatedAt = time.Now().UTC()

	copied := *task
	return &copied, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}
