package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// UserRepository defines storage operations for User records. Users are
// immutable once created and cannot be deleted.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
