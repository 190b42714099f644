package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

func newTestRepos(t *testing.T) (repository.UserRepository, repository.TaskRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)

	ctx := context.Background()
	require.NoError(t, users.Init(ctx))
	require.NoError(t, tasks.Init(ctx))
	return users, tasks
}

func TestSqliteUserLifecycle(t *testing.T) {
	users, _ := newTestRepos(t)
	ctx := context.Background()

	user := &domain.User{Username: "alice"}
	id, err := users.Create(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = users.Create(ctx, &domain.User{Username: "alice"})
	require.ErrorIs(t, err, repository.ErrUsernameTaken)

	fetched, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", fetched.Username)

	_, err = users.GetByID(ctx, 99)
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSqliteTaskLifecycle(t *testing.T) {
	users, tasks := newTestRepos(t)
	ctx := context.Background()

	owner := &domain.User{Username: "alice"}
	_, err := users.Create(ctx, owner)
	require.NoError(t, err)

	task := &domain.Task{
		OwnerID: owner.ID,
		Title:   "buy milk",
		Status:  domain.TaskStatusQueued,
	}
	id, err := tasks.Create(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	fetched, err := tasks.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", fetched.Title)
	assert.Equal(t, domain.TaskStatusQueued, fetched.Status)

	description := "two liters"
	patched, err := tasks.Patch(ctx, id, domain.TaskPatch{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "two liters", patched.Description)
	assert.Equal(t, "buy milk", patched.Title)

	require.NoError(t, tasks.Delete(ctx, id))
	require.ErrorIs(t, tasks.Delete(ctx, id), repository.ErrTaskNotFound)
	_, err = tasks.Get(ctx, id)
	require.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestSqliteTaskUnknownOwner(t *testing.T) {
	_, tasks := newTestRepos(t)

	_, err := tasks.Create(context.Background(), &domain.Task{
		OwnerID: 99,
		Title:   "orphan",
		Status:  domain.TaskStatusQueued,
	})
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSqliteTaskIDsNotReused(t *testing.T) {
	users, tasks := newTestRepos(t)
	ctx := context.Background()

	owner := &domain.User{Username: "alice"}
	_, err := users.Create(ctx, owner)
	require.NoError(t, err)

	first := &domain.Task{OwnerID: owner.ID, Title: "first", Status: domain.TaskStatusQueued}
	_, err = tasks.Create(ctx, first)
	require.NoError(t, err)
	require.NoError(t, tasks.Delete(ctx, first.ID))

	second := &domain.Task{OwnerID: owner.ID, Title: "second", Status: domain.TaskStatusQueued}
	_, err = tasks.Create(ctx, second)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}
