package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
	"task-tracker/internal/repository/memory"
)

func newServices(t *testing.T) (UserService, TaskService) {
	t.Helper()
	store := memory.NewStore()
	return NewUserService(memory.NewUserRepository(store)), NewTaskService(memory.NewTaskRepository(store))
}

func TestCreateTaskStartsQueued(t *testing.T) {
	users, tasks := newServices(t)
	ctx := context.Background()

	owner, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	task, err := tasks.CreateTask(ctx, owner.ID, "buy milk", "two liters")
	require.NoError(t, err)

	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, owner.ID, task.OwnerID)
	assert.Equal(t, domain.TaskStatusQueued, task.Status)
	assert.Equal(t, "two liters", task.Description)
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	users, tasks := newServices(t)
	ctx := context.Background()

	owner, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = tasks.CreateTask(ctx, owner.ID, "", "")
	require.Error(t, err)
}

func TestCreateTaskUnknownOwner(t *testing.T) {
	_, tasks := newServices(t)

	_, err := tasks.CreateTask(context.Background(), 99, "orphan", "")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestCancelTask(t *testing.T) {
	users, tasks := newServices(t)
	ctx := context.Background()

	owner, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	task, err := tasks.CreateTask(ctx, owner.ID, "buy milk", "")
	require.NoError(t, err)

	cancelled, err := tasks.CancelTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCancelled, cancelled.Status)
	assert.Equal(t, task.Title, cancelled.Title)

	_, err = tasks.CancelTask(ctx, 42)
	require.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestListTasksOptionalOwnerFilter(t *testing.T) {
	users, tasks := newServices(t)
	ctx := context.Background()

	alice, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)
	bob, err := users.CreateUser(ctx, "bobby")
	require.NoError(t, err)

	_, err = tasks.CreateTask(ctx, alice.ID, "a1", "")
	require.NoError(t, err)
	_, err = tasks.CreateTask(ctx, bob.ID, "b1", "")
	require.NoError(t, err)

	all, err := tasks.ListTasks(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := tasks.ListTasks(ctx, &bob.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "b1", filtered[0].Title)
}

func TestPatchTaskRejectsUnknownStatus(t *testing.T) {
	users, tasks := newServices(t)
	ctx := context.Background()

	owner, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	task, err := tasks.CreateTask(ctx, owner.ID, "buy milk", "")
	require.NoError(t, err)

	bogus := domain.TaskStatus("paused")
	_, err = tasks.PatchTask(ctx, task.ID, domain.TaskPatch{Status: &bogus})
	require.Error(t, err)

	unchanged, err := tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusQueued, unchanged.Status)
}

func TestCreateUserConflict(t *testing.T) {
	users, _ := newServices(t)
	ctx := context.Background()

	_, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = users.CreateUser(ctx, "alice")
	require.ErrorIs(t, err, repository.ErrUsernameTaken)
}
