package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/testutil"
)

type taskFixture struct {
	svc    *TaskService
	users  *testutil.MemUserRepo
	boards *testutil.MemBoardRepo
	labels *testutil.MemLabelRepo
	tasks  *testutil.MemTaskRepo
}

func newTaskFixture() *taskFixture {
	f := &taskFixture{
		users:  testutil.NewMemUserRepo(),
		boards: testutil.NewMemBoardRepo(),
		labels: testutil.NewMemLabelRepo(),
		tasks:  testutil.NewMemTaskRepo(),
	}
	f.svc = NewTaskService(f.tasks, f.users, f.boards, f.labels, nil)
	f.users.Users["u-1"] = domain.User{ID: "u-1", Name: "John", Email: "john@x.com"}
	f.boards.Boards["b-1"] = domain.Board{ID: "b-1", Name: "Sprint 1", OwnerID: "u-1"}
	f.labels.Labels["l-1"] = domain.Label{ID: "l-1", Name: "bug", Color: "#ff0000"}
	return f
}

func TestTaskCreateEchoesInput(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), TaskInput{
		Name:        "Fix login",
		Description: "login breaks on empty email",
		Owner:       "u-1",
		Board:       "b-1",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityHigh,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Fix login", task.Name)
	assert.Equal(t, "u-1", task.OwnerID)
	assert.Equal(t, "b-1", task.BoardID)
	assert.Equal(t, "high", task.Priority)
}

func TestTaskCreateDefaults(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), TaskInput{
		Name: "t", Description: "d", Owner: "u-1", Board: "b-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
}

func TestTaskFindByIDPopulates(t *testing.T) {
	f := newTaskFixture()
	ctx := context.Background()

	task, err := f.svc.Create(ctx, TaskInput{
		Name: "t", Description: "d", Owner: "u-1", Board: "b-1",
		Status: domain.StatusInProgress, Label: "l-1",
	})
	require.NoError(t, err)

	view, err := f.svc.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserRef{ID: "u-1", Name: "John", Email: "john@x.com"}, view.Owner)
	assert.Equal(t, domain.BoardRef{ID: "b-1", Name: "Sprint 1"}, view.Board)
	require.NotNil(t, view.Label)
	assert.Equal(t, "bug", view.Label.Name)
}

func TestTaskFindByIDOrphanRefs(t *testing.T) {
	f := newTaskFixture()
	ctx := context.Background()

	// owner 不存在：读侧容忍悬空引用，只回 id
	task, err := f.svc.Create(ctx, TaskInput{
		Name: "t", Description: "d", Owner: "ghost", Board: "b-1",
	})
	require.NoError(t, err)

	view, err := f.svc.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserRef{ID: "ghost"}, view.Owner)
	assert.Nil(t, view.Label)
}

func TestTaskFindByIDNotFound(t *testing.T) {
	f := newTaskFixture()
	_, err := f.svc.FindByID(context.Background(), "missing")
	assert.True(t, apperr.IsCode(err, http.StatusNotFound))
}

func TestTaskFindAllPopulates(t *testing.T) {
	f := newTaskFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.svc.Create(ctx, TaskInput{
			Name: "t", Description: "d", Owner: "u-1", Board: "b-1", Label: "l-1",
		})
		require.NoError(t, err)
	}

	views, err := f.svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, "John", v.Owner.Name)
		assert.Equal(t, "Sprint 1", v.Board.Name)
		require.NotNil(t, v.Label)
		assert.Equal(t, "bug", v.Label.Name)
	}
}

func TestTaskUpdateMergesFields(t *testing.T) {
	f := newTaskFixture()
	ctx := context.Background()

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	task, err := f.svc.Create(ctx, TaskInput{
		Name: "t", Description: "d", Owner: "u-1", Board: "b-1",
		Status: domain.StatusTodo, DueDate: &due,
	})
	require.NoError(t, err)

	status := domain.StatusDone
	updated, err := f.svc.Update(ctx, task.ID, TaskUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDone, updated.Status)
	assert.Equal(t, "t", updated.Name)
	assert.Equal(t, "d", updated.Description)
	require.NotNil(t, updated.DueDate)
	assert.True(t, due.Equal(*updated.DueDate))
}

func TestTaskUpdateNotFound(t *testing.T) {
	f := newTaskFixture()
	name := "x"
	_, err := f.svc.Update(context.Background(), "missing", TaskUpdate{Name: &name})
	assert.True(t, apperr.IsCode(err, http.StatusNotFound))
}

func TestTaskDeleteReturnsRemoved(t *testing.T) {
	f := newTaskFixture()
	ctx := context.Background()

	task, err := f.svc.Create(ctx, TaskInput{Name: "t", Description: "d", Owner: "u-1", Board: "b-1"})
	require.NoError(t, err)

	deleted, err := f.svc.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)

	_, err = f.svc.FindByID(ctx, task.ID)
	assert.True(t, apperr.IsCode(err, http.StatusNotFound))

	_, err = f.svc.Delete(ctx, task.ID)
	assert.True(t, apperr.IsCode(err, http.StatusNotFound))
}
