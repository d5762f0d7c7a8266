package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/testutil"
)

type commentFixture struct {
	svc      *CommentService
	users    *testutil.MemUserRepo
	tasks    *testutil.MemTaskRepo
	comments *testutil.MemCommentRepo
}

func newCommentFixture() *commentFixture {
	f := &commentFixture{
		users:    testutil.NewMemUserRepo(),
		tasks:    testutil.NewMemTaskRepo(),
		comments: testutil.NewMemCommentRepo(),
	}
	f.svc = NewCommentService(f.comments, f.users, f.tasks)
	f.users.Users["u-1"] = domain.User{ID: "u-1", Name: "John", Email: "john@x.com"}
	f.tasks.Tasks["t-1"] = domain.Task{ID: "t-1", Name: "Fix login"}
	return f
}

func TestCommentFindAllPopulatesUserAndTask(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	for _, content := range []string{"looks broken", "repro attached"} {
		_, err := f.svc.Create(ctx, CommentInput{Content: content, User: "u-1", Task: "t-1"})
		require.NoError(t, err)
	}

	views, err := f.svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, "John", v.User.Name)
		assert.Equal(t, "Fix login", v.Task.Name)
	}
}

// 批量装配一次取齐，task 仓库挂掉时整个列表失败而不是静默缺引用
func TestCommentFindAllBatchHitsTaskRepoOnce(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CommentInput{Content: "hi", User: "u-1", Task: "t-1"})
	require.NoError(t, err)

	f.tasks.Err = testutil.ErrForced
	_, err = f.svc.FindAll(ctx)
	assert.Error(t, err)
}

func TestCommentFindAllToleratesDanglingTask(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CommentInput{Content: "orphan", User: "u-1", Task: "t-gone"})
	require.NoError(t, err)

	views, err := f.svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "t-gone", views[0].Task.ID)
	assert.Empty(t, views[0].Task.Name)
	assert.Equal(t, "John", views[0].User.Name)
}
