package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard-api/internal/core/auth"
	"taskboard-api/internal/service"
	"taskboard-api/internal/testutil"
	"taskboard-api/internal/transport/http/handler"
	"taskboard-api/internal/transport/http/router"
)

// newTestEngine 在内存仓库上拉起完整引擎，覆盖中间件链与路由
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwter := &auth.JWTer{Secret: []byte("e2e-secret"), Issuer: "taskboard", TTL: time.Hour}

	users := testutil.NewMemUserRepo()
	boards := testutil.NewMemBoardRepo()
	tasks := testutil.NewMemTaskRepo()
	labels := testutil.NewMemLabelRepo()
	comments := testutil.NewMemCommentRepo()
	collabs := testutil.NewMemCollaboratorRepo()

	userSvc := service.NewUserService(users, jwter)
	boardSvc := service.NewBoardService(boards, users, nil)
	taskSvc := service.NewTaskService(tasks, users, boards, labels, nil)
	labelSvc := service.NewLabelService(labels)
	commentSvc := service.NewCommentService(comments, users, tasks)
	collabSvc := service.NewCollaboratorService(collabs, users, boards)

	return router.NewAPIEngine(zap.NewNop(), jwter, router.Handlers{
		Users:         handler.NewUserHandler(userSvc),
		Boards:        handler.NewBoardHandler(boardSvc),
		Tasks:         handler.NewTaskHandler(taskSvc),
		Labels:        handler.NewLabelHandler(labelSvc),
		Comments:      handler.NewCommentHandler(commentSvc),
		Collaborators: handler.NewCollaboratorHandler(collabSvc),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) (id, token string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	id, _ = res["id"].(string)
	token, _ = res["token"].(string)
	require.NotEmpty(t, id)
	require.NotEmpty(t, token)
	return id, token
}

func TestRegisterAndLoginFlow(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", gin.H{
		"name":     "John",
		"email":    "john@example.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.Equal(t, "John", reg["name"])
	assert.Equal(t, "john@example.com", reg["email"])
	assert.NotEmpty(t, reg["token"])
	assert.NotContains(t, w.Body.String(), "password")

	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "john@example.com",
		"password": "pw123456",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "john@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r := newTestEngine(t)

	// 缺口令
	w := doJSON(t, r, http.MethodPost, "/api/users", "", gin.H{
		"name":  "John",
		"email": "john@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":400`)

	// 重复邮箱
	registerUser(t, r, "John", "dup@example.com")
	w = doJSON(t, r, http.MethodPost, "/api/users", "", gin.H{
		"name":     "Jane",
		"email":    "dup@example.com",
		"password": "pw123456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(t, r, http.MethodGet, "/api/boards", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/boards", "", gin.H{"name": "X", "owner": "u"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBoardLifecycle(t *testing.T) {
	r := newTestEngine(t)
	ownerID, token := registerUser(t, r, "John", "john@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/boards", token, gin.H{
		"name":        "Sprint 1",
		"description": "first sprint",
		"owner":       ownerID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	boardID, _ := created["id"].(string)
	require.NotEmpty(t, boardID)
	assert.Equal(t, "Sprint 1", created["name"])

	// 读侧 owner 展开为 {id,name,email}
	w = doJSON(t, r, http.MethodGet, "/api/boards/"+boardID, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	owner, ok := view["owner"].(map[string]any)
	require.True(t, ok, "owner should be an object: %s", w.Body.String())
	assert.Equal(t, ownerID, owner["id"])
	assert.Equal(t, "John", owner["name"])
	assert.Equal(t, "john@example.com", owner["email"])

	w = doJSON(t, r, http.MethodPut, "/api/boards/"+boardID, token, gin.H{
		"name": "Sprint 1 (closed)",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Sprint 1 (closed)")
	assert.Contains(t, w.Body.String(), "first sprint") // 未提字段保持原值

	w = doJSON(t, r, http.MethodDelete, "/api/boards/"+boardID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/boards/"+boardID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var errBody map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.EqualValues(t, 404, errBody["code"])
	assert.NotEmpty(t, errBody["message"])
	assert.NotEmpty(t, errBody["timestamp"])
}

func TestTaskPopulationAcrossResources(t *testing.T) {
	r := newTestEngine(t)
	ownerID, token := registerUser(t, r, "John", "john@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/boards", token, gin.H{
		"name": "Sprint 1", "owner": ownerID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var board map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	boardID := board["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/labels", token, gin.H{
		"name": "bug", "color": "#ff0000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var label map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &label))
	labelID := label["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/tasks", token, gin.H{
		"name":        "Fix login",
		"description": "session drops",
		"owner":       ownerID,
		"board":       boardID,
		"label":       labelID,
		"status":      "todo",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var task map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	taskID := task["id"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/tasks/"+taskID, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	ownerRef := view["owner"].(map[string]any)
	boardRef := view["board"].(map[string]any)
	labelRef := view["label"].(map[string]any)
	assert.Equal(t, "John", ownerRef["name"])
	assert.Equal(t, "Sprint 1", boardRef["name"])
	assert.Equal(t, "bug", labelRef["name"])
	assert.Equal(t, "#ff0000", labelRef["color"])

	// 枚举之外的状态被拒
	w = doJSON(t, r, http.MethodPut, "/api/tasks/"+taskID, token, gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/tasks/"+taskID, token, gin.H{"status": "done"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"done"`)
}

func TestGetAllReturnsEveryRecord(t *testing.T) {
	r := newTestEngine(t)
	aID, aTok := registerUser(t, r, "Alice", "alice@example.com")
	bID, _ := registerUser(t, r, "Bob", "bob@example.com")

	for i, owner := range []string{aID, bID, aID} {
		w := doJSON(t, r, http.MethodPost, "/api/boards", aTok, gin.H{
			"name": fmt.Sprintf("board-%d", i), "owner": owner,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// 列表不按调用者过滤
	w := doJSON(t, r, http.MethodGet, "/api/boards", aTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)
}

func TestHealthOpen(t *testing.T) {
	r := newTestEngine(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
