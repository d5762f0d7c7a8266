package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/apperr"
)

func newFailContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestFailBusinessErrorCarriesDetails(t *testing.T) {
	c, w := newFailContext(t)
	Fail(c, apperr.BadRequest("invalid request body", "name is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":400`)
	assert.Contains(t, w.Body.String(), "name is required")
	assert.Empty(t, c.Errors)
}

func TestFailInternalHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:3306: connect: connection refused")
	c, w := newFailContext(t)
	Fail(c, apperr.Internal("creation failed", cause))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "creation failed")
	assert.NotContains(t, w.Body.String(), "dial tcp")
	assert.NotContains(t, w.Body.String(), "3306")

	// 原始错误进了日志侧的错误栈
	require.Len(t, c.Errors, 1)
	assert.Contains(t, c.Errors[0].Error(), "dial tcp")
}

func TestFailUnclassifiedErrorIsGeneric500(t *testing.T) {
	c, w := newFailContext(t)
	Fail(c, errors.New("pq: duplicate key value violates unique constraint"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
	assert.NotContains(t, w.Body.String(), "pq:")
	require.Len(t, c.Errors, 1)
}
