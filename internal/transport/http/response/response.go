package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/apperr"
)

// ErrorBody 统一错误响应体
type ErrorBody struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

func newBody(code int, message, details string) ErrorBody {
	return ErrorBody{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Fail 业务错误按自带状态码返回；5xx 与未分类错误只回笼统文案，
// 原始错误挂到 gin 的错误栈由访问日志落盘，不向调用方泄漏
func Fail(c *gin.Context, err error) {
	if ae := apperr.From(err); ae != nil {
		if ae.Code >= http.StatusInternalServerError {
			_ = c.Error(err)
			c.AbortWithStatusJSON(ae.Code, newBody(ae.Code, ae.Message, ""))
			return
		}
		c.AbortWithStatusJSON(ae.Code, newBody(ae.Code, ae.Message, ae.Details))
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		newBody(http.StatusInternalServerError, "Internal Server Error", ""))
}

// Abort 给中间件用的直接挡板
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, newBody(code, message, ""))
}
