package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error 带 HTTP 状态码的业务错误，服务层统一返回这个类型。
// Details 是给调用方看的；cause 只进日志，永不出网
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	switch {
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	case e.Details != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func New(code int, message, details string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

func BadRequest(message string, details ...string) *Error {
	return New(http.StatusBadRequest, message, first(details))
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, "")
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, "")
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, "")
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message, "")
}

func Internal(message string, err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message, cause: err}
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

// From 提取链路中的 *Error；不是业务错误返回 nil
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsCode 判断错误是否携带指定状态码
func IsCode(err error, code int) bool {
	ae := From(err)
	return ae != nil && ae.Code == code
}
