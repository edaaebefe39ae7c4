package response

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// AppError 接口层错误，Code 同时作为 HTTP 状态与 status_code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误，非法状态码归为 500
func WrapError(code int, message string, err error) *AppError {
	if code < CodeBadRequest || code > 599 {
		code = CodeInternal
	}
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// AsAppError 从错误链中取出 AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Fail 按 AppError 输出错误响应
func Fail(c *gin.Context, appErr *AppError) {
	if appErr == nil {
		Error(c, CodeInternal, "伺服器內部錯誤")
		return
	}
	Error(c, appErr.Code, appErr.Message)
}
