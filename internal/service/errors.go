package service

import (
	"errors"
	"strings"
)

// 业务错误，handler 层通过 errors.Is 统一映射 HTTP 状态
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConstraint         = errors.New("constraint violation")
	ErrProtectedUser      = errors.New("Cannot delete default admin")
)

// 邮件相关错误
var (
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)

// ErrorDetail 去掉业务错误前缀，返回可直接展示的说明
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}
	message := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrNotFound, ErrInvalidCredentials, ErrConstraint} {
		if !errors.Is(err, sentinel) {
			continue
		}
		if detail, ok := strings.CutPrefix(message, sentinel.Error()+": "); ok {
			return detail
		}
	}
	return message
}
