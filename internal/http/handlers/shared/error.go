package shared

import (
	"errors"

	"github.com/fixture-next/internal/http/response"
	"github.com/fixture-next/internal/logger"
	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		log := RequestLog(c)
		if code >= response.CodeInternal {
			log.Errorw("handler_error", "code", appErr.Code, "message", appErr.Message, "error", err)
		} else {
			log.Warnw("handler_rejected", "code", appErr.Code, "message", appErr.Message, "error", err)
		}
	}
	response.Fail(c, appErr)
}

// RespondServiceError 按业务错误类型映射 HTTP 状态
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrConstraint),
		errors.Is(err, service.ErrProtectedUser),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrEmailRecipientRejected),
		errors.Is(err, service.ErrEmailServiceNotConfigured):
		RespondError(c, response.CodeBadRequest, service.ErrorDetail(err), err)
	case errors.Is(err, service.ErrNotFound):
		RespondError(c, response.CodeNotFound, service.ErrorDetail(err), err)
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, response.CodeUnauthorized, service.ErrorDetail(err), err)
	case errors.Is(err, models.ErrConnection):
		RespondError(c, response.CodeInternal, "數據庫連線失敗", err)
	default:
		RespondError(c, response.CodeInternal, "伺服器內部錯誤", err)
	}
}
