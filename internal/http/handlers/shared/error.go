package shared

import (
	"github.com/superman-store/internal/http/response"
	"github.com/superman-store/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if id := response.RequestID(c); id != "" {
		return logger.SW("request_id", id)
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, msg string, err error) {
	RespondAppError(c, response.WrapError(code, msg, err))
}

// RespondAppError 输出 AppError；5xx 记录 error 级别日志，其余记录 debug
func RespondAppError(c *gin.Context, appErr *response.AppError) {
	if appErr.Err != nil {
		log := RequestLog(c)
		if appErr.Code >= response.CodeInternal {
			log.Errorw("handler_error",
				"code", appErr.Code,
				"message", appErr.Message,
				"path", c.FullPath(),
				"error", appErr.Err,
			)
		} else {
			log.Debugw("handler_rejected",
				"code", appErr.Code,
				"message", appErr.Message,
				"error", appErr.Err,
			)
		}
	}
	response.ErrorWithDetails(c, appErr.Code, appErr.Message, appErr.Details)
}
