package shared

import (
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/i18n"
	"github.com/dujiao-next/estore/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 带 request_id 与路由的日志
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	fields := []interface{}{"route", c.FullPath()}
	if id := response.RequestID(c); id != "" {
		fields = append(fields, "request_id", id)
	}
	return logger.SW(fields...)
}

// RespondError 按 i18n key 输出错误
func RespondError(c *gin.Context, code int, key string, err error) {
	RespondErrorWithMsg(c, code, i18n.T(i18n.ResolveLocale(c), key), err)
}

// RespondErrorWithMsg 输出已翻译的错误，服务端错误记 error，其余有原因的记 warn
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	appErr := response.NewAppError(code, msg, err)
	if err != nil {
		log := RequestLog(c)
		if appErr.Internal() {
			log.Errorw("handler_error", "code", appErr.Code, "error", appErr)
		} else {
			log.Warnw("handler_rejected", "code", appErr.Code, "error", appErr)
		}
	}
	response.Error(c, appErr.Code, appErr.Message)
}
