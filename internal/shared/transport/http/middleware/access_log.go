package middleware

import (
	"github.com/gin-gonic/gin"

	"UserCenter/internal/shared/transport"
	"UserCenter/modules/kit/logx"
)

// AccessLog 统一写访问日志，结果按 HTTP 状态码判断。
func AccessLog(log logx.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		action := c.Request.Method + " " + route

		ctx := transport.NewContextWithParent(c.Request.Context(), action)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		transport.SetStatus(ctx, c.Writer.Status())
		if len(c.Errors) > 0 {
			transport.SetErrorReason(ctx, c.Errors.String())
		}
		transport.WriteAccessLog(ctx, log)
	}
}
