package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery converts panics into the 500 envelope. Outside production the
// panic detail is echoed to the client; in production only a generic
// message leaves the process. If the response has already started
// streaming, nothing more is written.
func Recovery(logger *zap.Logger, env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)

				if c.Writer.Written() {
					c.Abort()
					return
				}

				resp := gin.H{
					"success": false,
					"message": "An unexpected error occurred",
				}
				if env != "production" {
					resp["errors"] = []string{fmt.Sprint(rec)}
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
