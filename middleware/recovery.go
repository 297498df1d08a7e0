package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/AnTengye/accreditation/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a view query into a 500 response and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				body := gin.H{
					"error":      "Internal server error",
					"request_id": requestID,
				}
				if view := GetView(c); view != "" {
					body["view"] = view
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()

		c.Next()
	}
}
