package middleware

import (
	"context"

	"github.com/AnTengye/accreditation/pkg/logger"
	"github.com/gin-gonic/gin"
)

// View tags the request with the dashboard view it renders, for logging
func View(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(logger.ViewKey), name)
		ctx := context.WithValue(c.Request.Context(), logger.ViewKey, name)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetView returns the view name set by View, or ""
func GetView(c *gin.Context) string {
	return c.GetString(string(logger.ViewKey))
}
