package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/receipts/internal/server/http/middleware"
)

// CurrentUsername extracts the authenticated subject from context.
func CurrentUsername(c *gin.Context) string {
	val, ok := c.Get(middleware.UsernameContextKey)
	if !ok {
		return ""
	}
	name, _ := val.(string)
	return name
}
