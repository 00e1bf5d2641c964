package web

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// cacheControl lets browsers keep the embedded assets while the page
// itself is always revalidated.
func cacheControl() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Header("Cache-Control", "public, max-age=86400")
		} else {
			c.Header("Cache-Control", "no-cache")
		}
		c.Next()
	}
}
