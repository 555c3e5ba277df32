package utils

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// SetHeaderNoCache sets the no cache header.
func SetHeaderNoCache(c *gin.Context) {
	c.Header("Expires", "Fri, 01 Jan 1980 00:00:00 GMT")
	c.Header("Pragma", "no-cache")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
}

// SetHeaderInline sets the content disposition to an inline file named filename.
func SetHeaderInline(c *gin.Context, filename string) {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(filename)
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, escaped))
}
