package respond

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// JSON writes payload with the given status. Portfolio bodies are per-user
// and never cached. "?pretty=1" indents the body.
func JSON(c *gin.Context, status int, payload any) {
	c.Header("Cache-Control", "no-store")
	if wantsPretty(c) {
		c.IndentedJSON(status, payload)
		return
	}
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}

func wantsPretty(c *gin.Context) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query("pretty"))) {
	case "1", "true", "yes":
		return true
	}
	return false
}
