package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response envelope shared by every endpoint: successes carry data (and
// a count for lists), failures carry a message.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func respondMessage(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// pathID parses the :id segment. Non-numeric input reads as an id that
// cannot exist, so callers answer with their entity's not-found message.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
