// Package handlers contains the Gin HTTP handlers for the journal API.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// userIDHeader carries the opaque caller identity. Absence means guest,
// never rejection.
const userIDHeader = "X-User-Id"

func callerID(c *gin.Context) string {
	return c.GetHeader(userIDHeader)
}

// intQuery reads an integer query parameter, falling back to def on
// absence or garbage.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
