package controller

import (
	"net/http"
	"strconv"

	"cafeadmin/database"

	"github.com/gin-gonic/gin"
)

// ListActivity returns recent console mutations, optionally for one cafe.
func (h *Handler) ListActivity(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Activity log is not configured"})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			badRequest(c, "Invalid limit")
			return
		}
		limit = n
	}

	entries, err := database.RecentActivity(h.db, c.Query("cafe_id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fetched activity successfully",
		"data":    entries,
	})
}
