package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight-app/finsight-api/middleware"
	"github.com/finsight-app/finsight-api/services"
)

type InsightsHandler struct {
	Insights *services.InsightsService
}

// GetSummary returns the caller's expense summary: total spent, record
// count, and spending per category against the reference averages.
func (h *InsightsHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.Insights.Summarize(userID))
}
