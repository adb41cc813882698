package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight-app/finsight-api/models"
	"github.com/finsight-app/finsight-api/services"
)

type NewsHandler struct {
	News *services.NewsService
}

// GetNews serves the latest finance headlines. Ingestion failures degrade to
// an empty items list; this endpoint does not error for "no news available".
func (h *NewsHandler) GetNews(c *gin.Context) {
	items := h.News.FetchFeed(c.Request.Context())
	c.JSON(http.StatusOK, models.NewsResponse{Items: items})
}
