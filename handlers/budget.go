package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight-app/finsight-api/middleware"
	"github.com/finsight-app/finsight-api/models"
	"github.com/finsight-app/finsight-api/services"
	"github.com/finsight-app/finsight-api/store"
)

type BudgetHandler struct {
	Budgets *services.BudgetService
	WS      *WSHandler
}

// GetBudgets returns all of the caller's budgets in insertion order.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.Budgets.FindByUser(userID))
}

// CreateBudget creates a new per-category budget for the caller.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Budgets.Create(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget"})
		return
	}

	h.WS.BroadcastUpdate(userID, "budget_created")
	c.JSON(http.StatusCreated, budget)
}

// UpdateBudget merges the provided fields over an existing budget.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Budgets.Update(c.Param("id"), userID, req)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget"})
		return
	}

	h.WS.BroadcastUpdate(userID, "budget_updated")
	c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes a budget owned by the caller.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.Budgets.Delete(c.Param("id"), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget"})
		return
	}

	h.WS.BroadcastUpdate(userID, "budget_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted"})
}
