package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight-app/finsight-api/middleware"
	"github.com/finsight-app/finsight-api/models"
	"github.com/finsight-app/finsight-api/services"
	"github.com/finsight-app/finsight-api/store"
	"github.com/finsight-app/finsight-api/utils"
)

type ExpenseHandler struct {
	Expenses *services.ExpenseService
	WS       *WSHandler
}

// GetExpenses returns all of the caller's expenses in insertion order.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.Expenses.FindByUser(userID))
}

// CreateExpense records a new expense for the caller.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.Expenses.Create(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save expense"})
		return
	}

	utils.SafeLog("💰 Expense recorded for %s: %s (%s)", userID, req.Category, utils.MaskAmount(req.Amount))
	h.WS.BroadcastUpdate(userID, "expense_created")
	c.JSON(http.StatusCreated, expense)
}

// UpdateExpense merges the provided fields over an existing expense.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.Expenses.Update(c.Param("id"), userID, req)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save expense"})
		return
	}

	h.WS.BroadcastUpdate(userID, "expense_updated")
	c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes an expense owned by the caller.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.Expenses.Delete(c.Param("id"), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	h.WS.BroadcastUpdate(userID, "expense_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
