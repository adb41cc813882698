package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-app/finsight-api/models"
	"github.com/finsight-app/finsight-api/store"
)

func TestSummarizeAggregatesByCategory(t *testing.T) {
	expenses := NewExpenseService(store.New(t.TempDir()))
	newExpense(t, expenses, "u1", "Groceries", 120)
	newExpense(t, expenses, "u1", "Dining", 80)
	newExpense(t, expenses, "u1", "Groceries", 30)

	insights := NewInsightsService(expenses, map[string]float64{
		"Groceries": 400,
		"Dining":    200,
	})

	summary := insights.Summarize("u1")

	assert.Equal(t, 230.0, summary.TotalSpent)
	assert.Equal(t, 3, summary.ExpenseCount)
	require.Len(t, summary.Categories, 2)

	assert.Equal(t, models.CategoryComparison{
		Category: "Groceries", UserAmount: 150, AverageAmount: 400,
	}, summary.Categories[0])
	assert.Equal(t, models.CategoryComparison{
		Category: "Dining", UserAmount: 80, AverageAmount: 200,
	}, summary.Categories[1])
}

func TestSummarizeEmptyUser(t *testing.T) {
	expenses := NewExpenseService(store.New(t.TempDir()))
	insights := NewInsightsService(expenses, nil)

	summary := insights.Summarize("nobody")

	assert.Equal(t, 0.0, summary.TotalSpent)
	assert.Equal(t, 0, summary.ExpenseCount)
	assert.Empty(t, summary.Categories)
}

func TestSummarizeTiesKeepFirstSeenOrder(t *testing.T) {
	expenses := NewExpenseService(store.New(t.TempDir()))
	newExpense(t, expenses, "u1", "Dining", 50)
	newExpense(t, expenses, "u1", "Transport", 50)

	insights := NewInsightsService(expenses, nil)
	summary := insights.Summarize("u1")

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Dining", summary.Categories[0].Category)
	assert.Equal(t, "Transport", summary.Categories[1].Category)
}

func TestSummarizeCoercesMalformedAmounts(t *testing.T) {
	dir := t.TempDir()

	// A collection written by an older client: one amount is a plain string,
	// one is garbage. Neither may poison the aggregate.
	raw := `[
		{"id":"1","userId":"u1","amount":25,"category":"Food","description":"","date":"2025-06-01","createdAt":"2025-06-01T10:00:00Z"},
		{"id":"2","userId":"u1","amount":"17.5","category":"Food","description":"","date":"2025-06-02","createdAt":"2025-06-02T10:00:00Z"},
		{"id":"3","userId":"u1","amount":"abc","category":"Transport","description":"","date":"2025-06-03","createdAt":"2025-06-03T10:00:00Z"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "expenses.json"), []byte(raw), 0o644))

	expenses := NewExpenseService(store.New(dir))
	insights := NewInsightsService(expenses, nil)
	summary := insights.Summarize("u1")

	assert.Equal(t, 42.5, summary.TotalSpent)
	assert.Equal(t, 3, summary.ExpenseCount)
	assert.False(t, summary.TotalSpent != summary.TotalSpent, "total must never be NaN")

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Food", summary.Categories[0].Category)
	assert.Equal(t, 42.5, summary.Categories[0].UserAmount)
	assert.Equal(t, 0.0, summary.Categories[1].UserAmount)
}

func TestSummarizeUnknownCategoryComparesAgainstZero(t *testing.T) {
	expenses := NewExpenseService(store.New(t.TempDir()))
	newExpense(t, expenses, "u1", "Llama grooming", 60)

	insights := NewInsightsService(expenses, nil)
	summary := insights.Summarize("u1")

	require.Len(t, summary.Categories, 1)
	assert.Equal(t, 0.0, summary.Categories[0].AverageAmount)
}
