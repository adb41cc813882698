package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-app/finsight-api/models"
	"github.com/finsight-app/finsight-api/store"
)

func TestBudgetCreateStartsUnspent(t *testing.T) {
	budgets := NewBudgetService(store.New(t.TempDir()))

	created, err := budgets.Create("u1", models.CreateBudgetRequest{
		Category: "Food",
		Limit:    500,
		Period:   models.PeriodMonthly,
	})
	require.NoError(t, err)

	assert.Equal(t, models.Amount(500), created.Limit)
	assert.Equal(t, models.Amount(0), created.Spent)
	assert.Equal(t, models.PeriodMonthly, created.Period)
}

func TestBudgetPartialUpdate(t *testing.T) {
	budgets := NewBudgetService(store.New(t.TempDir()))

	created, err := budgets.Create("u1", models.CreateBudgetRequest{
		Category: "Food",
		Limit:    500,
		Period:   models.PeriodMonthly,
	})
	require.NoError(t, err)

	spent := 120.0
	updated, err := budgets.Update(created.ID, "u1", models.UpdateBudgetRequest{Spent: &spent})
	require.NoError(t, err)

	assert.Equal(t, models.Amount(120), updated.Spent)
	assert.Equal(t, created.Limit, updated.Limit)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Period, updated.Period)
}

func TestBudgetOperationsScopedToOwner(t *testing.T) {
	budgets := NewBudgetService(store.New(t.TempDir()))

	created, err := budgets.Create("u1", models.CreateBudgetRequest{
		Category: "Food",
		Limit:    500,
		Period:   models.PeriodWeekly,
	})
	require.NoError(t, err)

	_, ok := budgets.FindByID(created.ID, "u2")
	assert.False(t, ok)

	err = budgets.Delete(created.ID, "u2")
	require.ErrorIs(t, err, store.ErrNotFound)

	assert.Len(t, budgets.FindByUser("u1"), 1)
}
