package services

import (
	"sort"

	"github.com/finsight-app/finsight-api/models"
)

// ============================================================================
// INSIGHTS SERVICE
// Turns a user's raw expenses into the dashboard summary: total spent,
// record count, and per-category comparison against reference averages.
// ============================================================================

// DefaultCategoryAverages is the fallback reference table when no averages
// file is configured. Figures are monthly, per household.
var DefaultCategoryAverages = map[string]float64{
	"Housing":        1800,
	"Food":           750,
	"Transportation": 400,
	"Entertainment":  350,
	"Utilities":      220,
}

type InsightsService struct {
	expenses *ExpenseService
	averages map[string]float64
}

// NewInsightsService builds the engine over the expense repository. averages
// is the external reference table; a category absent from it compares
// against 0.
func NewInsightsService(expenses *ExpenseService, averages map[string]float64) *InsightsService {
	if averages == nil {
		averages = DefaultCategoryAverages
	}
	return &InsightsService{expenses: expenses, averages: averages}
}

// Summarize aggregates the user's expenses by category. Malformed amounts
// contribute 0, never NaN. Categories come back ordered by descending user
// amount, first-seen order breaking ties, so the first entry is the top
// expense category.
func (s *InsightsService) Summarize(userID string) *models.ExpenseSummary {
	expenses := s.expenses.FindByUser(userID)

	sums := make(map[string]float64)
	order := []string{}
	total := 0.0

	for _, e := range expenses {
		amount := e.Amount.Sanitized()
		if _, seen := sums[e.Category]; !seen {
			order = append(order, e.Category)
		}
		sums[e.Category] += amount
		total += amount
	}

	categories := make([]models.CategoryComparison, 0, len(order))
	for _, category := range order {
		categories = append(categories, models.CategoryComparison{
			Category:      category,
			UserAmount:    sums[category],
			AverageAmount: s.averages[category],
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].UserAmount > categories[j].UserAmount
	})

	return &models.ExpenseSummary{
		TotalSpent:   total,
		ExpenseCount: len(expenses),
		Categories:   categories,
	}
}
