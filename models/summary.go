package models

// CategoryComparison pairs what the user spent in a category with the
// reference average for it.
type CategoryComparison struct {
	Category      string  `json:"category"`
	UserAmount    float64 `json:"userAmount"`
	AverageAmount float64 `json:"averageAmount"`
}

// ExpenseSummary is the derived, non-persisted aggregate served to the
// dashboard. Categories are ordered by descending user amount; the first
// entry drives the "top expense category" card.
type ExpenseSummary struct {
	TotalSpent   float64              `json:"totalSpent"`
	ExpenseCount int                  `json:"expenseCount"`
	Categories   []CategoryComparison `json:"categories"`
}
