package models

import "time"

// Budget periods.
const (
	PeriodMonthly = "monthly"
	PeriodWeekly  = "weekly"
	PeriodYearly  = "yearly"
)

// Budget is a per-category spending limit with a running spent total.
type Budget struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Category  string    `json:"category"`
	Limit     Amount    `json:"limit"`
	Spent     Amount    `json:"spent"`
	Period    string    `json:"period"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Limit    float64 `json:"limit" binding:"required,gte=0"`
	Period   string  `json:"period" binding:"required,oneof=monthly weekly yearly"`
}

// UpdateBudgetRequest carries a partial update. Nil fields are left
// unchanged on the stored record.
type UpdateBudgetRequest struct {
	Category *string  `json:"category"`
	Limit    *float64 `json:"limit" binding:"omitempty,gte=0"`
	Spent    *float64 `json:"spent" binding:"omitempty,gte=0"`
	Period   *string  `json:"period" binding:"omitempty,oneof=monthly weekly yearly"`
}
