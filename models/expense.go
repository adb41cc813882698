package models

import "time"

// Expense is a single spending record owned by a user. Date is the day the
// expense happened (as entered by the client), CreatedAt is when the record
// was inserted.
type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Amount      Amount    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateExpenseRequest carries a partial update. Nil fields are left
// unchanged on the stored record.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}
