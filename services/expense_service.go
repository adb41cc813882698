package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/finsight-app/finsight-api/models"
	"github.com/finsight-app/finsight-api/store"
)

const expensesCollection = "expenses"

// ExpenseService is the repository for expense records. All operations that
// touch a specific record are scoped to the owning user: a record owned by
// someone else behaves exactly like a missing one.
type ExpenseService struct {
	store *store.Store
}

func NewExpenseService(s *store.Store) *ExpenseService {
	return &ExpenseService{store: s}
}

// Create appends a new expense for the user and persists the collection.
func (s *ExpenseService) Create(userID string, req models.CreateExpenseRequest) (*models.Expense, error) {
	expense := models.Expense{
		ID:          uuid.New().String(),
		UserID:      userID,
		Amount:      models.Amount(req.Amount),
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		CreatedAt:   time.Now(),
	}

	err := store.Update(s.store, expensesCollection, func(expenses []models.Expense) ([]models.Expense, error) {
		return append(expenses, expense), nil
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// FindByUser returns the user's expenses in insertion order. A user with no
// records gets an empty slice, not an error.
func (s *ExpenseService) FindByUser(userID string) []models.Expense {
	expenses := []models.Expense{}
	for _, e := range store.ReadAll[models.Expense](s.store, expensesCollection) {
		if e.UserID == userID {
			expenses = append(expenses, e)
		}
	}
	return expenses
}

// FindByID returns the expense with the given id if it belongs to userID.
func (s *ExpenseService) FindByID(id, userID string) (*models.Expense, bool) {
	for _, e := range store.ReadAll[models.Expense](s.store, expensesCollection) {
		if e.ID == id && e.UserID == userID {
			return &e, true
		}
	}
	return nil, false
}

// Update merges the non-nil fields of req over the stored record and
// persists the collection. Returns store.ErrNotFound when no record of that
// id belongs to userID.
func (s *ExpenseService) Update(id, userID string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	var updated models.Expense
	err := store.Update(s.store, expensesCollection, func(expenses []models.Expense) ([]models.Expense, error) {
		for i := range expenses {
			if expenses[i].ID != id || expenses[i].UserID != userID {
				continue
			}
			if req.Amount != nil {
				expenses[i].Amount = models.Amount(*req.Amount)
			}
			if req.Category != nil {
				expenses[i].Category = *req.Category
			}
			if req.Description != nil {
				expenses[i].Description = *req.Description
			}
			if req.Date != nil {
				expenses[i].Date = *req.Date
			}
			updated = expenses[i]
			return expenses, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the record if it belongs to userID. Returns
// store.ErrNotFound when there is nothing to delete, so callers can tell a
// deletion apart from a no-op.
func (s *ExpenseService) Delete(id, userID string) error {
	return store.Update(s.store, expensesCollection, func(expenses []models.Expense) ([]models.Expense, error) {
		for i := range expenses {
			if expenses[i].ID == id && expenses[i].UserID == userID {
				return append(expenses[:i], expenses[i+1:]...), nil
			}
		}
		return nil, store.ErrNotFound
	})
}
