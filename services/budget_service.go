package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/finsight-app/finsight-api/models"
	"github.com/finsight-app/finsight-api/store"
)

const budgetsCollection = "budgets"

// BudgetService is the repository for budget records, scoped per owning user
// the same way ExpenseService is.
type BudgetService struct {
	store *store.Store
}

func NewBudgetService(s *store.Store) *BudgetService {
	return &BudgetService{store: s}
}

// Create appends a new budget with a zero running total.
func (s *BudgetService) Create(userID string, req models.CreateBudgetRequest) (*models.Budget, error) {
	budget := models.Budget{
		ID:        uuid.New().String(),
		UserID:    userID,
		Category:  req.Category,
		Limit:     models.Amount(req.Limit),
		Spent:     0,
		Period:    req.Period,
		CreatedAt: time.Now(),
	}

	err := store.Update(s.store, budgetsCollection, func(budgets []models.Budget) ([]models.Budget, error) {
		return append(budgets, budget), nil
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// FindByUser returns the user's budgets in insertion order.
func (s *BudgetService) FindByUser(userID string) []models.Budget {
	budgets := []models.Budget{}
	for _, b := range store.ReadAll[models.Budget](s.store, budgetsCollection) {
		if b.UserID == userID {
			budgets = append(budgets, b)
		}
	}
	return budgets
}

// FindByID returns the budget with the given id if it belongs to userID.
func (s *BudgetService) FindByID(id, userID string) (*models.Budget, bool) {
	for _, b := range store.ReadAll[models.Budget](s.store, budgetsCollection) {
		if b.ID == id && b.UserID == userID {
			return &b, true
		}
	}
	return nil, false
}

// Update merges the non-nil fields of req over the stored record. Returns
// store.ErrNotFound when no record of that id belongs to userID.
func (s *BudgetService) Update(id, userID string, req models.UpdateBudgetRequest) (*models.Budget, error) {
	var updated models.Budget
	err := store.Update(s.store, budgetsCollection, func(budgets []models.Budget) ([]models.Budget, error) {
		for i := range budgets {
			if budgets[i].ID != id || budgets[i].UserID != userID {
				continue
			}
			if req.Category != nil {
				budgets[i].Category = *req.Category
			}
			if req.Limit != nil {
				budgets[i].Limit = models.Amount(*req.Limit)
			}
			if req.Spent != nil {
				budgets[i].Spent = models.Amount(*req.Spent)
			}
			if req.Period != nil {
				budgets[i].Period = *req.Period
			}
			updated = budgets[i]
			return budgets, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the record if it belongs to userID.
func (s *BudgetService) Delete(id, userID string) error {
	return store.Update(s.store, budgetsCollection, func(budgets []models.Budget) ([]models.Budget, error) {
		for i := range budgets {
			if budgets[i].ID == id && budgets[i].UserID == userID {
				return append(budgets[:i], budgets[i+1:]...), nil
			}
		}
		return nil, store.ErrNotFound
	})
}
