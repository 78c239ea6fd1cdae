package service

import (
	"context"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/logging"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/storage"
	"github.com/carson-networks/prefin/internal/storage/budget"
	"github.com/carson-networks/prefin/internal/storage/expense"
)

// BudgetService handles budget reads and reconciliation.
type BudgetService struct {
	storage *storage.Reader
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(reader *storage.Reader) *BudgetService {
	return &BudgetService{storage: reader}
}

// ListBudgets returns every budget of the user, newest month first.
func (s *BudgetService) ListBudgets(ctx context.Context, userID int64) ([]Budget, error) {
	rows, err := logging.Timed(logging.GetLogData(ctx), "listBudgets", func() ([]*budget.Budget, error) {
		return s.storage.Budgets.ListByUser(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = *BudgetFromStorage(row)
	}
	return budgets, nil
}

// GetBudget returns the user's budget for month.
func (s *BudgetService) GetBudget(ctx context.Context, userID int64, month string) (*Budget, error) {
	row, err := s.findByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	return BudgetFromStorage(row), nil
}

// Summary reconciles the month's budget against the month's expenses.
func (s *BudgetService) Summary(ctx context.Context, userID int64, month string) (*BudgetSummary, error) {
	row, err := s.findByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	expenses, err := logging.Timed(logging.GetLogData(ctx), "listMonthExpenses", func() ([]*expense.Expense, error) {
		return s.storage.Expenses.List(ctx, &expense.ExpenseFilter{
			UserID: userID,
			Month:  month,
		})
	})
	if err != nil {
		return nil, err
	}

	return &BudgetSummary{
		Month:   month,
		Summary: reconcile.Summarize(row.TotalIncome, row.Split(), expense.Entries(expenses)),
	}, nil
}

// findByMonth looks up the month's budget. A malformed month key cannot name
// a budget, so it is reported as not found.
func (s *BudgetService) findByMonth(ctx context.Context, userID int64, month string) (*budget.Budget, error) {
	if _, err := reconcile.ParseMonth(month); err != nil {
		return nil, apperr.NotFound("budget")
	}

	return logging.Timed(logging.GetLogData(ctx), "findBudget", func() (*budget.Budget, error) {
		return s.storage.Budgets.FindByMonth(ctx, userID, month)
	})
}
