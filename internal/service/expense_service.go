package service

import (
	"context"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/logging"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/storage"
	"github.com/carson-networks/prefin/internal/storage/expense"
)

// ExpenseService handles expense reads.
type ExpenseService struct {
	storage *storage.Reader
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(reader *storage.Reader) *ExpenseService {
	return &ExpenseService{storage: reader}
}

// ExpenseFilter narrows ListExpenses. Empty fields don't filter.
type ExpenseFilter struct {
	Category string
	Month    string
}

// ListExpenses returns the user's expenses matching filter, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID int64, filter ExpenseFilter) ([]Expense, error) {
	storageFilter := &expense.ExpenseFilter{UserID: userID}
	if filter.Category != "" {
		category, err := reconcile.ParseCategory(filter.Category)
		if err != nil {
			return nil, err
		}
		storageFilter.Category = &category
	}
	if filter.Month != "" {
		if _, err := reconcile.ParseMonth(filter.Month); err != nil {
			return nil, err
		}
		storageFilter.Month = filter.Month
	}

	rows, err := logging.Timed(logging.GetLogData(ctx), "listExpenses", func() ([]*expense.Expense, error) {
		return s.storage.Expenses.List(ctx, storageFilter)
	})
	if err != nil {
		return nil, err
	}

	expenses := make([]Expense, len(rows))
	for i, row := range rows {
		expenses[i] = *ExpenseFromStorage(row)
	}
	return expenses, nil
}

// GetExpense returns one of the user's expenses. Another user's expense is
// reported as not found.
func (s *ExpenseService) GetExpense(ctx context.Context, userID, id int64) (*Expense, error) {
	row, err := s.storage.Expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		return nil, apperr.NotFound("expense")
	}
	return ExpenseFromStorage(row), nil
}

// CategorySummary sums the user's spending per category for month.
func (s *ExpenseService) CategorySummary(ctx context.Context, userID int64, month string) (*CategoryTotals, error) {
	if _, err := reconcile.ParseMonth(month); err != nil {
		return nil, err
	}

	rows, err := logging.Timed(logging.GetLogData(ctx), "listMonthExpenses", func() ([]*expense.Expense, error) {
		return s.storage.Expenses.List(ctx, &expense.ExpenseFilter{
			UserID: userID,
			Month:  month,
		})
	})
	if err != nil {
		return nil, err
	}

	spent := reconcile.SpentByCategory(expense.Entries(rows))
	return &CategoryTotals{
		Month:   month,
		Needs:   spent[reconcile.CategoryNeeds],
		Wants:   spent[reconcile.CategoryWants],
		Savings: spent[reconcile.CategorySavings],
	}, nil
}
