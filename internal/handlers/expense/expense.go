package expense

import (
	"context"
	"time"

	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/service"
)

// Expense is the API response model for an expense.
type Expense struct {
	ID        int64     `json:"id"`
	BudgetID  int64     `json:"budgetId" doc:"Budget the expense was recorded against"`
	Category  string    `json:"category" doc:"needs, wants or savings"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date" doc:"YYYY-MM-DD"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Warning is attached to a created expense that took its category over budget.
type Warning struct {
	Category string  `json:"category"`
	OverBy   float64 `json:"overBy"`
}

func toExpense(e *service.Expense) Expense {
	return Expense{
		ID:        e.ID,
		BudgetID:  e.BudgetID,
		Category:  string(e.Category),
		Name:      e.Name,
		Amount:    apiutil.Money(e.Amount),
		Date:      e.Date.Format(reconcile.DateLayout),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type expenseService interface {
	ListExpenses(ctx context.Context, userID int64, filter service.ExpenseFilter) ([]service.Expense, error)
	GetExpense(ctx context.Context, userID, id int64) (*service.Expense, error)
	CategorySummary(ctx context.Context, userID int64, month string) (*service.CategoryTotals, error)
}

// IDPath is the {id} path parameter of the per-expense operations.
type IDPath struct {
	ID int64 `path:"id" doc:"Expense id"`
}
