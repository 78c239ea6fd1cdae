package budget

import (
	"context"
	"time"

	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/service"
)

// Budget is the API response model for a month's budget.
type Budget struct {
	ID          int64     `json:"id"`
	Month       string    `json:"month" doc:"YYYY-MM"`
	TotalIncome float64   `json:"totalIncome"`
	Needs       float64   `json:"needs" doc:"50% of totalIncome"`
	Wants       float64   `json:"wants" doc:"30% of totalIncome"`
	Savings     float64   `json:"savings" doc:"20% of totalIncome"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategorySummary is one category line of a budget summary.
type CategorySummary struct {
	Budgeted  float64 `json:"budgeted"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining" doc:"Negative when over budget"`
}

type Summary struct {
	Month       string          `json:"month"`
	Needs       CategorySummary `json:"needs"`
	Wants       CategorySummary `json:"wants"`
	Savings     CategorySummary `json:"savings"`
	TotalIncome float64         `json:"totalIncome"`
}

func toBudget(b *service.Budget) Budget {
	return Budget{
		ID:          b.ID,
		Month:       b.Month,
		TotalIncome: apiutil.Money(b.TotalIncome),
		Needs:       apiutil.Money(b.Needs),
		Wants:       apiutil.Money(b.Wants),
		Savings:     apiutil.Money(b.Savings),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toCategorySummary(c reconcile.CategorySummary) CategorySummary {
	return CategorySummary{
		Budgeted:  apiutil.Money(c.Budgeted),
		Spent:     apiutil.Money(c.Spent),
		Remaining: apiutil.Money(c.Remaining),
	}
}

func toSummary(s *service.BudgetSummary) Summary {
	return Summary{
		Month:       s.Month,
		Needs:       toCategorySummary(s.Summary.Category(reconcile.CategoryNeeds)),
		Wants:       toCategorySummary(s.Summary.Category(reconcile.CategoryWants)),
		Savings:     toCategorySummary(s.Summary.Category(reconcile.CategorySavings)),
		TotalIncome: apiutil.Money(s.Summary.TotalIncome),
	}
}

type budgetService interface {
	ListBudgets(ctx context.Context, userID int64) ([]service.Budget, error)
	GetBudget(ctx context.Context, userID int64, month string) (*service.Budget, error)
	Summary(ctx context.Context, userID int64, month string) (*service.BudgetSummary, error)
}

// MonthPath is the {month} path parameter shared by the per-month operations.
type MonthPath struct {
	Month string `path:"month" doc:"YYYY-MM"`
}
