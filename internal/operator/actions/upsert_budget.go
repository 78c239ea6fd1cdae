package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/storage"
	"github.com/carson-networks/prefin/internal/storage/budget"
)

// UpsertBudget sets a month's income and recomputes all three allocations,
// creating the budget if the month has none.
type UpsertBudget struct {
	UserID      int64
	Month       string
	TotalIncome decimal.Decimal

	Budget  *budget.Budget
	Created bool
}

func (u *UpsertBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := reconcile.ParseMonth(u.Month); err != nil {
		return err
	}
	if !u.TotalIncome.IsPositive() {
		return apperr.Validation("totalIncome must be greater than zero")
	}

	saved, created, err := writer.Budgets.Upsert(ctx, &budget.BudgetUpsert{
		UserID:      u.UserID,
		Month:       u.Month,
		TotalIncome: u.TotalIncome,
		Split:       reconcile.SplitIncome(u.TotalIncome),
	})
	if err != nil {
		return err
	}

	u.Budget = saved
	u.Created = created
	return nil
}
