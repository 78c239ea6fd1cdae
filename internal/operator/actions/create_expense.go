package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/storage"
	"github.com/carson-networks/prefin/internal/storage/expense"
)

// Warning reports that an expense took its category past the month's allocation.
type Warning struct {
	Category reconcile.Category
	OverBy   decimal.Decimal
}

// CreateExpense records an expense against the budget of its month. Going
// over the category's allocation still succeeds and sets Warning.
type CreateExpense struct {
	UserID   int64
	Amount   decimal.Decimal
	Category string
	Name     string
	Date     string

	Expense *expense.Expense
	Warning *Warning
}

func (c *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	if !c.Amount.IsPositive() {
		return apperr.Validation("amount must be greater than zero")
	}
	category, err := reconcile.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return apperr.Validation("name is required")
	}
	date, err := reconcile.ParseDate(c.Date)
	if err != nil {
		return err
	}
	month := reconcile.MonthOf(date)

	monthBudget, err := writer.Budgets.FindByMonth(ctx, c.UserID, month)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NoBudgetForMonth(month)
	}
	if err != nil {
		return err
	}

	prior, err := writer.Expenses.List(ctx, &expense.ExpenseFilter{
		UserID:   c.UserID,
		Category: &category,
		Month:    month,
	})
	if err != nil {
		return err
	}
	priorSpent := reconcile.SpentByCategory(expense.Entries(prior))[category]

	created, err := writer.Expenses.Insert(ctx, &expense.ExpenseCreate{
		UserID:   c.UserID,
		BudgetID: monthBudget.ID,
		Category: category,
		Name:     name,
		Amount:   c.Amount,
		Date:     date,
	})
	if err != nil {
		return err
	}
	c.Expense = created

	predicted := reconcile.PredictedBalance(monthBudget.Split().Allocation(category), priorSpent, c.Amount)
	if overBy, over := reconcile.Overage(predicted); over {
		c.Warning = &Warning{Category: category, OverBy: overBy}
	}

	return nil
}
