package actions

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/storage"
	"github.com/carson-networks/prefin/internal/storage/expense"
)

// UpdateExpense changes the supplied fields of one of the user's expenses.
// The budget link is left as it was and not re-validated.
type UpdateExpense struct {
	UserID    int64
	ExpenseID int64
	Amount    *decimal.Decimal
	Category  *string
	Name      *string
	Date      *string

	Expense *expense.Expense
}

func (u *UpdateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := findOwnedExpense(ctx, writer, u.UserID, u.ExpenseID)
	if err != nil {
		return err
	}

	if u.Amount != nil {
		if !u.Amount.IsPositive() {
			return apperr.Validation("amount must be greater than zero")
		}
		existing.Amount = *u.Amount
	}
	if u.Category != nil {
		category, err := reconcile.ParseCategory(*u.Category)
		if err != nil {
			return err
		}
		existing.Category = category
	}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return apperr.Validation("name must not be empty")
		}
		existing.Name = name
	}
	if u.Date != nil {
		date, err := reconcile.ParseDate(*u.Date)
		if err != nil {
			return err
		}
		existing.Date = date
	}

	updated, err := writer.Expenses.Update(ctx, existing)
	if err != nil {
		return err
	}

	u.Expense = updated
	return nil
}

// findOwnedExpense locks the expense row. Another user's expense is reported
// as not found.
func findOwnedExpense(ctx context.Context, writer *storage.Writer, userID, expenseID int64) (*expense.Expense, error) {
	existing, err := writer.Expenses.FindByIDForUpdate(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, apperr.NotFound("expense")
	}
	return existing, nil
}
