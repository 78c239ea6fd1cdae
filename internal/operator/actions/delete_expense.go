package actions

import (
	"context"

	"github.com/carson-networks/prefin/internal/storage"
)

type DeleteExpense struct {
	UserID    int64
	ExpenseID int64
}

func (d *DeleteExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := findOwnedExpense(ctx, writer, d.UserID, d.ExpenseID); err != nil {
		return err
	}

	return writer.Expenses.Delete(ctx, d.ExpenseID)
}
