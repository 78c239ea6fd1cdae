package actions

import (
	"context"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/storage"
)

// DeleteBudget removes a month's budget. The month's expenses are kept. A
// malformed month names no budget and is reported as not found.
type DeleteBudget struct {
	UserID int64
	Month  string
}

func (d *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := reconcile.ParseMonth(d.Month); err != nil {
		return apperr.NotFound("budget")
	}

	return writer.Budgets.DeleteByMonth(ctx, d.UserID, d.Month)
}
