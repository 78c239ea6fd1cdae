package budget

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/prefin/internal/reconcile"
)

const tableName = "budgets"

var columns = []any{
	"id",
	"user_id",
	"month",
	"total_income",
	"needs",
	"wants",
	"savings",
	"created_at",
	"updated_at",
}

// Budget represents one month's 50/30/20 split for a user.
type Budget struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Month       string          `db:"month"`
	TotalIncome decimal.Decimal `db:"total_income"`
	Needs       decimal.Decimal `db:"needs"`
	Wants       decimal.Decimal `db:"wants"`
	Savings     decimal.Decimal `db:"savings"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// Split returns the budget's allocations.
func (b *Budget) Split() reconcile.Split {
	return reconcile.Split{
		Needs:   b.Needs,
		Wants:   b.Wants,
		Savings: b.Savings,
	}
}

// BudgetUpsert is the input for creating or replacing a month's budget.
// All allocation fields are written on both paths.
type BudgetUpsert struct {
	UserID      int64
	Month       string
	TotalIncome decimal.Decimal
	Split       reconcile.Split
}

// IBudgetReader defines read access to budgets.
type IBudgetReader interface {
	FindByMonth(ctx context.Context, userID int64, month string) (*Budget, error)
	ListByUser(ctx context.Context, userID int64) ([]*Budget, error)
}

// IBudgetWriter defines transactional write access to budgets.
type IBudgetWriter interface {
	IBudgetReader
	Upsert(ctx context.Context, upsert *BudgetUpsert) (*Budget, bool, error)
	DeleteByMonth(ctx context.Context, userID int64, month string) error
}
