package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/prefin/internal/reconcile"
)

const tableName = "expenses"

var columns = []any{
	"id",
	"user_id",
	"budget_id",
	"category",
	"name",
	"amount",
	"spent_on",
	"created_at",
	"updated_at",
}

// Expense represents an expenses row. BudgetID records the budget the
// expense was checked against when it was created; it is not a foreign key.
type Expense struct {
	ID        int64              `db:"id"`
	UserID    int64              `db:"user_id"`
	BudgetID  int64              `db:"budget_id"`
	Category  reconcile.Category `db:"category"`
	Name      string             `db:"name"`
	Amount    decimal.Decimal    `db:"amount"`
	Date      time.Time          `db:"spent_on"`
	CreatedAt time.Time          `db:"created_at"`
	UpdatedAt time.Time          `db:"updated_at"`
}

// Entry converts the expense into a reconciliation entry.
func (e *Expense) Entry() reconcile.Entry {
	return reconcile.Entry{Category: e.Category, Amount: e.Amount}
}

// Entries converts expenses into reconciliation entries.
func Entries(expenses []*Expense) []reconcile.Entry {
	entries := make([]reconcile.Entry, len(expenses))
	for i, e := range expenses {
		entries[i] = e.Entry()
	}
	return entries
}

// ExpenseCreate is the input for creating an expense.
type ExpenseCreate struct {
	UserID   int64
	BudgetID int64
	Category reconcile.Category
	Name     string
	Amount   decimal.Decimal
	Date     time.Time
}

// ExpenseFilter specifies filters for listing a user's expenses.
// Month is a "YYYY-MM" key; empty means every month.
type ExpenseFilter struct {
	UserID   int64
	Category *reconcile.Category
	Month    string
}

// IExpenseReader defines read access to expenses.
type IExpenseReader interface {
	FindByID(ctx context.Context, id int64) (*Expense, error)
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
}

// IExpenseWriter defines transactional write access to expenses.
type IExpenseWriter interface {
	IExpenseReader
	FindByIDForUpdate(ctx context.Context, id int64) (*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error)
	Update(ctx context.Context, expense *Expense) (*Expense, error)
	Delete(ctx context.Context, id int64) error
}
