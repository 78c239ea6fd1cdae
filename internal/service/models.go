package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/storage/budget"
	"github.com/carson-networks/prefin/internal/storage/expense"
	"github.com/carson-networks/prefin/internal/storage/user"
)

// User is the public profile of a user. It has no password hash.
type User struct {
	ID        int64
	Email     string
	Username  string
	Gender    auth.Gender
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Budget represents a month's budget in the service layer.
type Budget struct {
	ID          int64
	Month       string
	TotalIncome decimal.Decimal
	Needs       decimal.Decimal
	Wants       decimal.Decimal
	Savings     decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BudgetSummary is a month's budget reconciled against its expenses.
type BudgetSummary struct {
	Month   string
	Summary reconcile.Summary
}

// Expense represents an expense in the service layer.
type Expense struct {
	ID        int64
	BudgetID  int64
	Category  reconcile.Category
	Name      string
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryTotals is the amount spent per category in one month.
type CategoryTotals struct {
	Month   string
	Needs   decimal.Decimal
	Wants   decimal.Decimal
	Savings decimal.Decimal
}

func UserFromStorage(row *user.User) *User {
	return &User{
		ID:        row.ID,
		Email:     row.Email,
		Username:  row.Username,
		Gender:    row.Gender,
		Avatar:    row.Avatar,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func BudgetFromStorage(row *budget.Budget) *Budget {
	return &Budget{
		ID:          row.ID,
		Month:       row.Month,
		TotalIncome: row.TotalIncome,
		Needs:       row.Needs,
		Wants:       row.Wants,
		Savings:     row.Savings,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func ExpenseFromStorage(row *expense.Expense) *Expense {
	return &Expense{
		ID:        row.ID,
		BudgetID:  row.BudgetID,
		Category:  row.Category,
		Name:      row.Name,
		Amount:    row.Amount,
		Date:      row.Date,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
