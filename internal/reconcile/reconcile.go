// Package reconcile holds the budget arithmetic: the 50/30/20 income split,
// per-category spend totals and the remaining balance of each category.
// Everything here is pure; callers load budgets and expenses themselves.
package reconcile

import (
	"github.com/shopspring/decimal"
)

var (
	needsShare   = decimal.RequireFromString("0.5")
	wantsShare   = decimal.RequireFromString("0.3")
	savingsShare = decimal.RequireFromString("0.2")
)

// Split is the allocation of a month's income across categories.
type Split struct {
	Needs   decimal.Decimal
	Wants   decimal.Decimal
	Savings decimal.Decimal
}

// SplitIncome applies the 50/30/20 rule. Decimal arithmetic keeps
// Needs+Wants+Savings exactly equal to total.
func SplitIncome(total decimal.Decimal) Split {
	return Split{
		Needs:   total.Mul(needsShare),
		Wants:   total.Mul(wantsShare),
		Savings: total.Mul(savingsShare),
	}
}

// Allocation returns the amount budgeted for c.
func (s Split) Allocation(c Category) decimal.Decimal {
	switch c {
	case CategoryNeeds:
		return s.Needs
	case CategoryWants:
		return s.Wants
	case CategorySavings:
		return s.Savings
	}
	return decimal.Zero
}

// Total is the sum of the three allocations.
func (s Split) Total() decimal.Decimal {
	return s.Needs.Add(s.Wants).Add(s.Savings)
}

// Entry is the part of an expense reconciliation needs.
type Entry struct {
	Category Category
	Amount   decimal.Decimal
}

// CategorySummary is the budgeted and spent amount of one category.
// Remaining is signed: negative means the category is over budget.
type CategorySummary struct {
	Budgeted  decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// Summary reconciles a month's budget against its expenses.
type Summary struct {
	Needs       CategorySummary
	Wants       CategorySummary
	Savings     CategorySummary
	TotalIncome decimal.Decimal
}

// Category returns the summary line for c.
func (s Summary) Category(c Category) CategorySummary {
	switch c {
	case CategoryNeeds:
		return s.Needs
	case CategoryWants:
		return s.Wants
	case CategorySavings:
		return s.Savings
	}
	return CategorySummary{}
}

// SpentByCategory sums entry amounts per category. Every category is present
// in the result, with zero when nothing was spent.
func SpentByCategory(entries []Entry) map[Category]decimal.Decimal {
	spent := make(map[Category]decimal.Decimal, len(Categories))
	for _, c := range Categories {
		spent[c] = decimal.Zero
	}
	for _, e := range entries {
		if _, ok := spent[e.Category]; !ok {
			continue
		}
		spent[e.Category] = spent[e.Category].Add(e.Amount)
	}
	return spent
}

// Summarize computes budgeted, spent and remaining per category.
func Summarize(totalIncome decimal.Decimal, split Split, entries []Entry) Summary {
	spent := SpentByCategory(entries)
	line := func(c Category) CategorySummary {
		budgeted := split.Allocation(c)
		return CategorySummary{
			Budgeted:  budgeted,
			Spent:     spent[c],
			Remaining: budgeted.Sub(spent[c]),
		}
	}
	return Summary{
		Needs:       line(CategoryNeeds),
		Wants:       line(CategoryWants),
		Savings:     line(CategorySavings),
		TotalIncome: totalIncome,
	}
}

// PredictedBalance is what remains of allocation once amount is added on top
// of priorSpent.
func PredictedBalance(allocation, priorSpent, amount decimal.Decimal) decimal.Decimal {
	return allocation.Sub(priorSpent.Add(amount))
}

// Overage returns how far a predicted balance is below zero, and whether it is.
func Overage(predicted decimal.Decimal) (decimal.Decimal, bool) {
	if !predicted.IsNegative() {
		return decimal.Zero, false
	}
	return predicted.Neg(), true
}
