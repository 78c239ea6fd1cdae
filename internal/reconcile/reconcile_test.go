package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitIncome_SumsToTotal(t *testing.T) {
	for _, total := range []string{"0.01", "1", "999.99", "3333.33", "5000", "123456789.87"} {
		t.Run(total, func(t *testing.T) {
			split := SplitIncome(d(total))

			assert.True(t, split.Total().Equal(d(total)), "needs+wants+savings should equal total, got %s", split.Total())
			// 5:3:2
			assert.True(t, split.Needs.Mul(d("3")).Equal(split.Wants.Mul(d("5"))))
			assert.True(t, split.Wants.Mul(d("2")).Equal(split.Savings.Mul(d("3"))))
		})
	}
}

func TestSplitIncome_Values(t *testing.T) {
	split := SplitIncome(d("1000"))

	assert.True(t, split.Needs.Equal(d("500")))
	assert.True(t, split.Wants.Equal(d("300")))
	assert.True(t, split.Savings.Equal(d("200")))
	assert.True(t, split.Allocation(CategoryWants).Equal(d("300")))
	assert.True(t, split.Allocation(Category("other")).IsZero())
}

func TestSummarize_SumsMatchingEntries(t *testing.T) {
	split := Split{Needs: d("500"), Wants: d("300"), Savings: d("200")}
	entries := []Entry{
		{Category: CategoryNeeds, Amount: d("100")},
		{Category: CategoryNeeds, Amount: d("50")},
		{Category: CategoryWants, Amount: d("320.50")},
	}

	summary := Summarize(d("1000"), split, entries)

	assert.True(t, summary.Needs.Budgeted.Equal(d("500")))
	assert.True(t, summary.Needs.Spent.Equal(d("150")))
	assert.True(t, summary.Needs.Remaining.Equal(d("350")))
	assert.True(t, summary.Wants.Spent.Equal(d("320.50")))
	assert.True(t, summary.Wants.Remaining.Equal(d("-20.50")), "remaining is signed")
	assert.True(t, summary.Savings.Spent.IsZero())
	assert.True(t, summary.Savings.Remaining.Equal(d("200")))
	assert.True(t, summary.TotalIncome.Equal(d("1000")))
	assert.Equal(t, summary.Wants, summary.Category(CategoryWants))
}

func TestSpentByCategory_AllCategoriesPresent(t *testing.T) {
	spent := SpentByCategory(nil)

	assert.Len(t, spent, 3)
	for _, c := range Categories {
		assert.True(t, spent[c].IsZero())
	}
}

func TestPredictedBalance_And_Overage(t *testing.T) {
	tests := []struct {
		name       string
		allocation string
		prior      string
		amount     string
		predicted  string
		over       bool
		overBy     string
	}{
		{"within budget", "500", "100", "50", "350", false, "0"},
		{"exactly at budget", "500", "450", "50", "0", false, "0"},
		{"over budget", "500", "450", "80", "-30", true, "30"},
		{"first expense over", "200", "0", "250.25", "-50.25", true, "50.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicted := PredictedBalance(d(tt.allocation), d(tt.prior), d(tt.amount))
			assert.True(t, predicted.Equal(d(tt.predicted)), "predicted %s", predicted)

			overBy, over := Overage(predicted)
			assert.Equal(t, tt.over, over)
			assert.True(t, overBy.Equal(d(tt.overBy)), "overBy %s", overBy)
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("savings")
	assert.NoError(t, err)
	assert.Equal(t, CategorySavings, c)

	_, err = ParseCategory("luxuries")
	assert.Error(t, err)

	_, err = ParseCategory("")
	assert.Error(t, err)
}
