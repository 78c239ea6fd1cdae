package reconcile

import (
	"github.com/carson-networks/prefin/internal/apperr"
)

// Category is the 50/30/20 bucket an allocation or expense belongs to.
type Category string

const (
	CategoryNeeds   Category = "needs"
	CategoryWants   Category = "wants"
	CategorySavings Category = "savings"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryNeeds, CategoryWants, CategorySavings}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryNeeds, CategoryWants, CategorySavings:
		return c, nil
	}
	return "", apperr.Validation("category must be one of needs, wants, savings")
}

func (c Category) String() string {
	return string(c)
}
