package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/prefin/internal/storage/budget"
	"github.com/carson-networks/prefin/internal/storage/expense"
	"github.com/carson-networks/prefin/internal/storage/user"
)

type Reader struct {
	Users    user.IUserReader
	Budgets  budget.IBudgetReader
	Expenses expense.IExpenseReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Users:    user.NewReader(exec),
		Budgets:  budget.NewReader(exec),
		Expenses: expense.NewReader(exec),
	}
}
