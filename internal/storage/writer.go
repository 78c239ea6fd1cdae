package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/prefin/internal/storage/budget"
	"github.com/carson-networks/prefin/internal/storage/expense"
	"github.com/carson-networks/prefin/internal/storage/user"
)

// Committer ends a transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the table writers of one transaction.
type Writer struct {
	Tx       Committer
	Users    user.IUserWriter
	Budgets  budget.IBudgetWriter
	Expenses expense.IExpenseWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:       tx,
		Users:    user.NewWriter(tx),
		Budgets:  budget.NewWriter(tx),
		Expenses: expense.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.Tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.Tx.Rollback(ctx)
}
