package storagemock

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/prefin/internal/storage"
)

// Committer records how a transaction ended.
type Committer struct {
	mu         sync.Mutex
	CommitErr  error
	Committed  bool
	RolledBack bool
}

var _ storage.Committer = (*Committer)(nil)

func (c *Committer) Commit(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.CommitErr != nil {
		return c.CommitErr
	}
	c.Committed = true
	return nil
}

func (c *Committer) Rollback(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RolledBack = true
	return nil
}

// State returns whether the transaction was committed and rolled back.
func (c *Committer) State() (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Committed, c.RolledBack
}

// Mocks bundles one mock per table.
type Mocks struct {
	Users    *MockIUserWriter
	Budgets  *MockIBudgetWriter
	Expenses *MockIExpenseWriter
	Tx       *Committer
}

func NewMocks(t interface {
	mock.TestingT
	Cleanup(func())
}) *Mocks {
	return &Mocks{
		Users:    NewMockIUserWriter(t),
		Budgets:  NewMockIBudgetWriter(t),
		Expenses: NewMockIExpenseWriter(t),
		Tx:       &Committer{},
	}
}

// Reader returns a storage.Reader backed by the mocks.
func (m *Mocks) Reader() *storage.Reader {
	return &storage.Reader{
		Users:    m.Users,
		Budgets:  m.Budgets,
		Expenses: m.Expenses,
	}
}

// Writer returns a storage.Writer backed by the mocks and Tx.
func (m *Mocks) Writer() *storage.Writer {
	return &storage.Writer{
		Tx:       m.Tx,
		Users:    m.Users,
		Budgets:  m.Budgets,
		Expenses: m.Expenses,
	}
}
