package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/prefin/internal/storage/budget"
)

// MockIBudgetWriter is a testify mock of budget.IBudgetWriter. It also satisfies the reader
// interface, so services can be tested with it.
type MockIBudgetWriter struct {
	mock.Mock
}

var _ budget.IBudgetWriter = (*MockIBudgetWriter)(nil)

type MockIBudgetWriter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIBudgetWriter) EXPECT() *MockIBudgetWriter_Expecter {
	return &MockIBudgetWriter_Expecter{mock: &_m.Mock}
}

func (_m *MockIBudgetWriter) FindByMonth(ctx context.Context, userID int64, month string) (*budget.Budget, error) {
	ret := _m.Called(ctx, userID, month)
	var r0 *budget.Budget
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*budget.Budget)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIBudgetWriter_FindByMonth_Call struct {
	*mock.Call
}

func (_e *MockIBudgetWriter_Expecter) FindByMonth(ctx interface{}, userID interface{}, month interface{}) *MockIBudgetWriter_FindByMonth_Call {
	return &MockIBudgetWriter_FindByMonth_Call{Call: _e.mock.On("FindByMonth", ctx, userID, month)}
}

func (_c *MockIBudgetWriter_FindByMonth_Call) Return(_a0 *budget.Budget, _a1 error) *MockIBudgetWriter_FindByMonth_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIBudgetWriter) ListByUser(ctx context.Context, userID int64) ([]*budget.Budget, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*budget.Budget
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*budget.Budget)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIBudgetWriter_ListByUser_Call struct {
	*mock.Call
}

func (_e *MockIBudgetWriter_Expecter) ListByUser(ctx interface{}, userID interface{}) *MockIBudgetWriter_ListByUser_Call {
	return &MockIBudgetWriter_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID)}
}

func (_c *MockIBudgetWriter_ListByUser_Call) Return(_a0 []*budget.Budget, _a1 error) *MockIBudgetWriter_ListByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIBudgetWriter) Upsert(ctx context.Context, upsert *budget.BudgetUpsert) (*budget.Budget, bool, error) {
	ret := _m.Called(ctx, upsert)
	var r0 *budget.Budget
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*budget.Budget)
	}
	r1 := ret.Bool(1)
	r2 := ret.Error(2)
	return r0, r1, r2
}

type MockIBudgetWriter_Upsert_Call struct {
	*mock.Call
}

func (_e *MockIBudgetWriter_Expecter) Upsert(ctx interface{}, upsert interface{}) *MockIBudgetWriter_Upsert_Call {
	return &MockIBudgetWriter_Upsert_Call{Call: _e.mock.On("Upsert", ctx, upsert)}
}

func (_c *MockIBudgetWriter_Upsert_Call) Return(_a0 *budget.Budget, _a1 bool, _a2 error) *MockIBudgetWriter_Upsert_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_m *MockIBudgetWriter) DeleteByMonth(ctx context.Context, userID int64, month string) error {
	ret := _m.Called(ctx, userID, month)
	r0 := ret.Error(0)
	return r0
}

type MockIBudgetWriter_DeleteByMonth_Call struct {
	*mock.Call
}

func (_e *MockIBudgetWriter_Expecter) DeleteByMonth(ctx interface{}, userID interface{}, month interface{}) *MockIBudgetWriter_DeleteByMonth_Call {
	return &MockIBudgetWriter_DeleteByMonth_Call{Call: _e.mock.On("DeleteByMonth", ctx, userID, month)}
}

func (_c *MockIBudgetWriter_DeleteByMonth_Call) Return(_a0 error) *MockIBudgetWriter_DeleteByMonth_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockIBudgetWriter creates a mock whose expectations are asserted on test cleanup.
func NewMockIBudgetWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIBudgetWriter {
	m := &MockIBudgetWriter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
