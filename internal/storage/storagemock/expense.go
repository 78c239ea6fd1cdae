package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/prefin/internal/storage/expense"
)

// MockIExpenseWriter is a testify mock of expense.IExpenseWriter. It also satisfies the reader
// interface, so services can be tested with it.
type MockIExpenseWriter struct {
	mock.Mock
}

var _ expense.IExpenseWriter = (*MockIExpenseWriter)(nil)

type MockIExpenseWriter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIExpenseWriter) EXPECT() *MockIExpenseWriter_Expecter {
	return &MockIExpenseWriter_Expecter{mock: &_m.Mock}
}

func (_m *MockIExpenseWriter) FindByID(ctx context.Context, id int64) (*expense.Expense, error) {
	ret := _m.Called(ctx, id)
	var r0 *expense.Expense
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*expense.Expense)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIExpenseWriter_FindByID_Call struct {
	*mock.Call
}

func (_e *MockIExpenseWriter_Expecter) FindByID(ctx interface{}, id interface{}) *MockIExpenseWriter_FindByID_Call {
	return &MockIExpenseWriter_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockIExpenseWriter_FindByID_Call) Return(_a0 *expense.Expense, _a1 error) *MockIExpenseWriter_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIExpenseWriter) List(ctx context.Context, filter *expense.ExpenseFilter) ([]*expense.Expense, error) {
	ret := _m.Called(ctx, filter)
	var r0 []*expense.Expense
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*expense.Expense)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIExpenseWriter_List_Call struct {
	*mock.Call
}

func (_e *MockIExpenseWriter_Expecter) List(ctx interface{}, filter interface{}) *MockIExpenseWriter_List_Call {
	return &MockIExpenseWriter_List_Call{Call: _e.mock.On("List", ctx, filter)}
}

func (_c *MockIExpenseWriter_List_Call) Return(_a0 []*expense.Expense, _a1 error) *MockIExpenseWriter_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIExpenseWriter) FindByIDForUpdate(ctx context.Context, id int64) (*expense.Expense, error) {
	ret := _m.Called(ctx, id)
	var r0 *expense.Expense
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*expense.Expense)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIExpenseWriter_FindByIDForUpdate_Call struct {
	*mock.Call
}

func (_e *MockIExpenseWriter_Expecter) FindByIDForUpdate(ctx interface{}, id interface{}) *MockIExpenseWriter_FindByIDForUpdate_Call {
	return &MockIExpenseWriter_FindByIDForUpdate_Call{Call: _e.mock.On("FindByIDForUpdate", ctx, id)}
}

func (_c *MockIExpenseWriter_FindByIDForUpdate_Call) Return(_a0 *expense.Expense, _a1 error) *MockIExpenseWriter_FindByIDForUpdate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIExpenseWriter) Insert(ctx context.Context, create *expense.ExpenseCreate) (*expense.Expense, error) {
	ret := _m.Called(ctx, create)
	var r0 *expense.Expense
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*expense.Expense)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIExpenseWriter_Insert_Call struct {
	*mock.Call
}

func (_e *MockIExpenseWriter_Expecter) Insert(ctx interface{}, create interface{}) *MockIExpenseWriter_Insert_Call {
	return &MockIExpenseWriter_Insert_Call{Call: _e.mock.On("Insert", ctx, create)}
}

func (_c *MockIExpenseWriter_Insert_Call) Return(_a0 *expense.Expense, _a1 error) *MockIExpenseWriter_Insert_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIExpenseWriter) Update(ctx context.Context, e *expense.Expense) (*expense.Expense, error) {
	ret := _m.Called(ctx, e)
	var r0 *expense.Expense
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*expense.Expense)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIExpenseWriter_Update_Call struct {
	*mock.Call
}

func (_e *MockIExpenseWriter_Expecter) Update(ctx interface{}, e interface{}) *MockIExpenseWriter_Update_Call {
	return &MockIExpenseWriter_Update_Call{Call: _e.mock.On("Update", ctx, e)}
}

func (_c *MockIExpenseWriter_Update_Call) Return(_a0 *expense.Expense, _a1 error) *MockIExpenseWriter_Update_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIExpenseWriter) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	r0 := ret.Error(0)
	return r0
}

type MockIExpenseWriter_Delete_Call struct {
	*mock.Call
}

func (_e *MockIExpenseWriter_Expecter) Delete(ctx interface{}, id interface{}) *MockIExpenseWriter_Delete_Call {
	return &MockIExpenseWriter_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockIExpenseWriter_Delete_Call) Return(_a0 error) *MockIExpenseWriter_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockIExpenseWriter creates a mock whose expectations are asserted on test cleanup.
func NewMockIExpenseWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIExpenseWriter {
	m := &MockIExpenseWriter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
