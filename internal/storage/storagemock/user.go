// Package storagemock holds testify mocks of the storage interfaces for
// service, action and handler tests.
package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/prefin/internal/storage/user"
)

// MockIUserWriter is a testify mock of user.IUserWriter. It also satisfies the reader
// interface, so services can be tested with it.
type MockIUserWriter struct {
	mock.Mock
}

var _ user.IUserWriter = (*MockIUserWriter)(nil)

type MockIUserWriter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIUserWriter) EXPECT() *MockIUserWriter_Expecter {
	return &MockIUserWriter_Expecter{mock: &_m.Mock}
}

func (_m *MockIUserWriter) FindByID(ctx context.Context, id int64) (*user.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *user.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*user.User)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIUserWriter_FindByID_Call struct {
	*mock.Call
}

func (_e *MockIUserWriter_Expecter) FindByID(ctx interface{}, id interface{}) *MockIUserWriter_FindByID_Call {
	return &MockIUserWriter_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockIUserWriter_FindByID_Call) Return(_a0 *user.User, _a1 error) *MockIUserWriter_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIUserWriter) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	ret := _m.Called(ctx, email)
	var r0 *user.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*user.User)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIUserWriter_FindByEmail_Call struct {
	*mock.Call
}

func (_e *MockIUserWriter_Expecter) FindByEmail(ctx interface{}, email interface{}) *MockIUserWriter_FindByEmail_Call {
	return &MockIUserWriter_FindByEmail_Call{Call: _e.mock.On("FindByEmail", ctx, email)}
}

func (_c *MockIUserWriter_FindByEmail_Call) Return(_a0 *user.User, _a1 error) *MockIUserWriter_FindByEmail_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIUserWriter) FindByIDForUpdate(ctx context.Context, id int64) (*user.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *user.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*user.User)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIUserWriter_FindByIDForUpdate_Call struct {
	*mock.Call
}

func (_e *MockIUserWriter_Expecter) FindByIDForUpdate(ctx interface{}, id interface{}) *MockIUserWriter_FindByIDForUpdate_Call {
	return &MockIUserWriter_FindByIDForUpdate_Call{Call: _e.mock.On("FindByIDForUpdate", ctx, id)}
}

func (_c *MockIUserWriter_FindByIDForUpdate_Call) Return(_a0 *user.User, _a1 error) *MockIUserWriter_FindByIDForUpdate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIUserWriter) Insert(ctx context.Context, create *user.UserCreate) (*user.User, error) {
	ret := _m.Called(ctx, create)
	var r0 *user.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*user.User)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIUserWriter_Insert_Call struct {
	*mock.Call
}

func (_e *MockIUserWriter_Expecter) Insert(ctx interface{}, create interface{}) *MockIUserWriter_Insert_Call {
	return &MockIUserWriter_Insert_Call{Call: _e.mock.On("Insert", ctx, create)}
}

func (_c *MockIUserWriter_Insert_Call) Return(_a0 *user.User, _a1 error) *MockIUserWriter_Insert_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockIUserWriter) Update(ctx context.Context, u *user.User) (*user.User, error) {
	ret := _m.Called(ctx, u)
	var r0 *user.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*user.User)
	}
	r1 := ret.Error(1)
	return r0, r1
}

type MockIUserWriter_Update_Call struct {
	*mock.Call
}

func (_e *MockIUserWriter_Expecter) Update(ctx interface{}, u interface{}) *MockIUserWriter_Update_Call {
	return &MockIUserWriter_Update_Call{Call: _e.mock.On("Update", ctx, u)}
}

func (_c *MockIUserWriter_Update_Call) Return(_a0 *user.User, _a1 error) *MockIUserWriter_Update_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockIUserWriter creates a mock whose expectations are asserted on test cleanup.
func NewMockIUserWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIUserWriter {
	m := &MockIUserWriter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
