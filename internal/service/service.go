package service

import (
	"github.com/carson-networks/prefin/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Users    *UserService
	Budgets  *BudgetService
	Expenses *ExpenseService
}

// NewService creates a new Service reading through reader.
func NewService(reader *storage.Reader) *Service {
	return &Service{
		Users:    NewUserService(reader),
		Budgets:  NewBudgetService(reader),
		Expenses: NewExpenseService(reader),
	}
}
