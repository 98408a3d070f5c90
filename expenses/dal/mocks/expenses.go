package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gigwell/scheduled-tasks/expenses/domain"
)

type Expenses struct {
	mock.Mock
}

func (m *Expenses) GetExpense(ctx context.Context, companyID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, companyID, expenseID)

	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}

	return expense, args.Error(1)
}

func (m *Expenses) ListExpenses(ctx context.Context, companyID string) ([]*domain.Expense, error) {
	args := m.Called(ctx, companyID)

	var expenses []*domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]*domain.Expense)
	}

	return expenses, args.Error(1)
}

func (m *Expenses) CreateExpense(ctx context.Context, companyID string, expense *domain.Expense) (string, error) {
	args := m.Called(ctx, companyID, expense)
	return args.String(0), args.Error(1)
}

func (m *Expenses) FindByTriple(ctx context.Context, companyID, date, supplier string, amount float64) (*domain.Expense, error) {
	args := m.Called(ctx, companyID, date, supplier, amount)

	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}

	return expense, args.Error(1)
}
