//go:generate mockery --name Expenses --output ./mocks
package dal

import (
	"context"
	"errors"

	"github.com/gigwell/scheduled-tasks/expenses/domain"
)

// ErrNotFound is returned when an expense does not exist or belongs to a
// different company than the one asked for.
var ErrNotFound = errors.New("expense not found")

type Expenses interface {
	GetExpense(ctx context.Context, companyID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, companyID string) ([]*domain.Expense, error)
	CreateExpense(ctx context.Context, companyID string, expense *domain.Expense) (string, error)
	FindByTriple(ctx context.Context, companyID, date, supplier string, amount float64) (*domain.Expense, error)
}
