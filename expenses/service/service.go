package service

import (
	"context"

	"github.com/gigwell/scheduled-tasks/expenses/dal"
	"github.com/gigwell/scheduled-tasks/expenses/domain"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/logger"
)

type ExpenseService struct {
	loggerProvider logger.Provider
	expensesDAL    dal.Expenses
}

func NewExpenseService(log logger.Provider, conn *connection.Connection) *ExpenseService {
	return &ExpenseService{
		loggerProvider: log,
		expensesDAL:    dal.NewExpensesFirestoreWithClient(conn.Firestore),
	}
}

func NewExpenseServiceWithDeps(log logger.Provider, expensesDAL dal.Expenses) *ExpenseService {
	return &ExpenseService{
		loggerProvider: log,
		expensesDAL:    expensesDAL,
	}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, companyID string, expense *domain.Expense) (string, error) {
	return s.expensesDAL.CreateExpense(ctx, companyID, expense)
}

// CheckDuplicates flags each candidate that exactly matches a stored expense
// on the (date, supplier, amount) triple. Results are index-aligned with the
// candidates; incomplete candidates are never flagged.
func (s *ExpenseService) CheckDuplicates(ctx context.Context, companyID string, candidates []domain.ExpenseCandidate) ([]domain.DuplicateResult, error) {
	results := make([]domain.DuplicateResult, len(candidates))

	for i, candidate := range candidates {
		if !candidate.Complete() {
			continue
		}

		existing, err := s.expensesDAL.FindByTriple(ctx, companyID, candidate.Date, candidate.Supplier, candidate.Amount)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			results[i] = domain.DuplicateResult{
				IsDuplicate:     true,
				ExistingExpense: existing,
			}
		}
	}

	return results, nil
}

// SupplierHistory aggregates the company's stored expenses into the ordered
// supplier->category mapping served to import sessions. Entry order follows
// expense creation order, which the partial matcher depends on.
func (s *ExpenseService) SupplierHistory(ctx context.Context, companyID string) (*domain.SupplierHistory, error) {
	expenses, err := s.expensesDAL.ListExpenses(ctx, companyID)
	if err != nil {
		return nil, err
	}

	history := &domain.SupplierHistory{}

	for _, expense := range expenses {
		history.Add(expense.Supplier, expense.Category, expense.Currency)
	}

	return history, nil
}
