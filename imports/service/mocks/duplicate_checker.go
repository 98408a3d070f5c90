package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	expensesDomain "github.com/gigwell/scheduled-tasks/expenses/domain"
	invoicingDomain "github.com/gigwell/scheduled-tasks/invoicing/domain"
)

type DuplicateChecker struct {
	mock.Mock
}

func (m *DuplicateChecker) CheckDuplicates(ctx context.Context, companyID string, candidates []expensesDomain.ExpenseCandidate) ([]expensesDomain.DuplicateResult, error) {
	args := m.Called(ctx, companyID, candidates)

	var results []expensesDomain.DuplicateResult
	if args.Get(0) != nil {
		results = args.Get(0).([]expensesDomain.DuplicateResult)
	}

	return results, args.Error(1)
}

type HistoryProvider struct {
	mock.Mock
}

func (m *HistoryProvider) SupplierHistory(ctx context.Context, companyID string) (*expensesDomain.SupplierHistory, error) {
	args := m.Called(ctx, companyID)

	var history *expensesDomain.SupplierHistory
	if args.Get(0) != nil {
		history = args.Get(0).(*expensesDomain.SupplierHistory)
	}

	return history, args.Error(1)
}

type ExpenseCreator struct {
	mock.Mock
}

func (m *ExpenseCreator) CreateExpense(ctx context.Context, companyID string, expense *expensesDomain.Expense) (string, error) {
	args := m.Called(ctx, companyID, expense)
	return args.String(0), args.Error(1)
}

type InvoiceCreator struct {
	mock.Mock
}

func (m *InvoiceCreator) CreateInvoice(ctx context.Context, companyID string, invoice *invoicingDomain.Invoice) (string, error) {
	args := m.Called(ctx, companyID, invoice)
	return args.String(0), args.Error(1)
}
