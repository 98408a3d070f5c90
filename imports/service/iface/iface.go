//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	expensesDomain "github.com/gigwell/scheduled-tasks/expenses/domain"
	"github.com/gigwell/scheduled-tasks/imports/domain"
	invoicingDomain "github.com/gigwell/scheduled-tasks/invoicing/domain"
)

// Extractor is the external document extraction backend.
type Extractor interface {
	Extract(ctx context.Context, file domain.FileUpload) (*domain.ExtractedDocument, error)
}

// DuplicateChecker answers whether candidate expenses duplicate stored ones.
// Results are index-aligned with the candidates.
type DuplicateChecker interface {
	CheckDuplicates(ctx context.Context, companyID string, candidates []expensesDomain.ExpenseCandidate) ([]expensesDomain.DuplicateResult, error)
}

// HistoryProvider serves the supplier->category mapping loaded once per
// import session.
type HistoryProvider interface {
	SupplierHistory(ctx context.Context, companyID string) (*expensesDomain.SupplierHistory, error)
}

// ExpenseCreator persists committed expense rows.
type ExpenseCreator interface {
	CreateExpense(ctx context.Context, companyID string, expense *expensesDomain.Expense) (string, error)
}

// InvoiceCreator persists invoices built from imported invoice documents.
type InvoiceCreator interface {
	CreateInvoice(ctx context.Context, companyID string, invoice *invoicingDomain.Invoice) (string, error)
}
