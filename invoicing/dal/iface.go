//go:generate mockery --name Invoices --output ./mocks
package dal

import (
	"context"
	"errors"

	"github.com/gigwell/scheduled-tasks/invoicing/domain"
)

// ErrNotFound is returned when an invoice does not exist or belongs to a
// different company than the one asked for.
var ErrNotFound = errors.New("invoice not found")

type Invoices interface {
	GetInvoice(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, companyID string) ([]*domain.Invoice, error)
	CreateInvoice(ctx context.Context, companyID string, invoice *domain.Invoice) (string, error)
	NextInvoiceNumber(ctx context.Context, companyID string) (string, error)
}
