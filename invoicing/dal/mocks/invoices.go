package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gigwell/scheduled-tasks/invoicing/domain"
)

type Invoices struct {
	mock.Mock
}

func (m *Invoices) GetInvoice(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, companyID, invoiceID)

	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}

	return invoice, args.Error(1)
}

func (m *Invoices) ListInvoices(ctx context.Context, companyID string) ([]*domain.Invoice, error) {
	args := m.Called(ctx, companyID)

	var invoices []*domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]*domain.Invoice)
	}

	return invoices, args.Error(1)
}

func (m *Invoices) CreateInvoice(ctx context.Context, companyID string, invoice *domain.Invoice) (string, error) {
	args := m.Called(ctx, companyID, invoice)
	return args.String(0), args.Error(1)
}

func (m *Invoices) NextInvoiceNumber(ctx context.Context, companyID string) (string, error) {
	args := m.Called(ctx, companyID)
	return args.String(0), args.Error(1)
}
