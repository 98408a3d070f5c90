package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	clientsDal "github.com/gigwell/scheduled-tasks/clients/dal"
	companyDal "github.com/gigwell/scheduled-tasks/company/dal"
	"github.com/gigwell/scheduled-tasks/fixer"
	converter "github.com/gigwell/scheduled-tasks/fixer/converter/iface"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	gigsDal "github.com/gigwell/scheduled-tasks/gigs/dal"
	"github.com/gigwell/scheduled-tasks/invoicing/dal"
	"github.com/gigwell/scheduled-tasks/invoicing/domain"
	"github.com/gigwell/scheduled-tasks/logger"
	"github.com/gigwell/scheduled-tasks/slice"
)

var (
	ErrNoLines          = errors.New("an invoice needs at least one line")
	ErrNoClientSelected = errors.New("no client selected")
)

const defaultDueDays = 30

type InvoiceService struct {
	loggerProvider logger.Provider
	invoicesDAL    dal.Invoices
	gigsDAL        gigsDal.Gigs
	companiesDAL   companyDal.Companies
	clientsDAL     clientsDal.Clients
	converter      converter.Converter
}

func NewInvoiceService(
	log logger.Provider,
	conn *connection.Connection,
	currencyConverter converter.Converter,
) *InvoiceService {
	return &InvoiceService{
		loggerProvider: log,
		invoicesDAL:    dal.NewInvoicesFirestoreWithClient(conn.Firestore),
		gigsDAL:        gigsDal.NewGigsFirestoreWithClient(conn.Firestore),
		companiesDAL:   companyDal.NewCompaniesFirestoreWithClient(conn.Firestore),
		clientsDAL:     clientsDal.NewClientsFirestoreWithClient(conn.Firestore),
		converter:      currencyConverter,
	}
}

func NewInvoiceServiceWithDeps(
	log logger.Provider,
	invoicesDAL dal.Invoices,
	gigsDAL gigsDal.Gigs,
	companiesDAL companyDal.Companies,
	clientsDAL clientsDal.Clients,
	currencyConverter converter.Converter,
) *InvoiceService {
	return &InvoiceService{
		loggerProvider: log,
		invoicesDAL:    invoicesDAL,
		gigsDAL:        gigsDAL,
		companiesDAL:   companiesDAL,
		clientsDAL:     clientsDAL,
		converter:      currencyConverter,
	}
}

// CreateInvoiceRequest carries the user's invoice dialog submission: the
// selected gigs in selection order, plus any manually added lines.
type CreateInvoiceRequest struct {
	ClientID   string               `json:"clientId"`
	GigIDs     []string             `json:"gigIds"`
	ExtraLines []domain.InvoiceLine `json:"extraLines"`
	Locale     string               `json:"locale"`
	IssueDate  time.Time            `json:"issueDate"`
}

// Preview assembles lines and totals without persisting anything. It backs
// the live preview rendered while the invoice is edited.
func (s *InvoiceService) Preview(ctx context.Context, companyID string, req *CreateInvoiceRequest) (*domain.Invoice, error) {
	return s.assemble(ctx, companyID, req)
}

// CreateInvoice assembles and persists the invoice, assigning the next
// sequential invoice number for the company.
func (s *InvoiceService) CreateInvoice(ctx context.Context, companyID string, req *CreateInvoiceRequest) (*domain.Invoice, error) {
	if req.ClientID == "" {
		return nil, ErrNoClientSelected
	}

	invoice, err := s.assemble(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	invoice.Number = s.nextNumber(ctx, companyID)

	invoiceID, err := s.invoicesDAL.CreateInvoice(ctx, companyID, invoice)
	if err != nil {
		return nil, err
	}

	invoice.ID = invoiceID

	return invoice, nil
}

func (s *InvoiceService) assemble(ctx context.Context, companyID string, req *CreateInvoiceRequest) (*domain.Invoice, error) {
	company, err := s.companiesDAL.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	gigTypes, err := s.companiesDAL.ListGigTypes(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rates := make(map[string]float64, len(gigTypes))
	for _, gigType := range gigTypes {
		rates[gigType.ID] = gigType.VatRate
	}

	var lines []domain.InvoiceLine

	if gigIDs := slice.Unique(req.GigIDs); len(gigIDs) > 0 {
		gigs, err := s.gigsDAL.GetGigs(ctx, companyID, gigIDs)
		if err != nil {
			return nil, err
		}

		lines = s.BuildGigLines(ctx, company, gigTypes, gigs, req.Locale)
	}

	lines = append(lines, req.ExtraLines...)

	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	s.warnUnresolvedGigTypes(ctx, lines, rates)

	reverseCharge := false

	if req.ClientID != "" {
		client, err := s.clientsDAL.GetClient(ctx, companyID, req.ClientID)
		if err != nil {
			return nil, err
		}

		reverseCharge = IsReverseCharge(company.Country, client.Country, client.VatNumber)
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now().UTC()
	}

	totals := ComputeTotals(lines, rates, reverseCharge)

	return &domain.Invoice{
		CompanyID:     companyID,
		ClientID:      req.ClientID,
		Currency:      company.BaseCurrency,
		ReverseCharge: reverseCharge,
		Lines:         ResolveLineRates(lines, rates),
		Totals:        totals,
		DisplayTotal:  fixer.FormatCurrencyAmountFloat(displayPrinter, totals.Total, 2, company.BaseCurrency),
		IssueDate:     issueDate,
		DueDate:       issueDate.AddDate(0, 0, defaultDueDays),
	}, nil
}

var displayPrinter = message.NewPrinter(language.English)

// warnUnresolvedGigTypes surfaces lines whose gig type has no configured VAT
// rate; such lines are taxed at 0 instead of failing the invoice.
func (s *InvoiceService) warnUnresolvedGigTypes(ctx context.Context, lines []domain.InvoiceLine, rates map[string]float64) {
	for _, line := range lines {
		if line.GigTypeID == "" {
			continue
		}

		if _, ok := rates[line.GigTypeID]; !ok {
			s.loggerProvider(ctx).Warningf("no VAT rate configured for gig type %s, line %q taxed at 0", line.GigTypeID, line.Description)
		}
	}
}

// nextNumber returns the company's next sequential invoice number, falling
// back to a random identifier if the counter cannot be advanced.
func (s *InvoiceService) nextNumber(ctx context.Context, companyID string) string {
	number, err := s.invoicesDAL.NextInvoiceNumber(ctx, companyID)
	if err != nil {
		s.loggerProvider(ctx).Warningf("invoice counter for company %s failed, falling back to random number: %s", companyID, err)
		return uuid.NewString()
	}

	return number
}
