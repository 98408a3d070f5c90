package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	expensesDomain "github.com/gigwell/scheduled-tasks/expenses/domain"
	expensesService "github.com/gigwell/scheduled-tasks/expenses/service"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/imports/domain"
	"github.com/gigwell/scheduled-tasks/imports/service/iface"
	invoicingDal "github.com/gigwell/scheduled-tasks/invoicing/dal"
	invoicingDomain "github.com/gigwell/scheduled-tasks/invoicing/domain"
	"github.com/gigwell/scheduled-tasks/logger"
	"github.com/gigwell/scheduled-tasks/slice"
)

const (
	// analyzeBatchSize caps concurrent extraction requests so a large
	// upload does not overwhelm the extraction backend.
	analyzeBatchSize = 3

	// clientMatchConfidenceThreshold is the cutoff above which an invoice's
	// client match is auto-selected. Below it the user picks manually from
	// the suggestions.
	clientMatchConfidenceThreshold = 0.85
)

type ImportService struct {
	loggerProvider logger.Provider
	sessions       *sessionStore
	extractor      iface.Extractor
	duplicates     iface.DuplicateChecker
	history        iface.HistoryProvider
	expenses       iface.ExpenseCreator
	invoices       iface.InvoiceCreator
}

func NewImportService(log logger.Provider, conn *connection.Connection, extractor iface.Extractor) *ImportService {
	expenseService := expensesService.NewExpenseService(log, conn)

	return &ImportService{
		loggerProvider: log,
		sessions:       newSessionStore(),
		extractor:      extractor,
		duplicates:     expenseService,
		history:        expenseService,
		expenses:       expenseService,
		invoices:       invoicingDal.NewInvoicesFirestoreWithClient(conn.Firestore),
	}
}

func NewImportServiceWithDeps(
	log logger.Provider,
	extractor iface.Extractor,
	duplicates iface.DuplicateChecker,
	history iface.HistoryProvider,
	expenses iface.ExpenseCreator,
	invoices iface.InvoiceCreator,
) *ImportService {
	return &ImportService{
		loggerProvider: log,
		sessions:       newSessionStore(),
		extractor:      extractor,
		duplicates:     duplicates,
		history:        history,
		expenses:       expenses,
		invoices:       invoices,
	}
}

// OpenSession starts an import wizard run, loading the company's supplier
// history once for the session's lifetime.
func (s *ImportService) OpenSession(ctx context.Context, companyID string) (*domain.Session, error) {
	history, err := s.history.SupplierHistory(ctx, companyID)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		History:   history,
		CreatedAt: time.Now().UTC(),
	}

	s.sessions.put(session)

	return session, nil
}

func (s *ImportService) GetSession(ctx context.Context, companyID, sessionID string) (*domain.Session, error) {
	return s.sessions.get(companyID, sessionID)
}

func (s *ImportService) CloseSession(ctx context.Context, companyID, sessionID string) {
	s.sessions.delete(sessionID)
}

// AnalyzeFiles runs the uploaded files through extraction in fixed-size
// concurrent batches, then duplicate-checks the extracted expenses. Per-file
// failures are recorded inline on the file; the user re-triggers analysis
// for those.
func (s *ImportService) AnalyzeFiles(ctx context.Context, companyID, sessionID string, uploads []domain.FileUpload) (*domain.Session, error) {
	session, err := s.sessions.get(companyID, sessionID)
	if err != nil {
		return nil, err
	}

	files := make([]*domain.AnalyzedFile, len(uploads))
	for i, upload := range uploads {
		files[i] = &domain.AnalyzedFile{
			ID:       uuid.NewString(),
			Name:     upload.Name,
			Status:   domain.FileStatusPending,
			Selected: true,
		}
	}

	session.Files = append(session.Files, files...)

	batches := slice.Chunk(uploads, analyzeBatchSize)

	offset := 0

	for _, batch := range batches {
		g, gctx := errgroup.WithContext(ctx)

		for i, upload := range batch {
			file := files[offset+i]
			upload := upload

			g.Go(func() error {
				s.analyzeFile(gctx, session, file, upload)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		offset += len(batch)
	}

	if err := s.flagDuplicates(ctx, companyID, files); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *ImportService) analyzeFile(ctx context.Context, session *domain.Session, file *domain.AnalyzedFile, upload domain.FileUpload) {
	file.Status = domain.FileStatusAnalyzing

	doc, err := s.extractor.Extract(ctx, upload)
	if err != nil {
		file.Status = domain.FileStatusError
		file.Error = err.Error()

		s.loggerProvider(ctx).Errorf("extraction of %s failed: %s", upload.Name, err)

		return
	}

	file.Status = domain.FileStatusDone
	file.Result = doc

	switch doc.Type {
	case domain.DocumentTypeExpense:
		s.applyHistoryMatch(session, doc.Expense)
	case domain.DocumentTypeInvoice:
		s.applyClientMatch(file, doc)
	}
}

// applyHistoryMatch adopts the category of a historical supplier match.
// Currency is never inherited; suppliers bill in different currencies
// across invoices.
func (s *ImportService) applyHistoryMatch(session *domain.Session, data *domain.ExpenseData) {
	if data == nil {
		return
	}

	if entry := session.History.Match(data.Supplier); entry != nil {
		data.Category = entry.Category
	}
}

func (s *ImportService) applyClientMatch(file *domain.AnalyzedFile, doc *domain.ExtractedDocument) {
	if doc.ClientMatch == nil {
		return
	}

	if doc.ClientMatch.Confidence >= clientMatchConfidenceThreshold {
		file.SelectedClientID = doc.ClientMatch.ClientID
	}
}

// flagDuplicates checks extracted expenses against the store and deselects
// flagged rows. The row stays visible so the user can re-select it to
// import anyway.
func (s *ImportService) flagDuplicates(ctx context.Context, companyID string, files []*domain.AnalyzedFile) error {
	var candidates []expensesDomain.ExpenseCandidate

	var candidateFiles []*domain.AnalyzedFile

	for _, file := range files {
		if file.Status != domain.FileStatusDone || file.Result.Type != domain.DocumentTypeExpense {
			continue
		}

		candidate := expensesDomain.ExpenseCandidate{
			Date:     file.Result.Expense.Date,
			Supplier: file.Result.Expense.Supplier,
			Amount:   file.Result.Expense.Amount,
		}

		if !candidate.Complete() {
			continue
		}

		candidates = append(candidates, candidate)
		candidateFiles = append(candidateFiles, file)
	}

	if len(candidates) == 0 {
		return nil
	}

	results, err := s.duplicates.CheckDuplicates(ctx, companyID, candidates)
	if err != nil {
		return err
	}

	for i, result := range results {
		if i >= len(candidateFiles) || !result.IsDuplicate {
			continue
		}

		file := candidateFiles[i]
		file.IsDuplicate = true
		file.Selected = false

		if result.ExistingExpense != nil {
			file.ExistingExpenseID = result.ExistingExpense.ID
		}
	}

	return nil
}

// Commit imports the selected analyzed files as expense rows and reports a
// per-file outcome list. One bad file never fails the whole batch.
func (s *ImportService) Commit(ctx context.Context, companyID, sessionID string) (*domain.CommitSummary, error) {
	session, err := s.sessions.get(companyID, sessionID)
	if err != nil {
		return nil, err
	}

	summary := &domain.CommitSummary{}

	for _, file := range session.Files {
		if file.Status != domain.FileStatusDone {
			continue
		}

		if !file.Selected {
			if file.IsDuplicate {
				summary.Skipped++
				summary.Results = append(summary.Results, domain.CommitResult{
					FileID:             file.ID,
					SkippedAsDuplicate: true,
				})
			}

			continue
		}

		if err := s.commitFile(ctx, companyID, file); err != nil {
			summary.Failed++
			summary.Results = append(summary.Results, domain.CommitResult{
				FileID: file.ID,
				Error:  err.Error(),
			})

			continue
		}

		summary.Succeeded++
		summary.Results = append(summary.Results, domain.CommitResult{
			FileID:  file.ID,
			Success: true,
		})
	}

	return summary, nil
}

func (s *ImportService) commitFile(ctx context.Context, companyID string, file *domain.AnalyzedFile) error {
	switch file.Result.Type {
	case domain.DocumentTypeExpense:
		data := file.Result.Expense

		_, err := s.expenses.CreateExpense(ctx, companyID, &expensesDomain.Expense{
			Date:     data.Date,
			Supplier: data.Supplier,
			Amount:   data.Amount,
			Currency: data.Currency,
			Category: data.Category,
		})

		return err
	case domain.DocumentTypeInvoice:
		data := file.Result.Invoice

		_, err := s.invoices.CreateInvoice(ctx, companyID, &invoicingDomain.Invoice{
			ClientID: file.SelectedClientID,
			Currency: data.Currency,
			Lines: []invoicingDomain.InvoiceLine{
				{Description: file.Name, Amount: data.Amount},
			},
			Totals: invoicingDomain.InvoiceTotals{
				Subtotal: data.Amount,
				Total:    data.Amount,
			},
		})

		return err
	default:
		return fmt.Errorf("unknown document type %q", file.Result.Type)
	}
}
