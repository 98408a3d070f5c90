package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	clientsDomain "github.com/gigwell/scheduled-tasks/clients/domain"
	expensesDomain "github.com/gigwell/scheduled-tasks/expenses/domain"
	"github.com/gigwell/scheduled-tasks/imports/domain"
	"github.com/gigwell/scheduled-tasks/imports/service/mocks"
	"github.com/gigwell/scheduled-tasks/logger"
)

func setupImportService(
	extractor *mocks.Extractor,
	duplicates *mocks.DuplicateChecker,
	history *mocks.HistoryProvider,
	expenses *mocks.ExpenseCreator,
	invoices *mocks.InvoiceCreator,
) *ImportService {
	return NewImportServiceWithDeps(logger.FromContext, extractor, duplicates, history, expenses, invoices)
}

func openSession(t *testing.T, s *ImportService, history *mocks.HistoryProvider) *domain.Session {
	t.Helper()

	ctx := context.Background()

	history.On("SupplierHistory", ctx, "company-1").Return(&expensesDomain.SupplierHistory{
		Entries: []*expensesDomain.SupplierHistoryEntry{
			{Supplier: "spotify", Category: "Subscription", Currency: "USD", Count: 3},
		},
	}, nil)

	session, err := s.OpenSession(ctx, "company-1")
	assert.NoError(t, err)

	return session
}

func TestOpenSession(t *testing.T) {
	history := &mocks.HistoryProvider{}

	s := setupImportService(&mocks.Extractor{}, &mocks.DuplicateChecker{}, history, &mocks.ExpenseCreator{}, &mocks.InvoiceCreator{})

	session := openSession(t, s, history)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "company-1", session.CompanyID)
	assert.Len(t, session.History.Entries, 1)

	t.Run("session is retrievable for its company only", func(t *testing.T) {
		ctx := context.Background()

		found, err := s.GetSession(ctx, "company-1", session.ID)
		assert.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)

		_, err = s.GetSession(ctx, "company-2", session.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestAnalyzeFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("expense adopts historical category", func(t *testing.T) {
		extractor := &mocks.Extractor{}
		extractor.On("Extract", mock.Anything, mock.AnythingOfType("domain.FileUpload")).Return(&domain.ExtractedDocument{
			Type: domain.DocumentTypeExpense,
			Expense: &domain.ExpenseData{
				Date: "2024-03-01", Supplier: "Spotify AB", Amount: 109, Currency: "SEK", Category: "Other",
			},
		}, nil)

		duplicates := &mocks.DuplicateChecker{}
		duplicates.On("CheckDuplicates", ctx, "company-1", mock.Anything).
			Return([]expensesDomain.DuplicateResult{{}}, nil)

		history := &mocks.HistoryProvider{}

		s := setupImportService(extractor, duplicates, history, &mocks.ExpenseCreator{}, &mocks.InvoiceCreator{})
		session := openSession(t, s, history)

		result, err := s.AnalyzeFiles(ctx, "company-1", session.ID, []domain.FileUpload{
			{Name: "receipt.pdf"},
		})

		assert.NoError(t, err)

		if assert.Len(t, result.Files, 1) {
			file := result.Files[0]
			assert.Equal(t, domain.FileStatusDone, file.Status)
			assert.Equal(t, "Subscription", file.Result.Expense.Category)
			// currency always comes from the document itself
			assert.Equal(t, "SEK", file.Result.Expense.Currency)
			assert.True(t, file.Selected)
		}
	})

	t.Run("duplicate flag deselects the row", func(t *testing.T) {
		extractor := &mocks.Extractor{}
		extractor.On("Extract", mock.Anything, mock.AnythingOfType("domain.FileUpload")).Return(&domain.ExtractedDocument{
			Type: domain.DocumentTypeExpense,
			Expense: &domain.ExpenseData{
				Date: "2024-01-05", Supplier: "Ikea", Amount: 499, Currency: "SEK",
			},
		}, nil)

		duplicates := &mocks.DuplicateChecker{}
		duplicates.On("CheckDuplicates", ctx, "company-1", []expensesDomain.ExpenseCandidate{
			{Date: "2024-01-05", Supplier: "Ikea", Amount: 499},
		}).Return([]expensesDomain.DuplicateResult{
			{IsDuplicate: true, ExistingExpense: &expensesDomain.Expense{ID: "exp-1"}},
		}, nil)

		history := &mocks.HistoryProvider{}

		s := setupImportService(extractor, duplicates, history, &mocks.ExpenseCreator{}, &mocks.InvoiceCreator{})
		session := openSession(t, s, history)

		result, err := s.AnalyzeFiles(ctx, "company-1", session.ID, []domain.FileUpload{
			{Name: "ikea.pdf"},
		})

		assert.NoError(t, err)

		file := result.Files[0]
		assert.True(t, file.IsDuplicate)
		assert.False(t, file.Selected)
		assert.Equal(t, "exp-1", file.ExistingExpenseID)
	})

	t.Run("client auto-match honors the confidence threshold", func(t *testing.T) {
		extractor := &mocks.Extractor{}
		extractor.On("Extract", mock.Anything, mock.MatchedBy(func(f domain.FileUpload) bool { return f.Name == "strong.pdf" })).
			Return(&domain.ExtractedDocument{
				Type:        domain.DocumentTypeInvoice,
				Invoice:     &domain.InvoiceData{ClientName: "Konserthuset", Amount: 12000},
				ClientMatch: &clientsDomain.MatchResult{ClientID: "client-1", Confidence: 0.9},
			}, nil)
		extractor.On("Extract", mock.Anything, mock.MatchedBy(func(f domain.FileUpload) bool { return f.Name == "weak.pdf" })).
			Return(&domain.ExtractedDocument{
				Type:        domain.DocumentTypeInvoice,
				Invoice:     &domain.InvoiceData{ClientName: "Konserthuset", Amount: 12000},
				ClientMatch: &clientsDomain.MatchResult{ClientID: "client-1", Confidence: 0.5},
			}, nil)

		history := &mocks.HistoryProvider{}

		s := setupImportService(extractor, &mocks.DuplicateChecker{}, history, &mocks.ExpenseCreator{}, &mocks.InvoiceCreator{})
		session := openSession(t, s, history)

		result, err := s.AnalyzeFiles(ctx, "company-1", session.ID, []domain.FileUpload{
			{Name: "strong.pdf"},
			{Name: "weak.pdf"},
		})

		assert.NoError(t, err)

		if assert.Len(t, result.Files, 2) {
			assert.Equal(t, "client-1", result.Files[0].SelectedClientID)
			assert.Empty(t, result.Files[1].SelectedClientID)
		}
	})

	t.Run("one failed extraction stays inline", func(t *testing.T) {
		extractor := &mocks.Extractor{}
		extractor.On("Extract", mock.Anything, mock.MatchedBy(func(f domain.FileUpload) bool { return f.Name == "bad.pdf" })).
			Return(nil, assert.AnError)
		extractor.On("Extract", mock.Anything, mock.MatchedBy(func(f domain.FileUpload) bool { return f.Name == "good.pdf" })).
			Return(&domain.ExtractedDocument{
				Type:    domain.DocumentTypeExpense,
				Expense: &domain.ExpenseData{Date: "2024-03-01", Supplier: "SJ", Amount: 249, Currency: "SEK"},
			}, nil)

		duplicates := &mocks.DuplicateChecker{}
		duplicates.On("CheckDuplicates", ctx, "company-1", mock.Anything).
			Return([]expensesDomain.DuplicateResult{{}}, nil)

		history := &mocks.HistoryProvider{}

		s := setupImportService(extractor, duplicates, history, &mocks.ExpenseCreator{}, &mocks.InvoiceCreator{})
		session := openSession(t, s, history)

		result, err := s.AnalyzeFiles(ctx, "company-1", session.ID, []domain.FileUpload{
			{Name: "bad.pdf"},
			{Name: "good.pdf"},
		})

		assert.NoError(t, err)

		assert.Equal(t, domain.FileStatusError, result.Files[0].Status)
		assert.NotEmpty(t, result.Files[0].Error)
		assert.Equal(t, domain.FileStatusDone, result.Files[1].Status)
	})

	t.Run("unknown session", func(t *testing.T) {
		s := setupImportService(&mocks.Extractor{}, &mocks.DuplicateChecker{}, &mocks.HistoryProvider{}, &mocks.ExpenseCreator{}, &mocks.InvoiceCreator{})

		_, err := s.AnalyzeFiles(ctx, "company-1", "nope", nil)

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("per item results with aggregate counts", func(t *testing.T) {
		history := &mocks.HistoryProvider{}

		expenses := &mocks.ExpenseCreator{}
		expenses.On("CreateExpense", ctx, "company-1", mock.MatchedBy(func(e *expensesDomain.Expense) bool {
			return e.Supplier == "SJ"
		})).Return("exp-10", nil)
		expenses.On("CreateExpense", ctx, "company-1", mock.MatchedBy(func(e *expensesDomain.Expense) bool {
			return e.Supplier == "Broken"
		})).Return("", assert.AnError)

		s := setupImportService(&mocks.Extractor{}, &mocks.DuplicateChecker{}, history, expenses, &mocks.InvoiceCreator{})
		session := openSession(t, s, history)

		session.Files = []*domain.AnalyzedFile{
			{
				ID: "f-1", Status: domain.FileStatusDone, Selected: true,
				Result: &domain.ExtractedDocument{
					Type:    domain.DocumentTypeExpense,
					Expense: &domain.ExpenseData{Date: "2024-03-01", Supplier: "SJ", Amount: 249, Currency: "SEK", Category: "Travel"},
				},
			},
			{
				ID: "f-2", Status: domain.FileStatusDone, Selected: false, IsDuplicate: true,
				Result: &domain.ExtractedDocument{
					Type:    domain.DocumentTypeExpense,
					Expense: &domain.ExpenseData{Date: "2024-01-05", Supplier: "Ikea", Amount: 499},
				},
			},
			{
				ID: "f-3", Status: domain.FileStatusDone, Selected: true,
				Result: &domain.ExtractedDocument{
					Type:    domain.DocumentTypeExpense,
					Expense: &domain.ExpenseData{Date: "2024-03-02", Supplier: "Broken", Amount: 1},
				},
			},
			{ID: "f-4", Status: domain.FileStatusError},
		}

		summary, err := s.Commit(ctx, "company-1", session.ID)

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Succeeded)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, 1, summary.Skipped)
		assert.Len(t, summary.Results, 3)
	})

	t.Run("invoice document creates an invoice row", func(t *testing.T) {
		history := &mocks.HistoryProvider{}

		invoices := &mocks.InvoiceCreator{}
		invoices.On("CreateInvoice", ctx, "company-1", mock.AnythingOfType("*domain.Invoice")).Return("inv-1", nil)

		s := setupImportService(&mocks.Extractor{}, &mocks.DuplicateChecker{}, history, &mocks.ExpenseCreator{}, invoices)
		session := openSession(t, s, history)

		session.Files = []*domain.AnalyzedFile{
			{
				ID: "f-1", Name: "invoice.pdf", Status: domain.FileStatusDone, Selected: true,
				SelectedClientID: "client-1",
				Result: &domain.ExtractedDocument{
					Type:    domain.DocumentTypeInvoice,
					Invoice: &domain.InvoiceData{ClientName: "Konserthuset", Amount: 12000, Currency: "SEK"},
				},
			},
		}

		summary, err := s.Commit(ctx, "company-1", session.ID)

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Succeeded)
		invoices.AssertExpectations(t)
	})
}
