package domain

import (
	"time"

	expensesDomain "github.com/gigwell/scheduled-tasks/expenses/domain"
)

type FileStatus string

const (
	FileStatusPending   FileStatus = "pending"
	FileStatusAnalyzing FileStatus = "analyzing"
	FileStatusDone      FileStatus = "done"
	FileStatusError     FileStatus = "error"
)

// AnalyzedFile tracks one uploaded file through the import wizard. A
// positive duplicate flag deselects the row but keeps it visible, so the
// user can force the import anyway.
type AnalyzedFile struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Status            FileStatus         `json:"status"`
	Error             string             `json:"error,omitempty"`
	Result            *ExtractedDocument `json:"result,omitempty"`
	Selected          bool               `json:"selected"`
	IsDuplicate       bool               `json:"isDuplicate"`
	ExistingExpenseID string             `json:"existingExpenseId,omitempty"`
	SelectedClientID  string             `json:"selectedClientId,omitempty"`
}

// Session is one import wizard run. It holds the supplier history loaded
// when the session opened and every file analyzed since; it is discarded
// when the user navigates away.
type Session struct {
	ID        string                          `json:"id"`
	CompanyID string                          `json:"companyId"`
	Files     []*AnalyzedFile                 `json:"files"`
	History   *expensesDomain.SupplierHistory `json:"-"`
	CreatedAt time.Time                       `json:"createdAt"`
}

// FileUpload is one file handed to the extraction backend.
type FileUpload struct {
	Name        string
	ContentType string
	Content     []byte
}

// CommitResult reports the per-file outcome of an import commit.
type CommitResult struct {
	FileID             string `json:"fileId"`
	Success            bool   `json:"success"`
	Error              string `json:"error,omitempty"`
	SkippedAsDuplicate bool   `json:"skippedAsDuplicate,omitempty"`
}

// CommitSummary aggregates commit results into the counts shown in the
// single summary notification.
type CommitSummary struct {
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Skipped   int            `json:"skipped"`
	Results   []CommitResult `json:"results"`
}
