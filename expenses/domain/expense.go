package domain

import (
	"time"

	"github.com/gigwell/scheduled-tasks/common"
)

// Expense is one stored receipt/expense row, tenant scoped.
type Expense struct {
	ID          string    `json:"id" firestore:"-"`
	CompanyID   string    `json:"companyId" firestore:"companyId"`
	Date        string    `json:"date" firestore:"date"`
	Supplier    string    `json:"supplier" firestore:"supplier"`
	Amount      float64   `json:"amount" firestore:"amount"`
	Currency    string    `json:"currency" firestore:"currency"`
	Category    string    `json:"category" firestore:"category"`
	ReceiptPath string    `json:"receiptPath,omitempty" firestore:"receiptPath"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// ExpenseCandidate is the duplicate-check request shape: the triple that
// identifies a potential duplicate.
type ExpenseCandidate struct {
	Date     string  `json:"date"`
	Supplier string  `json:"supplier"`
	Amount   float64 `json:"amount"`
}

// Complete reports whether the candidate carries all three fields the
// duplicate check keys on. Incomplete candidates are never checked.
func (c ExpenseCandidate) Complete() bool {
	return c.Date != "" && c.Supplier != "" && !common.ComparableFloat(c.Amount).IsZero()
}

// DuplicateResult is index-aligned with the request candidates.
type DuplicateResult struct {
	IsDuplicate     bool     `json:"isDuplicate"`
	ExistingExpense *Expense `json:"existingExpense,omitempty"`
}
