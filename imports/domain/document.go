package domain

import (
	clientsDomain "github.com/gigwell/scheduled-tasks/clients/domain"
)

type DocumentType string

const (
	DocumentTypeExpense DocumentType = "expense"
	DocumentTypeInvoice DocumentType = "invoice"
)

// ExtractedDocument is what the extraction backend read out of one uploaded
// file. Type selects which of the two payloads is set; consumers must
// switch on it rather than probe fields.
type ExtractedDocument struct {
	Type              DocumentType               `json:"type"`
	Confidence        float64                    `json:"confidence"`
	SuggestedFilename string                     `json:"suggestedFilename"`
	Expense           *ExpenseData               `json:"expense,omitempty"`
	Invoice           *InvoiceData               `json:"invoice,omitempty"`
	ClientMatch       *clientsDomain.MatchResult `json:"clientMatch,omitempty"`
}

// ExpenseData are the fields extracted from a receipt. Currency is always
// taken from the scanned document, never from historical matches.
type ExpenseData struct {
	Date     string  `json:"date"`
	Supplier string  `json:"supplier"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Category string  `json:"category"`
}

// InvoiceData are the fields extracted from an incoming invoice document.
type InvoiceData struct {
	Date       string  `json:"date"`
	DueDate    string  `json:"dueDate"`
	ClientName string  `json:"clientName"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}
