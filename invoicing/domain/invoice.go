package domain

import (
	"time"
)

// InvoiceLine is one free-text row on an invoice. During editing lines have
// no identity beyond array position; they are persisted verbatim on create.
type InvoiceLine struct {
	Description     string  `json:"description" firestore:"description"`
	Amount          float64 `json:"amount" firestore:"amount"`
	GigTypeID       string  `json:"gigTypeId,omitempty" firestore:"gigTypeId"`
	VatRate         float64 `json:"vatRate" firestore:"vatRate"`
	SourceExpenseID string  `json:"sourceExpenseId,omitempty" firestore:"sourceExpenseId"`
}

// VatGroup is the subtotal/tax pairing for one VAT rate, so an invoice can
// itemize multiple VAT bands instead of collapsing to a blended rate.
type VatGroup struct {
	Rate     float64 `json:"rate" firestore:"rate"`
	Underlag float64 `json:"underlag" firestore:"underlag"`
	Vat      float64 `json:"vat" firestore:"vat"`
}

// InvoiceTotals are the aggregate numbers rendered in the preview and
// persisted on submit. Recomputed in full on every change, never patched.
type InvoiceTotals struct {
	Subtotal float64 `json:"subtotal" firestore:"subtotal"`
	Vat      float64 `json:"vat" firestore:"vat"`
	Total    float64 `json:"total" firestore:"total"`
	// PrimaryVatRate is a legacy single-rate display fallback used when no
	// per-band breakdown is rendered.
	PrimaryVatRate float64    `json:"primaryVatRate" firestore:"primaryVatRate"`
	VatGroups      []VatGroup `json:"vatGroups" firestore:"vatGroups"`
}

type Invoice struct {
	ID            string        `json:"id" firestore:"-"`
	CompanyID     string        `json:"companyId" firestore:"companyId"`
	Number        string        `json:"number" firestore:"number"`
	ClientID      string        `json:"clientId" firestore:"clientId"`
	Currency      string        `json:"currency" firestore:"currency"`
	ReverseCharge bool          `json:"reverseCharge" firestore:"reverseCharge"`
	Lines         []InvoiceLine `json:"lines" firestore:"lines"`
	Totals        InvoiceTotals `json:"totals" firestore:"totals"`
	// DisplayTotal is the grand total formatted with the currency symbol,
	// as rendered on the document.
	DisplayTotal string    `json:"displayTotal" firestore:"displayTotal"`
	IssueDate    time.Time `json:"issueDate" firestore:"issueDate"`
	DueDate      time.Time `json:"dueDate" firestore:"dueDate"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
