package domain

import (
	"regexp"
	"strings"
)

var (
	legalSuffixRegexp = regexp.MustCompile(`(?i)\s+(pbc|inc|ab|ltd|gmbh|as|oy|corp|llc)\.?$`)
	whitespaceRegexp  = regexp.MustCompile(`\s+`)
)

// NormalizeSupplier lowercases and trims a supplier name, strips a trailing
// legal-entity suffix ("Acme Inc." -> "acme") and collapses internal
// whitespace runs to single spaces.
func NormalizeSupplier(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = legalSuffixRegexp.ReplaceAllString(normalized, "")
	normalized = whitespaceRegexp.ReplaceAllString(normalized, " ")

	return strings.TrimSpace(normalized)
}

// SupplierHistoryEntry maps one normalized supplier name to the category it
// was booked under historically. Currency records what the supplier billed
// in last; consumers must not inherit it for new documents.
type SupplierHistoryEntry struct {
	Supplier string `json:"supplier"`
	Category string `json:"category"`
	Currency string `json:"currency"`
	Count    int    `json:"count"`
}

// SupplierHistory is the historical supplier->category mapping in first-seen
// order. Partial matching scans entries in order and returns the first hit,
// so the order is part of the contract, not an implementation detail.
type SupplierHistory struct {
	Entries []*SupplierHistoryEntry `json:"entries"`
}

// Match looks up a candidate supplier name. Exact match on the normalized
// name wins; otherwise the first entry where either name contains the other
// as a substring is returned. No match returns nil.
func (h *SupplierHistory) Match(candidate string) *SupplierHistoryEntry {
	if h == nil {
		return nil
	}

	normalized := NormalizeSupplier(candidate)
	if normalized == "" {
		return nil
	}

	for _, entry := range h.Entries {
		if entry.Supplier == normalized {
			return entry
		}
	}

	for _, entry := range h.Entries {
		if strings.Contains(normalized, entry.Supplier) || strings.Contains(entry.Supplier, normalized) {
			return entry
		}
	}

	return nil
}

// Add records one historical expense occurrence, preserving first-seen order
// for new suppliers.
func (h *SupplierHistory) Add(supplier, category, currency string) {
	normalized := NormalizeSupplier(supplier)
	if normalized == "" {
		return
	}

	for _, entry := range h.Entries {
		if entry.Supplier == normalized {
			entry.Count++
			entry.Currency = currency
			return
		}
	}

	h.Entries = append(h.Entries, &SupplierHistoryEntry{
		Supplier: normalized,
		Category: category,
		Currency: currency,
		Count:    1,
	})
}
