package service

import (
	"github.com/gigwell/scheduled-tasks/invoicing/domain"
)

// defaultVatRate is the legacy single-rate display fallback for invoices
// where no line resolved a rate and reverse charge does not apply.
const defaultVatRate = 25.0

// ComputeTotals aggregates invoice lines into subtotal, VAT, total and the
// per-rate VAT groups. A line with a gig-type id takes its rate from
// gigTypeVatRates; an unresolved id falls back to rate 0. Reverse charge
// zeroes all VAT but leaves the subtotal untouched.
func ComputeTotals(lines []domain.InvoiceLine, gigTypeVatRates map[string]float64, reverseCharge bool) domain.InvoiceTotals {
	totals := domain.InvoiceTotals{}

	groupIndex := make(map[float64]int)

	for _, line := range lines {
		rate := resolveVatRate(line, gigTypeVatRates)

		vat := 0.0
		if !reverseCharge {
			vat = line.Amount * rate / 100
		}

		totals.Subtotal += line.Amount
		totals.Vat += vat

		idx, ok := groupIndex[rate]
		if !ok {
			idx = len(totals.VatGroups)
			groupIndex[rate] = idx

			totals.VatGroups = append(totals.VatGroups, domain.VatGroup{Rate: rate})
		}

		totals.VatGroups[idx].Underlag += line.Amount
		totals.VatGroups[idx].Vat += vat

		if totals.PrimaryVatRate == 0 && rate != 0 {
			totals.PrimaryVatRate = rate
		}
	}

	totals.Total = totals.Subtotal + totals.Vat

	if totals.PrimaryVatRate == 0 && !reverseCharge {
		totals.PrimaryVatRate = defaultVatRate
	}

	return totals
}

func resolveVatRate(line domain.InvoiceLine, gigTypeVatRates map[string]float64) float64 {
	if line.GigTypeID != "" {
		// unresolved gig types fall through to 0, a known soft-fail
		return gigTypeVatRates[line.GigTypeID]
	}

	return line.VatRate
}

// ResolveLineRates stamps each line's effective VAT rate before persisting,
// so stored lines carry the rate they were taxed at.
func ResolveLineRates(lines []domain.InvoiceLine, gigTypeVatRates map[string]float64) []domain.InvoiceLine {
	resolved := make([]domain.InvoiceLine, len(lines))

	for i, line := range lines {
		line.VatRate = resolveVatRate(line, gigTypeVatRates)
		resolved[i] = line
	}

	return resolved
}

// IsReverseCharge reports whether the EU reverse-charge mechanism applies:
// seller and buyer in different EU countries with a VAT-registered buyer.
func IsReverseCharge(sellerCountry, buyerCountry, buyerVatNumber string) bool {
	if sellerCountry == buyerCountry {
		return false
	}

	if buyerVatNumber == "" {
		return false
	}

	return euCountries[sellerCountry] && euCountries[buyerCountry]
}

var euCountries = map[string]bool{
	"AT": true, "BE": true, "BG": true, "HR": true, "CY": true, "CZ": true,
	"DK": true, "EE": true, "FI": true, "FR": true, "DE": true, "GR": true,
	"HU": true, "IE": true, "IT": true, "LV": true, "LT": true, "LU": true,
	"MT": true, "NL": true, "PL": true, "PT": true, "RO": true, "SK": true,
	"SI": true, "ES": true, "SE": true,
}
