package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigwell/scheduled-tasks/invoicing/domain"
)

func TestComputeTotals(t *testing.T) {
	rates := map[string]float64{
		"gt-concert": 25,
		"gt-lesson":  6,
	}

	t.Run("sums and groups by rate", func(t *testing.T) {
		lines := []domain.InvoiceLine{
			{Description: "Concert", Amount: 5000, GigTypeID: "gt-concert"},
			{Description: "Lesson", Amount: 1000, GigTypeID: "gt-lesson"},
			{Description: "Another concert", Amount: 2000, GigTypeID: "gt-concert"},
		}

		totals := ComputeTotals(lines, rates, false)

		assert.Equal(t, 8000.0, totals.Subtotal)
		assert.Equal(t, 1810.0, totals.Vat)
		assert.Equal(t, totals.Subtotal+totals.Vat, totals.Total)
		assert.Equal(t, 25.0, totals.PrimaryVatRate)

		if assert.Len(t, totals.VatGroups, 2) {
			assert.Equal(t, domain.VatGroup{Rate: 25, Underlag: 7000, Vat: 1750}, totals.VatGroups[0])
			assert.Equal(t, domain.VatGroup{Rate: 6, Underlag: 1000, Vat: 60}, totals.VatGroups[1])
		}
	})

	t.Run("group sums match the totals", func(t *testing.T) {
		lines := []domain.InvoiceLine{
			{Amount: 123.45, GigTypeID: "gt-concert"},
			{Amount: 67.89, GigTypeID: "gt-lesson"},
			{Amount: 10, VatRate: 12},
			{Amount: 5},
		}

		totals := ComputeTotals(lines, rates, false)

		var underlag, vat float64
		for _, group := range totals.VatGroups {
			underlag += group.Underlag
			vat += group.Vat
		}

		assert.InDelta(t, totals.Subtotal, underlag, 1e-9)
		assert.InDelta(t, totals.Vat, vat, 1e-9)
	})

	t.Run("reverse charge zeroes vat but not subtotal", func(t *testing.T) {
		lines := []domain.InvoiceLine{
			{Amount: 5000, GigTypeID: "gt-concert"},
			{Amount: 1000, GigTypeID: "gt-lesson"},
		}

		totals := ComputeTotals(lines, rates, true)

		assert.Equal(t, 6000.0, totals.Subtotal)
		assert.Equal(t, 0.0, totals.Vat)
		assert.Equal(t, 6000.0, totals.Total)

		for _, group := range totals.VatGroups {
			assert.Equal(t, 0.0, group.Vat)
		}
	})

	t.Run("unresolved gig type defaults to rate zero", func(t *testing.T) {
		lines := []domain.InvoiceLine{
			{Amount: 1000, GigTypeID: "gt-missing"},
		}

		totals := ComputeTotals(lines, rates, false)

		assert.Equal(t, 0.0, totals.Vat)

		if assert.Len(t, totals.VatGroups, 1) {
			assert.Equal(t, 0.0, totals.VatGroups[0].Rate)
		}
	})

	t.Run("primary rate defaults to 25 without rates", func(t *testing.T) {
		totals := ComputeTotals([]domain.InvoiceLine{{Amount: 100}}, rates, false)
		assert.Equal(t, 25.0, totals.PrimaryVatRate)
	})

	t.Run("primary rate defaults to 0 under reverse charge", func(t *testing.T) {
		totals := ComputeTotals([]domain.InvoiceLine{{Amount: 100}}, rates, true)
		assert.Equal(t, 0.0, totals.PrimaryVatRate)
	})

	t.Run("empty line list", func(t *testing.T) {
		totals := ComputeTotals(nil, rates, false)

		assert.Equal(t, 0.0, totals.Subtotal)
		assert.Equal(t, 0.0, totals.Total)
		assert.Empty(t, totals.VatGroups)
	})
}

func TestIsReverseCharge(t *testing.T) {
	testCases := []struct {
		name           string
		sellerCountry  string
		buyerCountry   string
		buyerVatNumber string
		expected       bool
	}{
		{name: "cross border EU with VAT number", sellerCountry: "SE", buyerCountry: "DE", buyerVatNumber: "DE123456789", expected: true},
		{name: "same country", sellerCountry: "SE", buyerCountry: "SE", buyerVatNumber: "SE123456789", expected: false},
		{name: "buyer outside EU", sellerCountry: "SE", buyerCountry: "NO", buyerVatNumber: "NO123456789", expected: false},
		{name: "buyer not VAT registered", sellerCountry: "SE", buyerCountry: "DE", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsReverseCharge(tc.sellerCountry, tc.buyerCountry, tc.buyerVatNumber))
		})
	}
}

func TestResolveLineRates(t *testing.T) {
	rates := map[string]float64{"gt-concert": 25}

	resolved := ResolveLineRates([]domain.InvoiceLine{
		{Amount: 100, GigTypeID: "gt-concert"},
		{Amount: 50, VatRate: 12},
	}, rates)

	assert.Equal(t, 25.0, resolved[0].VatRate)
	assert.Equal(t, 12.0, resolved[1].VatRate)
}
