package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	companyDomain "github.com/gigwell/scheduled-tasks/company/domain"
	converterMocks "github.com/gigwell/scheduled-tasks/fixer/converter/mocks"
	gigsDomain "github.com/gigwell/scheduled-tasks/gigs/domain"
	"github.com/gigwell/scheduled-tasks/invoicing/domain"
	"github.com/gigwell/scheduled-tasks/logger"
)

var (
	testCompany = &companyDomain.Company{
		ID:           "company-1",
		Name:         "Kapellet AB",
		Country:      "SE",
		BaseCurrency: "SEK",
	}

	testGigTypes = []*companyDomain.GigType{
		{ID: "gt-concert", Names: map[string]string{"en": "Concert", "sv": "Konsert"}, VatRate: 25},
		{ID: "gt-lesson", Names: map[string]string{"en": "Lesson", "sv": "Lektion"}, VatRate: 6},
	}
)

func linesService(converter *converterMocks.Converter) *InvoiceService {
	return NewInvoiceServiceWithDeps(logger.FromContext, nil, nil, nil, nil, converter)
}

func TestBuildGigLines(t *testing.T) {
	ctx := context.Background()

	day := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

	t.Run("fee and travel lines in selection order", func(t *testing.T) {
		gigs := []*gigsDomain.Gig{
			{
				ID: "gig-1", Name: "Midsummer", GigTypeID: "gt-concert", Currency: "SEK",
				FeeAmount: 5000,
				Dates:     []gigsDomain.GigDate{{Date: day}}, TotalDays: 1,
			},
			{
				ID: "gig-2", Name: "Festival", GigTypeID: "gt-concert", Currency: "SEK",
				FeeAmount: 3000, TravelAmount: 500,
				Dates:     []gigsDomain.GigDate{{Date: day.AddDate(0, 0, 7)}}, TotalDays: 1,
			},
		}

		s := linesService(&converterMocks.Converter{})

		lines := s.BuildGigLines(ctx, testCompany, testGigTypes, gigs, "en")

		if assert.Len(t, lines, 3) {
			assert.Equal(t, "Concert, 14 Jun 2024", lines[0].Description)
			assert.Equal(t, 5000.0, lines[0].Amount)
			assert.Equal(t, "gt-concert", lines[0].GigTypeID)

			assert.Equal(t, 3000.0, lines[1].Amount)

			// travel rides on the concert rate by convention
			assert.Equal(t, "Travel, Festival", lines[2].Description)
			assert.Equal(t, 500.0, lines[2].Amount)
			assert.Equal(t, "gt-concert", lines[2].GigTypeID)
		}
	})

	t.Run("end to end totals", func(t *testing.T) {
		gigs := []*gigsDomain.Gig{
			{
				ID: "gig-1", Name: "Midsummer", GigTypeID: "gt-concert", Currency: "SEK",
				FeeAmount: 5000,
				Dates:     []gigsDomain.GigDate{{Date: day}}, TotalDays: 1,
			},
			{
				ID: "gig-2", Name: "Festival", GigTypeID: "gt-concert", Currency: "SEK",
				FeeAmount: 3000, TravelAmount: 500,
				Dates:     []gigsDomain.GigDate{{Date: day.AddDate(0, 0, 7)}}, TotalDays: 1,
			},
		}

		s := linesService(&converterMocks.Converter{})

		lines := s.BuildGigLines(ctx, testCompany, testGigTypes, gigs, "en")
		totals := ComputeTotals(lines, map[string]float64{"gt-concert": 25, "gt-lesson": 6}, false)

		assert.Equal(t, 8500.0, totals.Subtotal)
		assert.Equal(t, 2125.0, totals.Vat)
		assert.Equal(t, 10625.0, totals.Total)

		if assert.Len(t, totals.VatGroups, 1) {
			assert.Equal(t, domain.VatGroup{Rate: 25, Underlag: 8500, Vat: 2125}, totals.VatGroups[0])
		}
	})

	t.Run("multi day description uses date range", func(t *testing.T) {
		gigs := []*gigsDomain.Gig{
			{
				ID: "gig-1", Name: "Tour", ProjectName: "Spring Tour", GigTypeID: "gt-concert", Currency: "SEK",
				FeeAmount: 9000,
				Dates: []gigsDomain.GigDate{
					{Date: day}, {Date: day.AddDate(0, 0, 1)}, {Date: day.AddDate(0, 0, 2)},
				},
				TotalDays: 3,
			},
		}

		s := linesService(&converterMocks.Converter{})

		lines := s.BuildGigLines(ctx, testCompany, testGigTypes, gigs, "en")

		if assert.Len(t, lines, 1) {
			assert.Equal(t, "Concert, Spring Tour, 14 Jun 2024 - 16 Jun 2024 (3 days)", lines[0].Description)
		}
	})

	t.Run("foreign currency converted at gig start date", func(t *testing.T) {
		gigs := []*gigsDomain.Gig{
			{
				ID: "gig-1", Name: "Berlin", GigTypeID: "gt-concert", Currency: "EUR",
				FeeAmount: 1000, TravelAmount: 100,
				Dates:     []gigsDomain.GigDate{{Date: day}}, TotalDays: 1,
			},
		}

		converter := &converterMocks.Converter{}
		converter.On("Convert", "EUR", "SEK", 1000.0, day).Return(11200.0, nil)
		converter.On("Convert", "EUR", "SEK", 100.0, day).Return(1120.0, nil)

		s := linesService(converter)

		lines := s.BuildGigLines(ctx, testCompany, testGigTypes, gigs, "en")

		if assert.Len(t, lines, 2) {
			assert.Equal(t, 11200.0, lines[0].Amount)
			assert.Equal(t, 1120.0, lines[1].Amount)
		}

		converter.AssertExpectations(t)
	})

	t.Run("conversion failure falls back to raw amount", func(t *testing.T) {
		gigs := []*gigsDomain.Gig{
			{
				ID: "gig-1", Name: "Berlin", GigTypeID: "gt-concert", Currency: "EUR",
				FeeAmount: 1000,
				Dates:     []gigsDomain.GigDate{{Date: day}}, TotalDays: 1,
			},
		}

		converter := &converterMocks.Converter{}
		converter.On("Convert", "EUR", "SEK", 1000.0, day).Return(0.0, assert.AnError)

		s := linesService(converter)

		lines := s.BuildGigLines(ctx, testCompany, testGigTypes, gigs, "en")

		if assert.Len(t, lines, 1) {
			assert.Equal(t, 1000.0, lines[0].Amount)
		}
	})

	t.Run("unknown gig type keeps description usable", func(t *testing.T) {
		gigs := []*gigsDomain.Gig{
			{
				ID: "gig-1", Name: "Mystery", GigTypeID: "gt-missing", Currency: "SEK",
				FeeAmount: 100,
				Dates:     []gigsDomain.GigDate{{Date: day}}, TotalDays: 1,
			},
		}

		s := linesService(&converterMocks.Converter{})

		lines := s.BuildGigLines(ctx, testCompany, testGigTypes, gigs, "en")

		if assert.Len(t, lines, 1) {
			assert.Equal(t, "gt-missing", lines[0].GigTypeID)
		}
	})
}
