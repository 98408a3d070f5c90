package service

import (
	"context"

	"github.com/gigwell/scheduled-tasks/common"
	companyDomain "github.com/gigwell/scheduled-tasks/company/domain"
	gigsDomain "github.com/gigwell/scheduled-tasks/gigs/domain"
	gigsService "github.com/gigwell/scheduled-tasks/gigs/service"
	"github.com/gigwell/scheduled-tasks/invoicing/domain"
)

// travelFallbackNames are the localized gig-type names travel expenses are
// booked under, so travel is taxed at the concert rate by convention.
var travelFallbackNames = []string{"Concert", "Konsert"}

// BuildGigLines turns selected gigs into invoice lines: one fee line per
// gig, plus a travel line when the gig carries a travel expense. Selection
// order is preserved; within a gig the fee line precedes the travel line.
// Amounts in a foreign currency are converted to the company's base currency
// at the gig's start date.
func (s *InvoiceService) BuildGigLines(ctx context.Context, company *companyDomain.Company, gigTypes []*companyDomain.GigType, gigs []*gigsDomain.Gig, locale string) []domain.InvoiceLine {
	typesByID := make(map[string]*companyDomain.GigType, len(gigTypes))
	for _, gigType := range gigTypes {
		typesByID[gigType.ID] = gigType
	}

	travelType := findTravelFallbackType(gigTypes)

	var lines []domain.InvoiceLine

	for _, gig := range gigs {
		gigTypeName := ""
		if gigType, ok := typesByID[gig.GigTypeID]; ok {
			gigTypeName = gigType.Name(locale)
		}

		fee := s.toBaseCurrency(ctx, company, gig, gig.FeeAmount)

		lines = append(lines, domain.InvoiceLine{
			Description: gigsService.DescribeGig(gig, gigTypeName),
			Amount:      fee,
			GigTypeID:   gig.GigTypeID,
		})

		if gig.TravelAmount != 0 {
			travelLine := domain.InvoiceLine{
				Description: "Travel, " + gig.Name,
				Amount:      s.toBaseCurrency(ctx, company, gig, gig.TravelAmount),
			}

			if travelType != nil {
				travelLine.GigTypeID = travelType.ID
			}

			lines = append(lines, travelLine)
		}
	}

	return lines
}

// toBaseCurrency converts an amount from the gig's currency to the company
// base currency at the gig's start date. A conversion failure degrades to
// rate 1.0 with a logged warning rather than failing the invoice.
func (s *InvoiceService) toBaseCurrency(ctx context.Context, company *companyDomain.Company, gig *gigsDomain.Gig, amount float64) float64 {
	if gig.Currency == "" || gig.Currency == company.BaseCurrency {
		return amount
	}

	converted, err := s.converter.Convert(gig.Currency, company.BaseCurrency, amount, gig.StartDate())
	if err != nil {
		s.loggerProvider(ctx).Warningf("currency conversion %s->%s for gig %s failed, falling back to rate 1.0: %s",
			gig.Currency, company.BaseCurrency, gig.ID, err)
		return amount
	}

	return common.Round(converted)
}

func findTravelFallbackType(gigTypes []*companyDomain.GigType) *companyDomain.GigType {
	for _, gigType := range gigTypes {
		for _, name := range gigType.Names {
			for _, fallback := range travelFallbackNames {
				if name == fallback {
					return gigType
				}
			}
		}
	}

	return nil
}
