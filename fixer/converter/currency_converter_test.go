package converter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gigwell/scheduled-tasks/fixer"
)

func setupService() *CurrencyConverterService {
	return &CurrencyConverterService{}
}

func initCurrencyHistoricalTimeseries() {
	fixer.CurrencyHistoricalTimeseries = make(map[int]map[string]map[string]float64)
	fixer.CurrencyHistoricalTimeseries[2024] = make(map[string]map[string]float64)
	fixer.CurrencyHistoricalTimeseries[2024]["2024-06-14"] = map[string]float64{
		"EUR": 1.0,
		"SEK": 11.2,
		"USD": 1.07,
		"NOK": 0,
	}
}

func TestCalculateCurrencyRate(t *testing.T) {
	s := setupService()

	initCurrencyHistoricalTimeseries()

	testedDate := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	invalidYear := time.Date(2002, 1, 1, 0, 0, 0, 0, time.UTC)
	invalidDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	invalidYearError := fmt.Errorf("year %d not found in the fixer", invalidYear.Year())
	invalidDateError := fmt.Errorf("date %s not found in the fixer", invalidDate.Format(format))
	invalidFrom := fmt.Errorf("invalid 'from' currency %s", "HKD")
	invalidTo := fmt.Errorf("invalid 'to' currency %s", "HKD")
	emptyExchangeRate := fmt.Errorf("could not get exchange rate for %s", "NOK")

	testCases := []struct {
		name           string
		from           string
		to             string
		amount         float64
		date           time.Time
		expectedAmount float64
		expectedError  error
	}{
		{name: "EUR/SEK", from: "EUR", to: "SEK", amount: 100, date: testedDate, expectedAmount: 1120},
		{name: "SEK/EUR", from: "SEK", to: "EUR", amount: 11.2, date: testedDate, expectedAmount: 1},
		{name: "USD/SEK", from: "USD", to: "SEK", amount: 1.07, date: testedDate, expectedAmount: 11.2},
		{name: "invalid year", from: "EUR", to: "SEK", amount: 5, date: invalidYear, expectedAmount: 5, expectedError: invalidYearError},
		{name: "invalid date", from: "EUR", to: "SEK", amount: 5, date: invalidDate, expectedAmount: 5, expectedError: invalidDateError},
		{name: "invalid from", from: "HKD", to: "SEK", amount: 10, date: testedDate, expectedAmount: 10, expectedError: invalidFrom},
		{name: "invalid to", from: "SEK", to: "HKD", amount: 10, date: testedDate, expectedAmount: 10, expectedError: invalidTo},
		{name: "empty exchange rate", from: "NOK", to: "SEK", amount: 10, date: testedDate, expectedAmount: 10, expectedError: emptyExchangeRate},
		{name: "same currency", from: "SEK", to: "SEK", amount: 10, date: testedDate, expectedAmount: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := s.Convert(tc.from, tc.to, tc.amount, tc.date)
			if err != nil {
				assert.Equal(t, tc.expectedError, err)
			}

			assert.InDelta(t, tc.expectedAmount, result, 0.0000001)
		})
	}
}
