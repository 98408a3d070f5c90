package fixer

import (
	"context"
	"fmt"
	"time"

	"github.com/gigwell/scheduled-tasks/times"
)

type TimeseriesOutput struct {
	Success   bool                          `json:"success"`
	Timestamp int64                         `json:"timestamp"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Base      Currency                      `json:"base"`
	Rates     map[string]map[string]float64 `json:"rates"`
}

func (s *FixerService) timeseries(ctx context.Context, base Currency, startDate, endDate time.Time) (*TimeseriesOutput, error) {
	if startDate.IsZero() {
		return nil, ErrInvalidStartDate
	}

	if endDate.IsZero() {
		return nil, ErrInvalidEndDate
	}

	symbols, err := s.parseSymbols(Currencies)
	if err != nil {
		return nil, err
	}

	var res TimeseriesOutput

	resp, err := s.fixerAPI.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"base":       string(base),
			"symbols":    symbols,
			"start_date": startDate.Format(times.YearMonthDayLayout),
			"end_date":   endDate.Format(times.YearMonthDayLayout),
		}).
		SetResult(&res).
		Get("/timeseries")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("fixer timeseries request failed: %s", resp.Status())
	}

	return &res, nil
}

func (s *FixerService) SyncCurrencyExchangeRateHistory(ctx context.Context) error {
	logger := s.loggerProvider(ctx)
	fs := s.Firestore(ctx)

	now := time.Now().UTC()
	startDate := TimeseriesStartDate
	endDate := time.Date(now.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
	batch := fs.Batch()

	for startDate.Before(endDate) {
		e := startDate.AddDate(1, 0, -1)

		result, err := s.timeseries(ctx, EUR, startDate, e)
		if err != nil {
			logger.Errorf("fixer currency timeseries sync error: %s", err)
			return err
		}

		if !result.Success {
			logger.Errorf("fixer currency timeseries unsuccessful: %+v", result)
			return fmt.Errorf("fixer currency timeseries unsuccessful for %s", startDate.Format("2006"))
		}

		docRef := fs.Collection(historyTimeSeriesFirestorePath).Doc(startDate.Format("2006"))
		batch.Set(docRef, result.Rates)

		startDate = startDate.AddDate(1, 0, 0)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return err
	}

	return nil
}
