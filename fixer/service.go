package fixer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gigwell/scheduled-tasks/common"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/logger"
)

type FixerService struct {
	loggerProvider logger.Provider
	*connection.Connection
	fixerAPI *resty.Client
}

const (
	historyTimeSeriesFirestorePath = "app/fixer/exchangeRates"
)

var (
	ErrInvalidStartDate = errors.New("invalid start date")
	ErrInvalidEndDate   = errors.New("invalid end date")
	ErrInvalidSymbols   = errors.New("invalid symbols list")
)

var (
	TimeseriesStartDate                     time.Time
	TimeseriesEndDate                       time.Time
	CurrencyHistoricalTimeseriesInitialized bool
	CurrencyHistoricalTimeseries            map[int]map[string]map[string]float64
)

func NewFixerService(log logger.Provider, conn *connection.Connection) (*FixerService, error) {
	ctx := context.Background()

	fixerAPI := resty.New().
		SetBaseURL(common.GetEnv("FIXER_BASE_URL", "https://data.fixer.io/api")).
		SetHeader("Accept", "application/json").
		SetQueryParam("access_key", common.GetEnv("FIXER_ACCESS_KEY", ""))

	svc := &FixerService{
		log,
		conn,
		fixerAPI,
	}

	if CurrencyHistoricalTimeseriesInitialized {
		return svc, nil
	}

	now := time.Now().UTC()
	TimeseriesStartDate = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	TimeseriesEndDate = time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, time.UTC)

	// initialize historical exchange rates from firestore or fixer API
	if err := svc.initHistoricalRates(ctx); err != nil {
		if common.Production {
			return nil, err
		}
	}

	return svc, nil
}

func (s *FixerService) parseSymbols(symbols []Currency) (string, error) {
	if len(symbols) == 0 {
		return "", ErrInvalidSymbols
	}

	v := make([]string, len(symbols))
	for i, symbol := range symbols {
		v[i] = string(symbol)
	}

	return strings.Join(v, ","), nil
}

func (s *FixerService) initHistoricalRates(ctx context.Context) error {
	fs := s.Firestore(ctx)

	docSnaps, err := fs.Collection(historyTimeSeriesFirestorePath).Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("currency time series init failed to load documents: %s", err)
	}

	// If firestore is not initialized with exchange rates yet
	// then fetch it from fixer API and recall this method.
	if len(docSnaps) == 0 {
		if err := s.SyncCurrencyExchangeRateHistory(ctx); err != nil {
			return err
		}

		return s.initHistoricalRates(ctx)
	}

	CurrencyHistoricalTimeseries = make(map[int]map[string]map[string]float64)

	for _, docSnap := range docSnaps {
		var data map[string]map[string]float64
		if err := docSnap.DataTo(&data); err != nil {
			return fmt.Errorf("currency time series init docSnapDataTo failed: %s", err)
		}

		year, err := strconv.Atoi(docSnap.Ref.ID)
		if err != nil {
			return fmt.Errorf("currency time series strconv.Atoi init failed: %s", err)
		}

		CurrencyHistoricalTimeseries[year] = data
	}

	CurrencyHistoricalTimeseriesInitialized = true

	return nil
}
