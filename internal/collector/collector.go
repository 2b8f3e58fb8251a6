package collector

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"StockDesk/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars     []model.OHLCV
	Quote    *model.Quote
	Err      error
	QuoteErr error

	// Calls counts every Fetch* invocation.
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(_ context.Context, _, _, _ string) ([]model.OHLCV, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}

func (m *MockFetcher) FetchQuote(_ context.Context, symbol string) (*model.Quote, error) {
	m.Calls++
	if m.QuoteErr != nil {
		return nil, m.QuoteErr
	}
	if m.Quote != nil {
		return m.Quote, nil
	}
	return &model.Quote{Symbol: symbol}, nil
}

// GenerateMockBars builds count daily bars ending the day before end.
func GenerateMockBars(basePrice float64, count int, end time.Time) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   end.AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector wraps a Fetcher and swallows its failures.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Series returns the raw bars for ticker, or nil when the provider fails.
func (c *Collector) Series(ctx context.Context, ticker, period, interval string) []model.OHLCV {
	entry := log.WithFields(log.Fields{
		"ticker":   ticker,
		"period":   period,
		"interval": interval,
		"source":   c.Fetcher.Name(),
	})
	if ticker == "" {
		entry.Warn("empty ticker, skipping fetch")
		return nil
	}
	bars, err := c.Fetcher.FetchSeries(ctx, ticker, period, interval)
	if err != nil {
		entry.Warnf("error fetching %s: %v", ticker, err)
		return nil
	}
	return bars
}

// Quote returns the provider quote for ticker.
func (c *Collector) Quote(ctx context.Context, ticker string) (*model.Quote, error) {
	q, err := c.Fetcher.FetchQuote(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch quote %s: %w", ticker, err)
	}
	return q, nil
}
