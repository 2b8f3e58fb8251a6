package formatter

import (
	"context"
	"errors"
	"time"

	"StockDesk/internal/cache"
	"StockDesk/internal/calculator"
	"StockDesk/internal/model"
)

// Error texts are sent to clients verbatim as {"error": ...}.
var (
	ErrNoData     = errors.New("No data available")
	ErrNoHistory  = errors.New("No historical data before today")
	ErrNoIntraday = errors.New("No intraday data available")
)

const maxDailyBars = 30

// SeriesSource yields raw bars, or nil when the provider has nothing.
type SeriesSource interface {
	Series(ctx context.Context, ticker, period, interval string) []model.OHLCV
}

// Formatter reduces raw provider series into chart-ready responses.
type Formatter struct {
	Source SeriesSource
	Cache  *cache.Store
	Now    func() time.Time
}

// New creates a Formatter. store may be nil to disable caching.
func New(src SeriesSource, store *cache.Store) *Formatter {
	return &Formatter{Source: src, Cache: store, Now: time.Now}
}

// Daily returns up to 30 daily closes from the last month, excluding today.
func (f *Formatter) Daily(ctx context.Context, ticker string) (*model.SeriesResponse, error) {
	return f.cached(ctx, ticker, model.RangeDaily, "1mo", "1d", func(bars []model.OHLCV) (*model.SeriesResponse, error) {
		today := utcDate(f.Now())
		kept := make([]model.OHLCV, 0, len(bars))
		for _, b := range bars {
			if barDate(b).Before(today) {
				kept = append(kept, b)
			}
		}
		if len(kept) == 0 {
			return nil, ErrNoHistory
		}
		if len(kept) > maxDailyBars {
			kept = kept[len(kept)-maxDailyBars:]
		}
		return build(ticker, model.RangeDaily, kept, "2006-01-02"), nil
	})
}

// Intraday returns yesterday's 30-minute closes. When yesterday had no
// session, the most recent session in the window is used instead.
func (f *Formatter) Intraday(ctx context.Context, ticker string) (*model.SeriesResponse, error) {
	return f.cached(ctx, ticker, model.RangeIntraday, "2d", "30m", func(bars []model.OHLCV) (*model.SeriesResponse, error) {
		yesterday := utcDate(f.Now()).AddDate(0, 0, -1)
		selected := onDate(bars, yesterday)
		if len(selected) == 0 && len(bars) > 0 {
			selected = onDate(bars, barDate(bars[len(bars)-1]))
		}
		if len(selected) == 0 {
			return nil, ErrNoIntraday
		}
		return build(ticker, model.RangeIntraday, selected, "15:04"), nil
	})
}

// Monthly returns a single point: the mean close over the last month.
func (f *Formatter) Monthly(ctx context.Context, ticker string) (*model.SeriesResponse, error) {
	return f.cached(ctx, ticker, model.RangeMonthly, "1mo", "1d", func(bars []model.OHLCV) (*model.SeriesResponse, error) {
		avg, err := calculator.Mean(calculator.ExtractCloses(bars))
		if err != nil {
			return nil, err
		}
		label := bars[len(bars)-1].Time.Format("2006-01")
		return model.NewSeriesResponse(ticker, model.RangeMonthly,
			[]string{label}, []float64{calculator.Round2(avg)}), nil
	})
}

func (f *Formatter) cached(ctx context.Context, ticker string, rng model.Range, period, interval string,
	shape func([]model.OHLCV) (*model.SeriesResponse, error)) (*model.SeriesResponse, error) {
	key := cache.Key(ticker, string(rng), period)
	if v, ok := f.Cache.Get(key); ok {
		if resp, ok := v.(*model.SeriesResponse); ok {
			return resp, nil
		}
	}

	bars := f.Source.Series(ctx, ticker, period, interval)
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	resp, err := shape(bars)
	if err != nil {
		return nil, err
	}
	f.Cache.Set(key, resp)
	return resp, nil
}

func build(ticker string, rng model.Range, bars []model.OHLCV, layout string) *model.SeriesResponse {
	labels := make([]string, len(bars))
	values := make([]float64, len(bars))
	for i, b := range bars {
		labels[i] = b.Time.Format(layout)
		values[i] = calculator.Round2(b.Close)
	}
	return model.NewSeriesResponse(ticker, rng, labels, values)
}

func onDate(bars []model.OHLCV, day time.Time) []model.OHLCV {
	var out []model.OHLCV
	for _, b := range bars {
		if barDate(b).Equal(day) {
			out = append(out, b)
		}
	}
	return out
}

// barDate is the calendar date of a bar in the zone it was reported in.
func barDate(b model.OHLCV) time.Time {
	y, m, d := b.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
