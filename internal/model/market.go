package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Quote holds the basic quote metadata reported by the market-data provider.
// Numeric fields are nil when the provider did not report them.
type Quote struct {
	Symbol           string
	LongName         string
	ShortName        string
	Currency         string
	ExchangeTimezone string
	Price            *float64
	PreviousClose    *float64
}

// Name returns the long company name, falling back to the short name.
func (q *Quote) Name() string {
	if q == nil {
		return ""
	}
	if q.LongName != "" {
		return q.LongName
	}
	return q.ShortName
}

// Change returns the absolute and percent change against the previous close.
// ok is false when either price is missing or the previous close is zero.
func (q *Quote) Change() (change, percent float64, ok bool) {
	if q.Price == nil || q.PreviousClose == nil || *q.PreviousClose == 0 {
		return 0, 0, false
	}
	change = *q.Price - *q.PreviousClose
	return change, change / *q.PreviousClose * 100, true
}
