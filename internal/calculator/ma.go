package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"StockDesk/internal/model"
)

// Mean returns the arithmetic mean of the given prices.
func Mean(prices []float64) (float64, error) {
	if len(prices) == 0 {
		return 0, errors.New("no prices provided")
	}
	ds := make([]decimal.Decimal, len(prices))
	for i, p := range prices {
		ds[i] = decimal.NewFromFloat(p)
	}
	return decimal.Avg(ds[0], ds[1:]...).InexactFloat64(), nil
}

// Round2 rounds a price to cents, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ExtractCloses returns the closing prices of bars in order.
func ExtractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// LastCloses returns up to n most recent closing prices, oldest first.
func LastCloses(bars []model.OHLCV, n int) []float64 {
	if len(bars) > n {
		bars = bars[len(bars)-n:]
	}
	return ExtractCloses(bars)
}
