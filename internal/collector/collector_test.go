package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollector_Series(t *testing.T) {
	bars := GenerateMockBars(100, 5, time.Now())
	c := NewCollector(&MockFetcher{Bars: bars})

	got := c.Series(context.Background(), "AAPL", "1mo", "1d")
	assert.Len(t, got, 5)
}

func TestCollector_SeriesSwallowsErrors(t *testing.T) {
	m := &MockFetcher{Err: errors.New("network down")}
	c := NewCollector(m)

	assert.Nil(t, c.Series(context.Background(), "AAPL", "1mo", "1d"))
	assert.Equal(t, 1, m.Calls)
}

func TestCollector_SeriesEmptyTicker(t *testing.T) {
	m := &MockFetcher{}
	c := NewCollector(m)

	assert.Nil(t, c.Series(context.Background(), "", "1mo", "1d"))
	assert.Equal(t, 0, m.Calls, "empty ticker must not reach the provider")
}

func TestCollector_Quote(t *testing.T) {
	c := NewCollector(&MockFetcher{QuoteErr: errors.New("boom")})
	_, err := c.Quote(context.Background(), "AAPL")
	assert.ErrorContains(t, err, "boom")
}
