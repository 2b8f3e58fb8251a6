package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{
  "chart": {
    "result": [{
      "meta": {
        "symbol": "AAPL",
        "currency": "USD",
        "longName": "Apple Inc.",
        "shortName": "Apple",
        "exchangeTimezoneName": "America/New_York",
        "regularMarketPrice": 190.5,
        "chartPreviousClose": 188.0
      },
      "timestamp": [1718890200, 1718803800, 1718976600],
      "indicators": {
        "quote": [{
          "open":   [101.0, 100.0, null],
          "high":   [102.0, 101.0, null],
          "low":    [100.5, 99.5,  null],
          "close":  [101.5, 100.5, null],
          "volume": [2000,  1000,  null]
        }]
      }
    }],
    "error": null
  }
}`

func newTestFetcher(t *testing.T, status int, body string) (*YahooFetcher, *http.Request) {
	t.Helper()
	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	f := NewYahooFetcher("", 5*time.Second)
	f.BaseURL = srv.URL
	return f, &captured
}

func TestYahooFetcher_FetchSeries(t *testing.T) {
	f, req := newTestFetcher(t, http.StatusOK, chartBody)

	bars, err := f.FetchSeries(context.Background(), "AAPL", "1mo", "1d")
	require.NoError(t, err)

	assert.Equal(t, "/v8/finance/chart/AAPL", req.URL.Path)
	assert.Equal(t, "1mo", req.URL.Query().Get("range"))
	assert.Equal(t, "1d", req.URL.Query().Get("interval"))
	assert.Equal(t, "Mozilla/5.0", req.Header.Get("User-Agent"))

	require.Len(t, bars, 2, "null bar must be skipped")
	assert.True(t, bars[0].Time.Before(bars[1].Time), "bars must be chronological")
	assert.Equal(t, 100.5, bars[0].Close)
	assert.Equal(t, 101.5, bars[1].Close)
	assert.Equal(t, "America/New_York", bars[0].Time.Location().String())
}

func TestYahooFetcher_FetchQuote(t *testing.T) {
	f, _ := newTestFetcher(t, http.StatusOK, chartBody)

	q, err := f.FetchQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", q.Name())
	require.NotNil(t, q.Price)
	assert.Equal(t, 190.5, *q.Price)

	change, pct, ok := q.Change()
	require.True(t, ok)
	assert.InDelta(t, 2.5, change, 1e-9)
	assert.InDelta(t, 1.3298, pct, 1e-3)
}

func TestYahooFetcher_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api error", http.StatusNotFound, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`},
		{"bad status", http.StatusInternalServerError, `oops`},
		{"bad json", http.StatusOK, `{`},
		{"no result", http.StatusOK, `{"chart":{"result":[],"error":null}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestFetcher(t, tt.status, tt.body)
			_, err := f.FetchSeries(context.Background(), "ZZZZ", "1mo", "1d")
			assert.Error(t, err)
		})
	}
}

func TestYahooFetcher_EmptySymbol(t *testing.T) {
	f := NewYahooFetcher("", time.Second)
	_, err := f.FetchSeries(context.Background(), "", "1mo", "1d")
	assert.Error(t, err)
}
