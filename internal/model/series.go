package model

// Range names the chart window a SeriesResponse was built for.
type Range string

const (
	RangeDaily    Range = "daily"
	RangeIntraday Range = "intraday"
	RangeMonthly  Range = "monthly"
)

// SeriesResponse is a labeled price series ready for charting.
// Labels, Values and Count always agree in length.
type SeriesResponse struct {
	Ticker string    `json:"ticker"`
	Range  Range     `json:"range"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Count  int       `json:"count"`
}

// NewSeriesResponse builds a response with Count derived from the values.
func NewSeriesResponse(ticker string, rng Range, labels []string, values []float64) *SeriesResponse {
	return &SeriesResponse{
		Ticker: ticker,
		Range:  rng,
		Labels: labels,
		Values: values,
		Count:  len(values),
	}
}
