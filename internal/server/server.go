package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"StockDesk/internal/model"
)

// SeriesFormatter builds the chart series for a ticker.
type SeriesFormatter interface {
	Daily(ctx context.Context, ticker string) (*model.SeriesResponse, error)
	Intraday(ctx context.Context, ticker string) (*model.SeriesResponse, error)
	Monthly(ctx context.Context, ticker string) (*model.SeriesResponse, error)
}

// QuoteSource returns provider quote metadata.
type QuoteSource interface {
	Quote(ctx context.Context, ticker string) (*model.Quote, error)
}

// DecisionMaker produces a trading decision for a ticker.
type DecisionMaker interface {
	GetDecision(ctx context.Context, ticker string) (*model.DecisionResponse, error)
}

// Server exposes market data, decisions and static assets over HTTP.
type Server struct {
	Series    SeriesFormatter
	Quotes    QuoteSource
	Decisions DecisionMaker
	StaticDir string
}

// NewServer creates a Server.
func NewServer(series SeriesFormatter, quotes QuoteSource, decisions DecisionMaker, staticDir string) *Server {
	return &Server{
		Series:    series,
		Quotes:    quotes,
		Decisions: decisions,
		StaticDir: staticDir,
	}
}

// Handler returns the full HTTP handler: routes wrapped in CORS and request logging.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api/{ticker}").Subrouter()
	api.HandleFunc("/daily", s.seriesHandler(s.Series.Daily)).Methods(http.MethodGet)
	api.HandleFunc("/monthly", s.seriesHandler(s.Series.Monthly)).Methods(http.MethodGet)
	api.HandleFunc("/intraday", s.seriesHandler(s.Series.Intraday)).Methods(http.MethodGet)
	api.HandleFunc("/info", s.infoHandler).Methods(http.MethodGet)
	api.HandleFunc("/decision", s.decisionHandler).Methods(http.MethodGet)

	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	static := newStaticHandler(s.StaticDir)
	router.PathPrefix("/").Handler(static).Methods(http.MethodGet, http.MethodHead)

	return withCORS(withLogging(router))
}

// tickerVar returns the normalized ticker path segment.
func tickerVar(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(mux.Vars(r)["ticker"]))
}
