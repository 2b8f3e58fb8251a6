package advisor

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"StockDesk/internal/calculator"
	"StockDesk/internal/collector"
	"StockDesk/internal/model"
)

// ErrNoData is returned when the provider has no recent history for a ticker.
// Its text is sent to clients verbatim.
var ErrNoData = errors.New("No data available")

const recentDays = 5

// TextGenerator sends a prompt to a text-generation model and returns its reply.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor produces BUY/SELL/HOLD decisions by prompting a language model with
// recent prices.
type Advisor struct {
	Market    collector.Fetcher
	Generator TextGenerator
	Provider  string
}

// New creates an Advisor. A nil generator means no credential is configured and
// every decision is the static HOLD fallback.
func New(market collector.Fetcher, gen TextGenerator) *Advisor {
	return &Advisor{Market: market, Generator: gen, Provider: "Gemini"}
}

// GetDecision returns a decision for ticker. The only error it returns is
// ErrNoData; every other failure is folded into a HOLD decision.
func (a *Advisor) GetDecision(ctx context.Context, ticker string) (*model.DecisionResponse, error) {
	if a.Generator == nil {
		return &model.DecisionResponse{
			Ticker: ticker,
			Action: model.ActionHold,
			Reason: fmt.Sprintf("No %s API key configured. Using default HOLD action.", a.Provider),
		}, nil
	}

	entry := log.WithField("ticker", ticker)
	prompt, err := a.prompt(ctx, ticker)
	if errors.Is(err, ErrNoData) {
		return nil, err
	}
	if err != nil {
		entry.Errorf("market data error: %v", err)
		return Resolve(ticker, Failure{Message: err.Error()}), nil
	}

	verdict := Classify(a.Generator.Generate(ctx, prompt))
	switch v := verdict.(type) {
	case Failure:
		entry.Errorf("%s API error: %s", a.Provider, v.Message)
	case Malformed:
		entry.Warnf("unrecognized %s reply: %q", a.Provider, v.Raw)
	case Success:
		entry.WithField("action", v.Action).Info("decision ready")
	}
	return Resolve(ticker, verdict), nil
}

// prompt builds the model prompt. A failed or empty history fetch is
// ErrNoData; a failed quote fetch is returned as is.
func (a *Advisor) prompt(ctx context.Context, ticker string) (string, error) {
	bars := collector.NewCollector(a.Market).Series(ctx, ticker, "5d", "1d")
	if len(bars) == 0 {
		return "", ErrNoData
	}
	quote, err := a.Market.FetchQuote(ctx, ticker)
	if err != nil {
		return "", fmt.Errorf("fetch quote: %w", err)
	}

	closes := calculator.LastCloses(bars, recentDays)
	var current float64
	if len(closes) > 0 {
		current = closes[len(closes)-1]
	}
	company := ticker
	if name := quote.Name(); name != "" {
		company = name
	}
	return BuildPrompt(ticker, company, current, closes), nil
}
