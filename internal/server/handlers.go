package server

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"StockDesk/internal/advisor"
	"StockDesk/internal/model"
)

type seriesFunc func(ctx context.Context, ticker string) (*model.SeriesResponse, error)

// seriesHandler answers with the series or {"error": ...}, both with status 200.
func (s *Server) seriesHandler(build seriesFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := build(r.Context(), tickerVar(r))
		if err != nil {
			if respErr := SetErrorResponse(http.StatusOK, err, w); respErr != nil {
				log.Errorf("seriesHandler: failed to set error response: %v", respErr)
			}
			return
		}
		if err := SetResponse(resp, http.StatusOK, w); err != nil {
			log.Errorf("seriesHandler: failed to set response: %v", err)
		}
	}
}

func (s *Server) infoHandler(w http.ResponseWriter, r *http.Request) {
	ticker := tickerVar(r)
	quote, err := s.Quotes.Quote(r.Context(), ticker)
	if err != nil {
		if respErr := SetErrorResponse(http.StatusBadRequest, err, w); respErr != nil {
			log.Errorf("infoHandler: failed to set error response: %v", respErr)
		}
		return
	}
	if err := SetResponse(model.NewInfoResponse(ticker, quote), http.StatusOK, w); err != nil {
		log.Errorf("infoHandler: failed to set response: %v", err)
	}
}

func (s *Server) decisionHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.Decisions.GetDecision(r.Context(), tickerVar(r))
	if err != nil {
		if !errors.Is(err, advisor.ErrNoData) {
			log.Errorf("decisionHandler: unexpected error: %v", err)
		}
		if respErr := SetErrorResponse(http.StatusBadRequest, err, w); respErr != nil {
			log.Errorf("decisionHandler: failed to set error response: %v", respErr)
		}
		return
	}
	if err := SetResponse(resp, http.StatusOK, w); err != nil {
		log.Errorf("decisionHandler: failed to set response: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	status := map[string]string{"status": "ok"}
	if err := SetResponse(&status, http.StatusOK, w); err != nil {
		log.Errorf("healthHandler: failed to set response: %v", err)
	}
}
