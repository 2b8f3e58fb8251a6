package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	log "github.com/sirupsen/logrus"

	"StockDesk/internal/advisor"
	"StockDesk/internal/cache"
	"StockDesk/internal/collector"
	"StockDesk/internal/config"
	"StockDesk/internal/formatter"
	"StockDesk/internal/scheduler"
	"StockDesk/internal/server"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.Info("StockDesk starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}
	level, _ := log.ParseLevel(cfg.Log.Level)
	log.SetLevel(level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Market data
	fetcher := collector.NewYahooFetcher(cfg.Proxy, cfg.Market.Timeout)
	col := collector.NewCollector(fetcher)
	log.Infof("data source: %s", fetcher.Name())

	// Series formatters share one cache
	store := cache.New(cfg.Cache.TTL)
	fmtr := formatter.New(col, store)

	// Decision service
	var gen advisor.TextGenerator
	if cfg.HasGeminiKey() {
		g, err := advisor.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
		if err != nil {
			log.Fatalf("init gemini: %v", err)
		}
		defer g.Close()
		gen = g
		log.Infof("decisions delegated to %s", cfg.Gemini.Model)
	} else {
		log.Warn("GEMINI_API_KEY not set, decisions default to HOLD")
	}
	adv := advisor.New(fetcher, gen)

	// Cache sweep
	sched := scheduler.NewScheduler(store)
	if err := sched.RegisterAll(cfg.Schedule.CacheSweepCron); err != nil {
		log.Fatalf("register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.NewServer(fmtr, col, adv, cfg.HTTP.StaticDir).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http: failed to listen and serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("error shutting down server: %v", err)
	}
	cancel()
	log.Info("StockDesk stopped")
}
