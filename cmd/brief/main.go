package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"MarketBrief/internal/collector"
	"MarketBrief/internal/config"
	"MarketBrief/internal/mailer"
	"MarketBrief/internal/recorder"
	"MarketBrief/internal/renderer"
	"MarketBrief/internal/report"
	"MarketBrief/internal/scheduler"
	"MarketBrief/internal/synth"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MarketBrief starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and aggregator
	fetcher := collector.NewFinnhubFetcher(cfg.Finnhub.APIKey)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	agg := collector.NewAggregator(fetcher, cfg.Universe(), cfg.FetchDelay())

	// Init synthesizer
	syn := synth.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	log.Printf("[INFO] synthesizer: %s", syn.Name())

	// Init renderer and mailer
	catalog := report.DefaultCatalog()
	rend := renderer.NewRenderer(cfg.Universe(), catalog)
	mail := mailer.NewMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From, cfg.Mail.To)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, agg, syn, catalog, rend, mail, rec, cfg.Mail.SubjectPrefix)

	// One-shot mode: run the pipeline once and exit with its outcome.
	if os.Getenv("RUN_ONCE") == "true" {
		if err := sched.RunDailyNow(); err != nil {
			log.Fatalf("[FATAL] report run: %v", err)
		}
		log.Println("[INFO] one-shot run complete")
		return
	}

	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily report now")
		go func() {
			if err := sched.RunDailyNow(); err != nil {
				log.Printf("[ERROR] startup report run: %v", err)
			}
		}()
	}

	log.Println("[INFO] MarketBrief is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] MarketBrief stopped")
}
