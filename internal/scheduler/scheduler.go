package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"MarketBrief/internal/collector"
	"MarketBrief/internal/model"
	"MarketBrief/internal/recorder"
	"MarketBrief/internal/renderer"
	"MarketBrief/internal/report"
	"MarketBrief/internal/synth"
)

// Deliverer sends one rendered document. Implemented by mailer.Mailer.
type Deliverer interface {
	Deliver(ctx context.Context, subject, htmlBody string) error
}

// Scheduler runs the report pipeline on a cron schedule. Each run is
// strictly sequential: aggregate, build prompt, synthesize, parse, render,
// deliver. Nothing carries over between runs except the audit row.
type Scheduler struct {
	Cron       *cron.Cron
	Aggregator *collector.Aggregator
	Synth      synth.Synthesizer
	Catalog    report.Catalog
	Renderer   *renderer.Renderer
	Deliverer  Deliverer
	Recorder   recorder.Recorder
	Subject    string
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, agg *collector.Aggregator, syn synth.Synthesizer, catalog report.Catalog, rend *renderer.Renderer, del Deliverer, rec recorder.Recorder, subject string) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Aggregator: agg,
		Synth:      syn,
		Catalog:    catalog,
		Renderer:   rend,
		Deliverer:  del,
		Recorder:   rec,
		Subject:    subject,
		Ctx:        ctx,
	}
}

// Register registers the daily report task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) dailyTask() {
	if err := s.RunDailyNow(); err != nil {
		log.Printf("[ERROR] daily report run failed: %v", err)
	}
}

// RunDailyNow executes one full pipeline run. Aggregation degrades on
// partial failure and never errors; a synthesis or delivery failure aborts
// the run, and no partial document is ever sent.
func (s *Scheduler) RunDailyNow() error {
	started := time.Now()
	log.Println("[INFO] running daily report pipeline")

	snap := s.Aggregator.Collect(s.Ctx)
	symbolCount := len(s.Aggregator.Universe.All())
	log.Printf("[INFO] snapshot: %d/%d quotes, %d news, %d earnings",
		len(snap.Quotes), symbolCount, len(snap.News), len(snap.Earnings))

	prompt := report.BuildPrompt(snap, s.Aggregator.Universe, s.Catalog)

	text, err := s.Synth.Synthesize(s.Ctx, prompt)
	if err != nil {
		s.record(started, snap, symbolCount, 0, "SYNTH_FAILED", err)
		return fmt.Errorf("synthesis call: %w", err)
	}

	sections := report.ParseSections(text)
	rep := &model.Report{GeneratedAt: started, Snapshot: snap, Sections: sections}
	htmlDoc := s.Renderer.Render(rep)

	subject := fmt.Sprintf("%s %s", s.Subject, started.Format("2006-01-02"))
	if err := s.Deliverer.Deliver(s.Ctx, subject, htmlDoc); err != nil {
		s.record(started, snap, symbolCount, len(sections), "DELIVERY_FAILED", err)
		return fmt.Errorf("deliver report: %w", err)
	}

	s.record(started, snap, symbolCount, len(sections), "DELIVERED", nil)
	log.Printf("[INFO] report delivered: %d sections", len(sections))
	return nil
}

func (s *Scheduler) record(started time.Time, snap *model.MarketSnapshot, symbolCount, sectionCount int, status string, runErr error) {
	rec := &recorder.RunRecord{
		StartedAt:     started,
		FinishedAt:    time.Now(),
		QuotesOK:      len(snap.Quotes),
		QuotesFailed:  symbolCount - len(snap.Quotes),
		NewsCount:     len(snap.News),
		EarningsCount: len(snap.Earnings),
		SectionCount:  sectionCount,
		Status:        status,
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	}
	if err := s.Recorder.RecordRun(rec); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
