package recorder

import "time"

// RunRecord holds run telemetry for one pipeline execution. The rendered
// report itself is never stored.
type RunRecord struct {
	StartedAt     time.Time
	FinishedAt    time.Time
	QuotesOK      int
	QuotesFailed  int
	NewsCount     int
	EarningsCount int
	SectionCount  int
	Status        string // "DELIVERED", "SYNTH_FAILED", "DELIVERY_FAILED"
	Error         string
}

// Recorder persists run telemetry for later inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
