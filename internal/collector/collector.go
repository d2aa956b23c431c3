package collector

import (
	"context"
	"errors"
	"log"
	"time"

	"MarketBrief/internal/model"
)

// Caps applied to the best-effort lists regardless of provider response size.
const (
	MaxNewsItems       = 20
	MaxEarningsEntries = 10
)

var errFetchFailed = errors.New("mock fetch failed")

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Quotes      map[string]model.Quote
	FailSymbols map[string]bool
	News        []model.NewsItem
	NewsErr     error
	Earnings    []model.EarningsEntry
	EarningsErr error
	QuoteCalls  []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuote(_ context.Context, symbol string) (model.Quote, error) {
	m.QuoteCalls = append(m.QuoteCalls, symbol)
	if m.FailSymbols[symbol] {
		return model.Quote{}, errFetchFailed
	}
	if q, ok := m.Quotes[symbol]; ok {
		return q, nil
	}
	price := 100.0
	return model.Quote{Symbol: symbol, Current: &price}, nil
}

func (m *MockFetcher) FetchMarketNews(_ context.Context) ([]model.NewsItem, error) {
	if m.NewsErr != nil {
		return nil, m.NewsErr
	}
	return m.News, nil
}

func (m *MockFetcher) FetchEarnings(_ context.Context, _ time.Time) ([]model.EarningsEntry, error) {
	if m.EarningsErr != nil {
		return nil, m.EarningsErr
	}
	return m.Earnings, nil
}

// Aggregator sequences quote, news, and earnings fetches into one snapshot.
// The quote loop is strictly sequential with a pause between calls: the
// upstream provider enforces a per-minute request ceiling, so pacing is a
// deliberate trade-off, not a missing optimization.
type Aggregator struct {
	Fetcher  Fetcher
	Universe model.Universe
	Delay    time.Duration
}

// NewAggregator creates a new Aggregator.
func NewAggregator(fetcher Fetcher, universe model.Universe, delay time.Duration) *Aggregator {
	return &Aggregator{Fetcher: fetcher, Universe: universe, Delay: delay}
}

// Collect fetches all market data for one run. It never returns an error:
// a failed quote drops that symbol, failed news or earnings degrade to an
// empty list, and every failure is logged.
func (a *Aggregator) Collect(ctx context.Context) *model.MarketSnapshot {
	snap := &model.MarketSnapshot{FetchedAt: time.Now()}

	for i, symbol := range a.Universe.All() {
		if i > 0 {
			a.pause(ctx)
		}
		q, err := a.Fetcher.FetchQuote(ctx, symbol)
		if err != nil {
			log.Printf("[WARN] quote fetch %s: %v, symbol dropped", symbol, err)
			continue
		}
		snap.Quotes = append(snap.Quotes, q)
	}

	news, err := a.Fetcher.FetchMarketNews(ctx)
	if err != nil {
		log.Printf("[WARN] news fetch: %v, continuing without news", err)
		news = nil
	}
	if len(news) > MaxNewsItems {
		news = news[:MaxNewsItems]
	}
	snap.News = news

	earnings, err := a.Fetcher.FetchEarnings(ctx, snap.FetchedAt)
	if err != nil {
		log.Printf("[WARN] earnings fetch: %v, continuing without earnings", err)
		earnings = nil
	}
	if len(earnings) > MaxEarningsEntries {
		earnings = earnings[:MaxEarningsEntries]
	}
	snap.Earnings = earnings

	return snap
}

func (a *Aggregator) pause(ctx context.Context) {
	if a.Delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(a.Delay):
	}
}
