package model

import "time"

// Quote is a point-in-time quote for one symbol. Fields are pointers because
// the provider may omit any of them; a nil field means "unknown", never zero.
type Quote struct {
	Symbol        string
	Current       *float64
	Change        *float64
	ChangePercent *float64
	High          *float64
	Low           *float64
	Open          *float64
	PreviousClose *float64
}

// NewsItem is one general-market news story, kept in provider order.
type NewsItem struct {
	Headline    string
	Summary     string
	Source      string
	URL         string
	PublishedAt time.Time
}

// EarningsEntry is one company reporting earnings on a given date.
// Passed through to the prompt unvalidated.
type EarningsEntry struct {
	Symbol          string
	Date            string
	Hour            string
	Quarter         int64
	Year            int64
	EPSEstimate     *float64
	RevenueEstimate *int64
}

// MarketSnapshot bundles everything gathered for a single run.
// Quotes follow the configured symbol order; symbols whose fetch failed
// are absent. Immutable once built.
type MarketSnapshot struct {
	FetchedAt time.Time
	Quotes    []Quote
	News      []NewsItem
	Earnings  []EarningsEntry
}

// Universe is the configured symbol universe, split into three disjoint
// category sets. Categories affect grouping only, never fetch behavior.
type Universe struct {
	Indices []string
	Majors  []string
	Sectors []string
}

// All returns every symbol in configured order: indices, majors, sectors.
func (u Universe) All() []string {
	out := make([]string, 0, len(u.Indices)+len(u.Majors)+len(u.Sectors))
	out = append(out, u.Indices...)
	out = append(out, u.Majors...)
	out = append(out, u.Sectors...)
	return out
}

// IsIndex reports whether symbol belongs to the indices category.
func (u Universe) IsIndex(symbol string) bool {
	for _, s := range u.Indices {
		if s == symbol {
			return true
		}
	}
	return false
}
