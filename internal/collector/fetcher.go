package collector

import (
	"context"
	"time"

	"MarketBrief/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchQuote(ctx context.Context, symbol string) (model.Quote, error)
	FetchMarketNews(ctx context.Context) ([]model.NewsItem, error)
	FetchEarnings(ctx context.Context, day time.Time) ([]model.EarningsEntry, error)
	Name() string
}
