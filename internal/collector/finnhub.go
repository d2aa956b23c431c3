package collector

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"MarketBrief/internal/model"
)

// FinnhubFetcher implements Fetcher using the Finnhub REST API.
type FinnhubFetcher struct {
	client *finnhub.DefaultApiService
}

// NewFinnhubFetcher creates a Finnhub fetcher authenticated with apiKey.
func NewFinnhubFetcher(apiKey string) *FinnhubFetcher {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnhubFetcher{client: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (f *FinnhubFetcher) Name() string { return "finnhub" }

func f32ptr(v *float32) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// FetchQuote retrieves a point-in-time quote for one symbol.
func (f *FinnhubFetcher) FetchQuote(ctx context.Context, symbol string) (model.Quote, error) {
	res, _, err := f.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return model.Quote{}, fmt.Errorf("finnhub quote %s: %w", symbol, err)
	}
	q := model.Quote{
		Symbol:        symbol,
		Current:       f32ptr(res.C),
		Change:        f32ptr(res.D),
		ChangePercent: f32ptr(res.Dp),
		High:          f32ptr(res.H),
		Low:           f32ptr(res.L),
		Open:          f32ptr(res.O),
		PreviousClose: f32ptr(res.Pc),
	}
	if q.Current == nil {
		return model.Quote{}, fmt.Errorf("finnhub quote %s: empty payload", symbol)
	}
	return q, nil
}

// FetchMarketNews retrieves recent general-market news in provider order.
func (f *FinnhubFetcher) FetchMarketNews(ctx context.Context) ([]model.NewsItem, error) {
	res, _, err := f.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub market news: %w", err)
	}
	items := make([]model.NewsItem, 0, len(res))
	for _, n := range res {
		item := model.NewsItem{}
		if n.Headline != nil {
			item.Headline = *n.Headline
		}
		if n.Summary != nil {
			item.Summary = *n.Summary
		}
		if n.Source != nil {
			item.Source = *n.Source
		}
		if n.Url != nil {
			item.URL = *n.Url
		}
		if n.Datetime != nil {
			item.PublishedAt = time.Unix(*n.Datetime, 0)
		}
		items = append(items, item)
	}
	return items, nil
}

// FetchEarnings retrieves companies reporting earnings on the given day.
func (f *FinnhubFetcher) FetchEarnings(ctx context.Context, day time.Time) ([]model.EarningsEntry, error) {
	d := day.Format("2006-01-02")
	res, _, err := f.client.EarningsCalendar(ctx).From(d).To(d).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub earnings calendar %s: %w", d, err)
	}
	releases := res.GetEarningsCalendar()
	entries := make([]model.EarningsEntry, 0, len(releases))
	for _, r := range releases {
		e := model.EarningsEntry{
			Symbol:  r.GetSymbol(),
			Date:    r.GetDate(),
			Hour:    r.GetHour(),
			Quarter: r.GetQuarter(),
			Year:    r.GetYear(),
		}
		if v, ok := r.GetEpsEstimateOk(); ok && v != nil {
			f := float64(*v)
			e.EPSEstimate = &f
		}
		if v, ok := r.GetRevenueEstimateOk(); ok && v != nil {
			rev := int64(*v)
			e.RevenueEstimate = &rev
		}
		entries = append(entries, e)
	}
	return entries, nil
}
