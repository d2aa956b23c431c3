package report

import (
	"fmt"
	"strings"

	"MarketBrief/internal/model"
)

// BuildPrompt renders a snapshot plus the section catalog into the single
// synthesis request. Pure and deterministic: the same snapshot always yields
// the same payload. The instructions pin the model to the exact header
// grammar ParseSections expects ("1. TITLE" lines, uppercase titles).
func BuildPrompt(snap *model.MarketSnapshot, universe model.Universe, catalog Catalog) string {
	var b strings.Builder

	b.WriteString("You are a professional financial market analyst. Write today's market summary report from the data below.\n\n")
	b.WriteString(fmt.Sprintf("MARKET DATA (as of %s)\n\n", snap.FetchedAt.UTC().Format("2006-01-02 15:04 MST")))

	bySymbol := make(map[string]model.Quote, len(snap.Quotes))
	for _, q := range snap.Quotes {
		bySymbol[q.Symbol] = q
	}
	writeQuoteGroup(&b, "INDICES", universe.Indices, bySymbol)
	writeQuoteGroup(&b, "MAJOR STOCKS", universe.Majors, bySymbol)
	writeQuoteGroup(&b, "SECTOR ETFS", universe.Sectors, bySymbol)

	b.WriteString("MARKET NEWS (most recent first):\n")
	if len(snap.News) == 0 {
		b.WriteString("(no news available)\n")
	}
	for i, n := range snap.News {
		b.WriteString(fmt.Sprintf("%d. %s (%s, %s)\n", i+1, n.Headline, n.Source, n.PublishedAt.UTC().Format("2006-01-02 15:04")))
		if n.Summary != "" {
			b.WriteString("   " + n.Summary + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("EARNINGS CALENDAR (%s):\n", snap.FetchedAt.UTC().Format("2006-01-02")))
	if len(snap.Earnings) == 0 {
		b.WriteString("(no earnings scheduled)\n")
	}
	for _, e := range snap.Earnings {
		b.WriteString(fmt.Sprintf("- %s Q%d %d (%s), EPS estimate %s, revenue estimate %s\n",
			e.Symbol, e.Quarter, e.Year, e.Hour, fmtFloatPtr(e.EPSEstimate), fmtIntPtr(e.RevenueEstimate)))
	}
	b.WriteString("\n")

	b.WriteString("INSTRUCTIONS\n\n")
	b.WriteString("Structure the report as the numbered sections below, in order. Reproduce each section title EXACTLY as written, on its own line, prefixed with its number and a period, for example \"1. EXECUTIVE SUMMARY\". Do not invent other headings. Do not use markdown headings.\n")
	b.WriteString("Bullet lists use lines starting with \"- \". Emphasis uses **double asterisks**.\n\n")
	for i, s := range catalog {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, s.Title))
		b.WriteString(s.Instructions + "\n\n")
	}

	return b.String()
}

func writeQuoteGroup(b *strings.Builder, label string, symbols []string, bySymbol map[string]model.Quote) {
	b.WriteString(label + ":\n")
	wrote := false
	for _, sym := range symbols {
		q, ok := bySymbol[sym]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%s: current=%s change=%s (%s%%) high=%s low=%s open=%s prevClose=%s\n",
			q.Symbol, fmtFloatPtr(q.Current), fmtSignedPtr(q.Change), fmtSignedPtr(q.ChangePercent),
			fmtFloatPtr(q.High), fmtFloatPtr(q.Low), fmtFloatPtr(q.Open), fmtFloatPtr(q.PreviousClose)))
		wrote = true
	}
	if !wrote {
		b.WriteString("(no data)\n")
	}
	b.WriteString("\n")
}

// fmtFloatPtr prints "n/a" for unknown values rather than coercing to zero.
func fmtFloatPtr(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtSignedPtr(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f", *v)
}

func fmtIntPtr(v *int64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *v)
}
