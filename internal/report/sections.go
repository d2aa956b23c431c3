package report

import "MarketBrief/internal/model"

// Section is one entry of the report taxonomy.
type Section struct {
	Title        string
	Instructions string
}

// Catalog is the fixed, ordered section taxonomy. The prompt builder embeds
// it verbatim and the parser maps recovered titles back against it, so both
// sides of the text contract always share one value. Edit titles here and
// nowhere else.
type Catalog []Section

// DefaultCatalog returns the standard report taxonomy.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Title:        "EXECUTIVE SUMMARY",
			Instructions: "Three to four sentences capturing the session's overall direction and its single most important driver. Use exact percentages from the data.",
		},
		{
			Title:        "MARKET OVERVIEW",
			Instructions: "How each major index performed, with exact levels and percentage moves from the data. Note any divergence between indices.",
		},
		{
			Title:        "MAJOR MOVERS",
			Instructions: "The individual stocks with the largest moves, with exact percentages, and the likely reason for each move where the news supports one.",
		},
		{
			Title:        "SECTOR WATCH",
			Instructions: "Which sectors led and which lagged, with exact percentages. Call out rotation only if the data shows it.",
		},
		{
			Title:        "NEWS HIGHLIGHTS",
			Instructions: "The three to five most market-relevant stories from the news list, one or two sentences each. Name the source of each story.",
		},
		{
			Title:        "EARNINGS RADAR",
			Instructions: "Companies reporting earnings today and what to watch in each. If the earnings list is empty, say so in one sentence.",
		},
		{
			Title:        "MARKET OUTLOOK",
			Instructions: "What to watch going into the next session: pending earnings, notable levels, themes carried over from today. Keep it concrete.",
		},
	}
}

// Classify maps a parsed section title onto the taxonomy.
func (c Catalog) Classify(title string) model.SectionKind {
	if title == "" {
		return model.SectionUntitled
	}
	for _, s := range c {
		if s.Title == title {
			return model.SectionRecognized
		}
	}
	return model.SectionUnrecognized
}
