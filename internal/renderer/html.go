package renderer

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"MarketBrief/internal/model"
	"MarketBrief/internal/report"
)

var boldRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// Renderer turns a Report into a self-contained HTML document for mail
// delivery. It must survive the model under- or over-producing sections:
// recognized titles get headed blocks, unrecognized ones a generic block,
// untitled prose is rendered as-is.
type Renderer struct {
	Universe model.Universe
	Catalog  report.Catalog
}

// NewRenderer creates a new Renderer.
func NewRenderer(universe model.Universe, catalog report.Catalog) *Renderer {
	return &Renderer{Universe: universe, Catalog: catalog}
}

// Render produces the final HTML document.
func (r *Renderer) Render(rep *model.Report) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<body style=\"font-family:Arial,Helvetica,sans-serif;color:#1a1a2e;max-width:720px;margin:0 auto;padding:16px\">\n")
	b.WriteString(fmt.Sprintf("<h1 style=\"font-size:22px\">Market Brief &mdash; %s</h1>\n", rep.GeneratedAt.Format("Monday, January 2, 2006")))

	r.writeIndexStrip(&b, rep.Snapshot)

	for _, s := range rep.Sections {
		switch r.Catalog.Classify(s.Title) {
		case model.SectionRecognized:
			b.WriteString(fmt.Sprintf("<h2 style=\"font-size:17px;border-bottom:1px solid #ddd;padding-bottom:4px\">%d. %s</h2>\n", s.Ordinal, html.EscapeString(s.Title)))
			b.WriteString(renderBody(s.Body))
		case model.SectionUnrecognized:
			b.WriteString("<div style=\"margin:12px 0;padding:8px;background:#f7f7f9\">\n")
			b.WriteString("<p><em>" + html.EscapeString(s.Title) + "</em></p>\n")
			b.WriteString(renderBody(s.Body))
			b.WriteString("</div>\n")
		default:
			b.WriteString(renderBody(s.Body))
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// writeIndexStrip emits one card per configured index symbol present in the
// snapshot. It reads raw quotes and is independent of section parsing.
func (r *Renderer) writeIndexStrip(b *strings.Builder, snap *model.MarketSnapshot) {
	if snap == nil {
		return
	}
	bySymbol := make(map[string]model.Quote, len(snap.Quotes))
	for _, q := range snap.Quotes {
		bySymbol[q.Symbol] = q
	}

	b.WriteString("<table cellpadding=\"0\" cellspacing=\"6\"><tr>\n")
	for _, sym := range r.Universe.Indices {
		q, ok := bySymbol[sym]
		if !ok {
			continue
		}
		price := "n/a"
		if q.Current != nil {
			price = fmt.Sprintf("%.2f", *q.Current)
		}
		change, color := "n/a", "#666666"
		if q.ChangePercent != nil {
			change = fmt.Sprintf("%+.2f%%", *q.ChangePercent)
			if *q.ChangePercent >= 0 {
				color = "#1e7d32"
			} else {
				color = "#c62828"
			}
		}
		b.WriteString(fmt.Sprintf("<td style=\"border:1px solid #ddd;border-radius:6px;padding:8px 14px;text-align:center\"><b>%s</b><br>%s<br><span style=\"color:%s\">%s</span></td>\n",
			html.EscapeString(q.Symbol), price, color, change))
	}
	b.WriteString("</tr></table>\n")
}

// renderBody converts a section body into HTML: consecutive dash lines
// collapse into one list block, blank-line-separated runs become
// paragraphs, and **spans** become <strong>. All text is escaped first.
func renderBody(body string) string {
	var b strings.Builder
	var items []string
	var para []string

	flushList := func() {
		if len(items) == 0 {
			return
		}
		b.WriteString("<ul>\n")
		for _, it := range items {
			b.WriteString("<li>" + renderInline(it) + "</li>\n")
		}
		b.WriteString("</ul>\n")
		items = nil
	}
	flushPara := func() {
		if len(para) == 0 {
			return
		}
		b.WriteString("<p>" + renderInline(strings.Join(para, " ")) + "</p>\n")
		para = nil
	}

	for _, line := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		t := strings.TrimSpace(line)
		switch {
		case t == "":
			flushList()
			flushPara()
		case strings.HasPrefix(t, "- "):
			flushPara()
			items = append(items, strings.TrimSpace(t[2:]))
		default:
			flushList()
			para = append(para, t)
		}
	}
	flushList()
	flushPara()
	return b.String()
}

func renderInline(s string) string {
	escaped := html.EscapeString(s)
	return boldRe.ReplaceAllString(escaped, "<strong>$1</strong>")
}
