package renderer

import (
	"strings"
	"testing"
	"time"

	"MarketBrief/internal/model"
	"MarketBrief/internal/report"
)

func fp(v float64) *float64 { return &v }

func testRenderer() *Renderer {
	return NewRenderer(
		model.Universe{Indices: []string{"SPY", "QQQ"}, Majors: []string{"AAPL"}},
		report.DefaultCatalog(),
	)
}

func testReport(sections []model.ParsedSection) *model.Report {
	return &model.Report{
		GeneratedAt: time.Date(2026, 8, 28, 16, 0, 0, 0, time.UTC),
		Snapshot: &model.MarketSnapshot{
			Quotes: []model.Quote{
				{Symbol: "SPY", Current: fp(645.21), ChangePercent: fp(1.23)},
				{Symbol: "QQQ", Current: fp(570.10), ChangePercent: fp(-0.40)},
				{Symbol: "AAPL", Current: fp(232.10), ChangePercent: fp(2.05)},
			},
		},
		Sections: sections,
	}
}

func TestRender_IndexStrip(t *testing.T) {
	html := testRenderer().Render(testReport(nil))

	if !strings.Contains(html, "SPY") || !strings.Contains(html, "+1.23%") {
		t.Error("expected SPY card showing +1.23%")
	}
	if !strings.Contains(html, "-0.40%") {
		t.Error("expected QQQ card showing -0.40%")
	}
	// AAPL is a major, not an index: no card.
	if strings.Contains(html, "232.10") {
		t.Error("summary strip must be restricted to the indices category")
	}
}

func TestRender_RecognizedSectionGetsHeading(t *testing.T) {
	html := testRenderer().Render(testReport([]model.ParsedSection{
		{Ordinal: 1, Title: "EXECUTIVE SUMMARY", Body: "Markets rose.\n"},
	}))

	if !strings.Contains(html, "1. EXECUTIVE SUMMARY") {
		t.Error("recognized section must render its numbered title")
	}
	if !strings.Contains(html, "<p>Markets rose.</p>") {
		t.Error("body must render as a paragraph")
	}
}

func TestRender_UnrecognizedSectionKept(t *testing.T) {
	html := testRenderer().Render(testReport([]model.ParsedSection{
		{Ordinal: 9, Title: "CRYPTO CORNER", Body: "Bitcoin drifted.\n"},
	}))

	if !strings.Contains(html, "Bitcoin drifted.") {
		t.Error("unrecognized sections must be rendered, not dropped")
	}
	if strings.Contains(html, "<h2") {
		t.Error("unrecognized sections must use the generic block, not a section heading")
	}
}

func TestRenderBody_BulletsAndBoldAndParagraphs(t *testing.T) {
	body := "Intro line.\n\n- first **big** item\n- second item\n\nClosing thought.\n"
	html := renderBody(body)

	if !strings.Contains(html, "<p>Intro line.</p>") {
		t.Error("expected leading paragraph")
	}
	if strings.Count(html, "<ul>") != 1 {
		t.Errorf("consecutive dash lines must form a single list block, got %d", strings.Count(html, "<ul>"))
	}
	if !strings.Contains(html, "<li>first <strong>big</strong> item</li>") {
		t.Error("expected bold span converted inside list item")
	}
	if !strings.Contains(html, "<li>second item</li>") {
		t.Error("expected second list item")
	}
	if !strings.Contains(html, "<p>Closing thought.</p>") {
		t.Error("expected trailing paragraph")
	}
}

func TestRenderBody_EscapesModelText(t *testing.T) {
	html := renderBody("a <script>alert(1)</script> tag\n")

	if strings.Contains(html, "<script>") {
		t.Error("model text must be HTML-escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped angle brackets")
	}
}

func TestRender_NilChangePercentShownAsUnknown(t *testing.T) {
	r := testRenderer()
	rep := testReport(nil)
	rep.Snapshot.Quotes[0].ChangePercent = nil

	html := r.Render(rep)
	if !strings.Contains(html, "n/a") {
		t.Error("unknown change percent must render as n/a, never zero")
	}
	if strings.Contains(html, "+0.00%") {
		t.Error("nil must not be coerced to zero")
	}
}
