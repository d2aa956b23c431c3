package report

import (
	"testing"

	"MarketBrief/internal/model"
)

func TestParseSections_TwoSections(t *testing.T) {
	got := ParseSections("1. FOO\nbody1\n2. BAR\nbody2")

	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
	want := []model.ParsedSection{
		{Ordinal: 1, Title: "FOO", Body: "body1\n"},
		{Ordinal: 2, Title: "BAR", Body: "body2"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestParseSections_NoHeadersYieldsSinglePseudoSection(t *testing.T) {
	text := "The market had a quiet day.\nNothing notable happened.\n"
	got := ParseSections(text)

	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Title != "" || got[0].Ordinal != 0 {
		t.Errorf("expected untitled pseudo-section, got %+v", got[0])
	}
	if got[0].Body != text {
		t.Errorf("pseudo-section must carry the whole text, got %q", got[0].Body)
	}
}

func TestParseSections_MixedCaseLineIsNotAHeader(t *testing.T) {
	got := ParseSections("1. EXECUTIVE SUMMARY\nintro\n1. Foo Bar\nmore")

	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Body != "intro\n1. Foo Bar\nmore" {
		t.Errorf("mixed-case line must fall into the body, got %q", got[0].Body)
	}
}

func TestParseSections_HeaderDisqualifiers(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"digits in title", "1. TOP 5 MOVERS"},
		{"punctuation in title", "1. RISKS & OUTLOOK"},
		{"lowercase title", "1. summary"},
		{"no space after period", "1.SUMMARY"},
		{"no ordinal", "EXECUTIVE SUMMARY"},
		{"trailing colon", "1. SUMMARY:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSections(tt.line + "\nbody")
			if len(got) != 1 || got[0].Title != "" {
				t.Errorf("%q must not parse as a header: %+v", tt.line, got)
			}
		})
	}
}

func TestParseSections_LeadingProsePreserved(t *testing.T) {
	got := ParseSections("Here is your report.\n\n1. EXECUTIVE SUMMARY\nMarkets rose.\n")

	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
	if got[0].Title != "" || got[0].Body != "Here is your report.\n\n" {
		t.Errorf("leading prose must be kept in position, got %+v", got[0])
	}
	if got[1].Title != "EXECUTIVE SUMMARY" || got[1].Body != "Markets rose.\n" {
		t.Errorf("unexpected second section %+v", got[1])
	}
}

func TestParseSections_OrdinalsPassedThroughUnvalidated(t *testing.T) {
	got := ParseSections("7. MARKET OUTLOOK\na\n3. SECTOR WATCH\nb\n3. SECTOR WATCH\nc")

	if len(got) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(got))
	}
	ordinals := []int{got[0].Ordinal, got[1].Ordinal, got[2].Ordinal}
	if ordinals[0] != 7 || ordinals[1] != 3 || ordinals[2] != 3 {
		t.Errorf("ordinals must survive skips, reorders, and repeats: %v", ordinals)
	}
}

func TestParseSections_MultiWordTitle(t *testing.T) {
	got := ParseSections("2. NEWS AND EARNINGS HIGHLIGHTS\nbody")

	if len(got) != 1 || got[0].Title != "NEWS AND EARNINGS HIGHLIGHTS" {
		t.Fatalf("expected multi-word uppercase title, got %+v", got)
	}
}

func TestParseSections_EmptyInput(t *testing.T) {
	got := ParseSections("")

	if len(got) != 1 {
		t.Fatalf("expected 1 section for empty input, got %d", len(got))
	}
	if got[0].Title != "" || got[0].Body != "" {
		t.Errorf("expected empty pseudo-section, got %+v", got[0])
	}
}

func TestClassify(t *testing.T) {
	catalog := DefaultCatalog()
	tests := []struct {
		title string
		want  model.SectionKind
	}{
		{"EXECUTIVE SUMMARY", model.SectionRecognized},
		{"MARKET OUTLOOK", model.SectionRecognized},
		{"CRYPTO CORNER", model.SectionUnrecognized},
		{"", model.SectionUntitled},
	}
	for _, tt := range tests {
		if got := catalog.Classify(tt.title); got != tt.want {
			t.Errorf("Classify(%q): expected %v, got %v", tt.title, tt.want, got)
		}
	}
}
