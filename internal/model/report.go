package model

import "time"

// SectionKind classifies a parsed section against the section catalog.
type SectionKind int

const (
	// SectionUntitled is body text with no header line (leading prose,
	// or the whole response when no header matched).
	SectionUntitled SectionKind = iota
	// SectionRecognized is a section whose title is in the catalog.
	SectionRecognized
	// SectionUnrecognized carries a header line whose title the catalog
	// doesn't know. Rendered generically, never dropped.
	SectionUnrecognized
)

// ParsedSection is one chunk of the model's response. Ordinal is the number
// the model itself wrote (not a catalog index); it is passed through as-is
// and may skip, repeat, or start anywhere.
type ParsedSection struct {
	Ordinal int
	Title   string
	Body    string
}

// Report is the final output of one pipeline run. Built once, rendered,
// delivered, discarded.
type Report struct {
	GeneratedAt time.Time
	Snapshot    *MarketSnapshot
	Sections    []ParsedSection
}
