package report

import (
	"regexp"
	"strconv"
	"strings"

	"MarketBrief/internal/model"
)

// headerRe matches a section header line: an integer, a period, one space,
// then an all-uppercase title (letters and spaces only). Any digit,
// punctuation, or lowercase letter in the title disqualifies the line.
var headerRe = regexp.MustCompile(`^(\d+)\. ([A-Z][A-Z ]*)$`)

// ParseSections splits the model's raw response into ordered sections.
// The split is a lookahead at header lines: each header opens the chunk
// it belongs to. Text before the first header (or a response with no
// headers at all) becomes an untitled pseudo-section, so no model text is
// ever discarded. Ordinals are the model's own numbering, passed through
// without validation. This function never fails.
func ParseSections(text string) []model.ParsedSection {
	var sections []model.ParsedSection
	var cur *model.ParsedSection

	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimRight(line, "\r\n")
		if m := headerRe.FindStringSubmatch(trimmed); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				sections = append(sections, model.ParsedSection{Ordinal: n, Title: m[2]})
				cur = &sections[len(sections)-1]
				continue
			}
		}
		if cur == nil {
			sections = append(sections, model.ParsedSection{})
			cur = &sections[len(sections)-1]
		}
		cur.Body += line
	}

	return sections
}
