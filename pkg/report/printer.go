// Package report renders spec test metadata and aggregate statistics as
// human-readable text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/specsuite/core/pkg/domain"
	"github.com/specsuite/core/pkg/stats"
)

var (
	banner      = color.New(color.FgYellow, color.Bold)
	areaHeading = color.New(color.Bold)
)

// PrintTestInfo writes a human-readable block for one validated test.
func PrintTestInfo(w io.Writer, meta *domain.TestMetadata) {
	if meta.UnexpectedBehavior {
		fmt.Fprintln(w, banner.Sprint("(!!!) UNEXPECTED BEHAVIOUR (!!!)"))
	}
	fmt.Fprintf(w, "%s TEST (%s)\n", meta.Area.Label(), meta.Type)
	fmt.Fprintf(w, "SECTION: %s (%s)\n", meta.SectionNumber, meta.SectionName)
	fmt.Fprintf(w, "PARAGRAPH: %d\n", meta.ParagraphNumber)
	fmt.Fprintf(w, "SENTENCE %d: %s\n", meta.SentenceNumber, meta.SentenceText)
	fmt.Fprintf(w, "TEST NUMBER: %d\n", meta.TestNumber)
	fmt.Fprintf(w, "CASES: %d\n", len(meta.Cases))
	fmt.Fprintf(w, "DESCRIPTION: %s\n", meta.Description)
	if len(meta.Issues) > 0 {
		fmt.Fprintf(w, "LINKED ISSUES: %s\n", strings.Join(meta.Issues, ", "))
	}
}

// PrintStatistics renders the counter tree as an indented report: areas at
// the top level, then sections, then paragraphs with a per-type breakdown,
// and a grand total at the end. Ordering is deterministic at every level.
func PrintStatistics(w io.Writer, counters stats.Counters) {
	for _, area := range counters.Areas() {
		areaCount := counters[area]
		fmt.Fprintf(w, "%s: %d\n", areaHeading.Sprint(area.Label()), areaCount.Total)

		for _, sectionKey := range areaCount.SectionKeys() {
			section := areaCount.Sections[sectionKey]
			fmt.Fprintf(w, "  %s: %d\n", sectionKey, section.Total)

			for _, number := range section.ParagraphNumbers() {
				paragraph := section.Paragraphs[number]
				fmt.Fprintf(w, "    %d: %d (%s)\n", number, paragraph.Total, typeBreakdown(paragraph))
			}
		}
	}
	fmt.Fprintf(w, "TOTAL: %d\n", counters.Total())
}

func typeBreakdown(paragraph *stats.ParagraphCount) string {
	parts := make([]string, 0, len(paragraph.Types))
	for _, key := range paragraph.TypeKeys() {
		parts = append(parts, fmt.Sprintf("%s: %d", key, paragraph.Types[key].Total))
	}
	return strings.Join(parts, ", ")
}
