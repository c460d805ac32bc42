package spectest

import (
	"regexp"
	"strings"

	"github.com/specsuite/core/pkg/domain"
)

// Header micro-format: a leading block comment with labeled fields in fixed
// order, closed by optional UNEXPECTED BEHAVIOUR and ISSUES markers.
var headerPattern = regexp.MustCompile(
	`^\s*/\*\s+KOTLIN (DIAGNOSTICS|PSI|CODEGEN) SPEC TEST \((POSITIVE|NEGATIVE)\)\s*\n` +
		`\s*SECTION ([1-9]\d*(?:\.[1-9]\d*)*): (.+?)\s*\n` +
		`\s*PARAGRAPH: ([1-9]\d*)\s*\n` +
		`\s*SENTENCE ([1-9]\d*): (.+?)\s*\n` +
		`\s*NUMBER: ([1-9]\d*)\s*\n` +
		`\s*DESCRIPTION: (.+?)\s*\n` +
		`(?:\s*(UNEXPECTED BEHAVIOUR)\s*\n)?` +
		`(?:\s*ISSUES: (KT-\d+(?:,\s*KT-\d+)*)\s*\n)?` +
		`\s*\*/`)

// ParseHeader extracts test metadata from the leading header comment of a
// test file. Cases are not attached here; see ExtractCases and Extractor.
func ParseHeader(content []byte) (*domain.TestMetadata, error) {
	m := headerPattern.FindStringSubmatch(string(content))
	if m == nil {
		return nil, domain.NewValidationError(domain.KindMetaInfoNotValid, "", "")
	}

	area, _ := domain.ParseArea(m[1])
	testType, _ := domain.ParseTestType(m[2])

	return &domain.TestMetadata{
		Area:               area,
		Type:               testType,
		SectionNumber:      m[3],
		SectionName:        m[4],
		ParagraphNumber:    mustAtoi(m[5]),
		SentenceNumber:     mustAtoi(m[6]),
		SentenceText:       m[7],
		TestNumber:         mustAtoi(m[8]),
		Description:        m[9],
		UnexpectedBehavior: m[10] != "",
		Issues:             splitIssues(m[11]),
	}, nil
}

// splitIssues splits a "KT-1, KT-2" list. Returns nil for an empty list so
// the absence of an ISSUES marker stays observable.
func splitIssues(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	issues := make([]string, 0, len(parts))
	for _, p := range parts {
		issues = append(issues, strings.TrimSpace(p))
	}
	return issues
}
