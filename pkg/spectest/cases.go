package spectest

import (
	"context"
	"regexp"

	"github.com/specsuite/core/pkg/domain"
	"github.com/specsuite/core/pkg/spectest/kotlincomment"
)

// Case micro-format, matched against comment text only. A case carries a
// description line plus the same optional markers as the header.
var casePattern = regexp.MustCompile(
	`CASE DESCRIPTION: (.+?)\s*(?:\n|$)` +
		`(?:\s*(UNEXPECTED BEHAVIOUR)\s*(?:\n|$))?` +
		`(?:\s*ISSUES: (KT-\d+(?:,\s*KT-\d+)*)\s*(?:\n|$))?`)

// ExtractCases scans the file body for case annotations, in block comments
// or runs of adjacent line comments, and numbers them from 1 in order of
// appearance. A file with no case annotations yields an empty slice; the
// Extractor substitutes a synthetic case built from the header.
func ExtractCases(ctx context.Context, content []byte) ([]domain.TestCase, error) {
	comments, err := kotlincomment.Collect(ctx, content)
	if err != nil {
		return nil, err
	}

	var cases []domain.TestCase
	for _, block := range kotlincomment.Blocks(comments) {
		for _, m := range casePattern.FindAllStringSubmatch(block, -1) {
			cases = append(cases, domain.TestCase{
				Index:              len(cases) + 1,
				Description:        m[1],
				UnexpectedBehavior: m[2] != "",
				Issues:             splitIssues(m[3]),
			})
		}
	}

	return cases, nil
}
