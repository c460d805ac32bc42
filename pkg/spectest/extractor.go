package spectest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/specsuite/core/pkg/domain"
)

// Extractor runs the full extraction and validation flow for one test file:
// path metadata, header metadata, case attachment and cross-consistency.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses both metadata encodings of one test file and cross-checks
// them. On success it returns the header-derived record, which carries the
// full detail, with cases attached and derived fields computed.
func (e *Extractor) Extract(ctx context.Context, path string, content []byte) (*domain.TestMetadata, error) {
	byPath, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	byHeader, err := ParseHeader(content)
	if err != nil {
		return nil, withPath(err, path)
	}

	cases, err := ExtractCases(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("extract cases from %s: %w", path, err)
	}
	attachCases(byHeader, cases)

	if err := CheckConsistency(byPath, byHeader); err != nil {
		return nil, withPath(err, path)
	}

	return byHeader, nil
}

// ExtractFile reads path from disk and runs Extract on its content.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (*domain.TestMetadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test file: %w", err)
	}
	return e.Extract(ctx, path, content)
}

// attachCases wires extracted cases into a header-derived record. With no
// case annotations in the body, a single synthetic case is built from the
// header's own description, flag and issues. The record's derived fields
// then fold case-level markers in: the unexpected-behavior flag ORs across
// header and cases, the issue list is the sorted deduplicated union.
func attachCases(meta *domain.TestMetadata, cases []domain.TestCase) {
	if len(cases) == 0 {
		cases = []domain.TestCase{{
			Index:              1,
			Description:        meta.Description,
			UnexpectedBehavior: meta.UnexpectedBehavior,
			Issues:             meta.Issues,
		}}
	}
	meta.Cases = cases

	for _, c := range cases {
		meta.UnexpectedBehavior = meta.UnexpectedBehavior || c.UnexpectedBehavior
	}
	meta.Issues = mergeIssues(meta.Issues, cases)
}

// mergeIssues returns the sorted deduplicated union of the header issue
// list and every case issue list. Nil when both sides are empty.
func mergeIssues(header []string, cases []domain.TestCase) []string {
	seen := make(map[string]struct{})
	for _, issue := range header {
		seen[issue] = struct{}{}
	}
	for _, c := range cases {
		for _, issue := range c.Issues {
			seen[issue] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	merged := make([]string, 0, len(seen))
	for issue := range seen {
		merged = append(merged, issue)
	}
	sort.Strings(merged)
	return merged
}

// withPath stamps the file path onto a validation error that was produced
// without one.
func withPath(err error, path string) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && ve.Path == "" {
		return domain.NewValidationError(ve.Kind, path, ve.Detail)
	}
	return err
}
