// Package spectest extracts and validates spec test metadata from test
// file paths and header comments.
package spectest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/specsuite/core/pkg/domain"
)

// TestFileExtension is the file extension of spec test files.
const TestFileExtension = ".kt"

// Required path layout, relative to the suite root.
const (
	pathShape   = "<area>/s-<sectionNumber>_<sectionName>/p-<paragraphNumber>/<pos|neg>/<sentenceNumber>.<testNumber>.kt"
	pathExample = "diagnostics/s-16.30_when-expression/p-3/pos/1.3.kt"
)

var pathPattern = regexp.MustCompile(
	`(?:^|/)(diagnostics|psi|codegen)` +
		`/s-([1-9]\d*(?:\.[1-9]\d*)*)_([\w-]+)` +
		`/p-([1-9]\d*)` +
		`/(pos|neg)` +
		`/([1-9]\d*)\.([1-9]\d*)\.kt$`)

// ParsePath extracts test metadata from a test file path. The path may be
// absolute or relative; only the trailing area/section/paragraph/type/file
// segments are significant. Free-text fields stay empty: the path encodes
// structure, not wording.
func ParsePath(path string) (*domain.TestMetadata, error) {
	m := pathPattern.FindStringSubmatch(filepath.ToSlash(path))
	if m == nil {
		return nil, domain.NewValidationError(domain.KindFilenameNotValid, path,
			fmt.Sprintf("expected %s, e.g. %s", pathShape, pathExample))
	}

	area, _ := domain.ParseArea(m[1])
	testType, _ := domain.ParseTestType(m[5])

	return &domain.TestMetadata{
		Area:            area,
		Type:            testType,
		SectionNumber:   m[2],
		SectionName:     m[3],
		ParagraphNumber: mustAtoi(m[4]),
		SentenceNumber:  mustAtoi(m[6]),
		TestNumber:      mustAtoi(m[7]),
	}, nil
}

// mustAtoi converts a digits-only submatch. The pattern guarantees the
// input is a valid positive integer.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("non-numeric submatch %q", s))
	}
	return n
}
