package spectest

import (
	"fmt"
	"strings"

	"github.com/specsuite/core/pkg/domain"
)

// CheckConsistency verifies that path- and header-derived metadata agree on
// the key field set: area, declared type, section number, paragraph number,
// sentence number and test number. Free-text fields and cases are not
// compared.
func CheckConsistency(byPath, byHeader *domain.TestMetadata) error {
	var mismatches []string

	if byPath.Area != byHeader.Area {
		mismatches = append(mismatches, fmt.Sprintf("area %q vs %q", byPath.Area, byHeader.Area))
	}
	if byPath.Type != byHeader.Type {
		mismatches = append(mismatches, fmt.Sprintf("test type %q vs %q", byPath.Type, byHeader.Type))
	}
	if byPath.SectionNumber != byHeader.SectionNumber {
		mismatches = append(mismatches, fmt.Sprintf("section %q vs %q", byPath.SectionNumber, byHeader.SectionNumber))
	}
	if byPath.ParagraphNumber != byHeader.ParagraphNumber {
		mismatches = append(mismatches, fmt.Sprintf("paragraph %d vs %d", byPath.ParagraphNumber, byHeader.ParagraphNumber))
	}
	if byPath.SentenceNumber != byHeader.SentenceNumber {
		mismatches = append(mismatches, fmt.Sprintf("sentence %d vs %d", byPath.SentenceNumber, byHeader.SentenceNumber))
	}
	if byPath.TestNumber != byHeader.TestNumber {
		mismatches = append(mismatches, fmt.Sprintf("test number %d vs %d", byPath.TestNumber, byHeader.TestNumber))
	}

	if len(mismatches) > 0 {
		return domain.NewValidationError(domain.KindNotConsistent, "", strings.Join(mismatches, "; "))
	}
	return nil
}

// ValidateTestType compares the declared test type against the actual type
// computed from a test run. Equal types pass. A positive test that produced
// errors fails with TEST_IS_NOT_POSITIVE, a negative test that produced
// none with TEST_IS_NOT_NEGATIVE; any other mismatch shape is reported as
// UNKNOWN.
func ValidateTestType(declared, actual domain.TestType) error {
	switch {
	case declared == actual:
		return nil
	case declared == domain.TypePositive && actual == domain.TypeNegative:
		return domain.NewValidationError(domain.KindTestIsNotPositive, "", "")
	case declared == domain.TypeNegative && actual == domain.TypePositive:
		return domain.NewValidationError(domain.KindTestIsNotNegative, "", "")
	default:
		return domain.NewValidationError(domain.KindUnknown, "",
			fmt.Sprintf("declared %q, actual %q", declared, actual))
	}
}
