package spectest

import (
	"errors"
	"strings"
	"testing"

	"github.com/specsuite/core/pkg/domain"
)

func keyMetadata() domain.TestMetadata {
	return domain.TestMetadata{
		Area:            domain.AreaDiagnostics,
		Type:            domain.TypePositive,
		SectionNumber:   "16.30",
		SectionName:     "when-expression",
		ParagraphNumber: 3,
		SentenceNumber:  1,
		TestNumber:      3,
	}
}

func TestCheckConsistency(t *testing.T) {
	byPath := keyMetadata()
	byHeader := keyMetadata()
	byHeader.SentenceText = "wording differs from nothing"
	byHeader.Description = "free text is not compared"
	byHeader.Cases = []domain.TestCase{{Index: 1}}

	if err := CheckConsistency(&byPath, &byHeader); err != nil {
		t.Errorf("CheckConsistency failed on matching key fields: %v", err)
	}
}

func TestCheckConsistencyMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.TestMetadata)
		detail string
	}{
		{"area", func(m *domain.TestMetadata) { m.Area = domain.AreaPSI }, "area"},
		{"type", func(m *domain.TestMetadata) { m.Type = domain.TypeNegative }, "test type"},
		{"section number", func(m *domain.TestMetadata) { m.SectionNumber = "16.31" }, "section"},
		{"paragraph", func(m *domain.TestMetadata) { m.ParagraphNumber = 4 }, "paragraph 3 vs 4"},
		{"sentence", func(m *domain.TestMetadata) { m.SentenceNumber = 2 }, "sentence"},
		{"test number", func(m *domain.TestMetadata) { m.TestNumber = 5 }, "test number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byPath := keyMetadata()
			byHeader := keyMetadata()
			tt.mutate(&byHeader)

			err := CheckConsistency(&byPath, &byHeader)
			if err == nil {
				t.Fatal("CheckConsistency passed, want FILENAME_AND_METAINFO_NOT_CONSISTENT")
			}
			if !errors.Is(err, domain.ErrNotConsistent) {
				t.Fatalf("error = %v, want FILENAME_AND_METAINFO_NOT_CONSISTENT", err)
			}
			if !strings.Contains(err.Error(), tt.detail) {
				t.Errorf("error %q does not name the mismatched field (%q)", err.Error(), tt.detail)
			}
		})
	}
}

func TestCheckConsistencyIgnoresSectionName(t *testing.T) {
	byPath := keyMetadata()
	byHeader := keyMetadata()
	byHeader.SectionName = "when expression"

	if err := CheckConsistency(&byPath, &byHeader); err != nil {
		t.Errorf("section name should not participate in the key: %v", err)
	}
}

func TestValidateTestType(t *testing.T) {
	tests := []struct {
		name     string
		declared domain.TestType
		actual   domain.TestType
		want     error
	}{
		{"positive matches", domain.TypePositive, domain.TypePositive, nil},
		{"negative matches", domain.TypeNegative, domain.TypeNegative, nil},
		{"positive produced errors", domain.TypePositive, domain.TypeNegative, domain.ErrTestIsNotPositive},
		{"negative produced none", domain.TypeNegative, domain.TypePositive, domain.ErrTestIsNotNegative},
		{"unrecognized declared type", domain.TestType("FLAKY"), domain.TypePositive, domain.ErrUnknownMismatch},
		{"unrecognized actual type", domain.TypePositive, domain.TestType(""), domain.ErrUnknownMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTestType(tt.declared, tt.actual)
			if tt.want == nil {
				if err != nil {
					t.Errorf("ValidateTestType(%q, %q) = %v, want nil", tt.declared, tt.actual, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateTestType(%q, %q) = %v, want %v", tt.declared, tt.actual, err, tt.want)
			}
		})
	}
}
