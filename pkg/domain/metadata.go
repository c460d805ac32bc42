package domain

// TestCase represents a single case annotation inside a test file.
type TestCase struct {
	// Index is the 1-based position of the case in order of appearance.
	Index int
	// Description is the case description text.
	Description string
	// UnexpectedBehavior reports whether the case carries the
	// UNEXPECTED BEHAVIOUR marker.
	UnexpectedBehavior bool
	// Issues lists issue references attached to this case.
	// Nil when the annotation carried no ISSUES list.
	Issues []string
}

// TestMetadata holds the structured metadata of one spec test file.
// One instance is produced per extraction source (path or header);
// header-derived instances carry the free-text fields and cases.
type TestMetadata struct {
	// Area is the compiler subsystem the test targets.
	Area TestArea
	// Type is the declared test type.
	Type TestType
	// SectionNumber is the dotted section identifier (e.g. "16.30").
	SectionNumber string
	// SectionName is the section slug (e.g. "when-expression").
	SectionName string
	// ParagraphNumber addresses the paragraph within the section.
	ParagraphNumber int
	// SentenceNumber addresses the sentence within the paragraph.
	SentenceNumber int
	// SentenceText is the sentence wording. Empty for path-derived records.
	SentenceText string
	// TestNumber distinguishes tests of the same sentence.
	TestNumber int
	// Description is the test description. Empty for path-derived records.
	Description string
	// Cases lists case annotations, in order of appearance.
	// Empty for path-derived records.
	Cases []TestCase
	// UnexpectedBehavior is true when the file or any of its cases
	// is flagged.
	UnexpectedBehavior bool
	// Issues is the deduplicated, sorted union of file-level and
	// case-level issue references.
	Issues []string
}

// SectionKey returns the "<sectionNumber> <sectionName>" key used to
// group statistics by section.
func (m *TestMetadata) SectionKey() string {
	return m.SectionNumber + " " + m.SectionName
}
