package domain

import "fmt"

// ValidationKind identifies a class of spec test validation failure.
type ValidationKind string

// Validation failure kinds. All are terminal for the file in question.
const (
	// KindFilenameNotValid: the path does not match the required pattern.
	KindFilenameNotValid ValidationKind = "FILENAME_NOT_VALID"
	// KindMetaInfoNotValid: the header comment is missing or malformed.
	KindMetaInfoNotValid ValidationKind = "METAINFO_NOT_VALID"
	// KindNotConsistent: path- and header-derived key fields disagree.
	KindNotConsistent ValidationKind = "FILENAME_AND_METAINFO_NOT_CONSISTENT"
	// KindTestIsNotPositive: declared POSITIVE but the run produced errors.
	KindTestIsNotPositive ValidationKind = "TEST_IS_NOT_POSITIVE"
	// KindTestIsNotNegative: declared NEGATIVE but the run was clean.
	KindTestIsNotNegative ValidationKind = "TEST_IS_NOT_NEGATIVE"
	// KindUnknown: a type mismatch shape not covered by the named kinds.
	KindUnknown ValidationKind = "UNKNOWN"
)

var validationMessages = map[ValidationKind]string{
	KindFilenameNotValid:  "filename does not match the required test path pattern",
	KindMetaInfoNotValid:  "metadata header is absent or malformed",
	KindNotConsistent:     "metadata from the filename and the header are inconsistent",
	KindTestIsNotPositive: "test is declared positive but produced error findings",
	KindTestIsNotNegative: "test is declared negative but produced no error findings",
	KindUnknown:           "unknown test type mismatch",
}

// ValidationError is a typed, terminal validation failure for one file.
type ValidationError struct {
	// Kind classifies the failure.
	Kind ValidationKind
	// Path is the file the failure refers to (may be empty).
	Path string
	// Detail carries failure-specific context appended to the fixed message.
	Detail string
}

// NewValidationError builds a ValidationError of the given kind.
func NewValidationError(kind ValidationKind, path, detail string) *ValidationError {
	return &ValidationError{Kind: kind, Path: path, Detail: detail}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, validationMessages[e.Kind])
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return msg
}

// Is matches two validation errors by kind, so callers can use errors.Is
// against the Err* sentinels.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is matching by kind.
var (
	ErrFilenameNotValid  = &ValidationError{Kind: KindFilenameNotValid}
	ErrMetaInfoNotValid  = &ValidationError{Kind: KindMetaInfoNotValid}
	ErrNotConsistent     = &ValidationError{Kind: KindNotConsistent}
	ErrTestIsNotPositive = &ValidationError{Kind: KindTestIsNotPositive}
	ErrTestIsNotNegative = &ValidationError{Kind: KindTestIsNotNegative}
	ErrUnknownMismatch   = &ValidationError{Kind: KindUnknown}
)
