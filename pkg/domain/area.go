// Package domain defines the core types for spec test metadata.
package domain

import "strings"

// TestArea represents a compiler subsystem under test.
type TestArea string

// Supported test areas.
const (
	AreaDiagnostics TestArea = "diagnostics"
	AreaPSI         TestArea = "psi"
	AreaCodegen     TestArea = "codegen"
)

// DefaultAreas returns the standard area list in suite order.
func DefaultAreas() []TestArea {
	return []TestArea{AreaDiagnostics, AreaPSI, AreaCodegen}
}

// ParseArea maps an area token to a TestArea. It accepts both the
// lower-case directory spelling and the upper-case header spelling.
func ParseArea(token string) (TestArea, bool) {
	switch TestArea(strings.ToLower(token)) {
	case AreaDiagnostics:
		return AreaDiagnostics, true
	case AreaPSI:
		return AreaPSI, true
	case AreaCodegen:
		return AreaCodegen, true
	}
	return "", false
}

// Label returns the upper-case form used in headers and reports.
func (a TestArea) Label() string {
	return strings.ToUpper(string(a))
}
