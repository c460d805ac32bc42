// Package stats aggregates spec test counts into an
// area→section→paragraph→test-type hierarchy.
package stats

import (
	"sort"

	"github.com/specsuite/core/pkg/domain"
)

// TestTypeCount is the leaf of the counter tree: tests of one declared
// type within a paragraph.
type TestTypeCount struct {
	Total int
}

// ParagraphCount tracks tests within one paragraph, split by declared type.
type ParagraphCount struct {
	Total int
	Types map[domain.TestType]*TestTypeCount
}

// SectionCount tracks tests within one section, split by paragraph.
type SectionCount struct {
	Total      int
	Paragraphs map[int]*ParagraphCount
}

// AreaCount is the root of one area's counter tree.
type AreaCount struct {
	Total    int
	Sections map[string]*SectionCount
}

// Counters holds the full counter tree for an aggregation run. A node's
// total always equals the sum of its children's totals: Add increments
// every level of the chain in one walk from root to leaf.
type Counters map[domain.TestArea]*AreaCount

// NewCounters creates a counter tree with a root node per area, so areas
// with no tests still render with a zero total.
func NewCounters(areas []domain.TestArea) Counters {
	c := make(Counters, len(areas))
	for _, area := range areas {
		c[area] = &AreaCount{Sections: make(map[string]*SectionCount)}
	}
	return c
}

// Add folds one extracted test into the tree, creating missing nodes on
// first encounter and cascading the increment through every level.
func (c Counters) Add(meta *domain.TestMetadata) {
	area := c[meta.Area]
	if area == nil {
		area = &AreaCount{Sections: make(map[string]*SectionCount)}
		c[meta.Area] = area
	}
	area.Total++

	section := area.Sections[meta.SectionKey()]
	if section == nil {
		section = &SectionCount{Paragraphs: make(map[int]*ParagraphCount)}
		area.Sections[meta.SectionKey()] = section
	}
	section.Total++

	paragraph := section.Paragraphs[meta.ParagraphNumber]
	if paragraph == nil {
		paragraph = &ParagraphCount{Types: make(map[domain.TestType]*TestTypeCount)}
		section.Paragraphs[meta.ParagraphNumber] = paragraph
	}
	paragraph.Total++

	testType := paragraph.Types[meta.Type]
	if testType == nil {
		testType = &TestTypeCount{}
		paragraph.Types[meta.Type] = testType
	}
	testType.Total++
}

// Total returns the grand total across all areas.
func (c Counters) Total() int {
	total := 0
	for _, area := range c {
		total += area.Total
	}
	return total
}

// Areas returns the area keys in lexicographic order.
func (c Counters) Areas() []domain.TestArea {
	areas := make([]domain.TestArea, 0, len(c))
	for area := range c {
		areas = append(areas, area)
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i] < areas[j] })
	return areas
}

// SectionKeys returns the section keys in lexicographic order.
func (a *AreaCount) SectionKeys() []string {
	keys := make([]string, 0, len(a.Sections))
	for key := range a.Sections {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ParagraphNumbers returns the paragraph numbers in ascending order.
func (s *SectionCount) ParagraphNumbers() []int {
	numbers := make([]int, 0, len(s.Paragraphs))
	for n := range s.Paragraphs {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// TypeKeys returns the test type keys in lexicographic order.
func (p *ParagraphCount) TypeKeys() []domain.TestType {
	keys := make([]domain.TestType, 0, len(p.Types))
	for key := range p.Types {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
