package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsuite/core/pkg/domain"
)

func metaFor(area domain.TestArea, section string, paragraph int, testType domain.TestType) *domain.TestMetadata {
	return &domain.TestMetadata{
		Area:            area,
		Type:            testType,
		SectionNumber:   section,
		SectionName:     "sec-" + section,
		ParagraphNumber: paragraph,
		SentenceNumber:  1,
		TestNumber:      1,
	}
}

func TestCountersAddCascades(t *testing.T) {
	counters := NewCounters(domain.DefaultAreas())

	counters.Add(metaFor(domain.AreaDiagnostics, "16.30", 3, domain.TypePositive))
	counters.Add(metaFor(domain.AreaDiagnostics, "16.30", 3, domain.TypePositive))
	counters.Add(metaFor(domain.AreaDiagnostics, "16.30", 3, domain.TypeNegative))
	counters.Add(metaFor(domain.AreaDiagnostics, "16.30", 4, domain.TypePositive))
	counters.Add(metaFor(domain.AreaDiagnostics, "5", 1, domain.TypeNegative))
	counters.Add(metaFor(domain.AreaPSI, "5", 1, domain.TypeNegative))

	diagnostics := counters[domain.AreaDiagnostics]
	require.NotNil(t, diagnostics)
	assert.Equal(t, 5, diagnostics.Total)

	section := diagnostics.Sections["16.30 sec-16.30"]
	require.NotNil(t, section)
	assert.Equal(t, 4, section.Total)

	paragraph := section.Paragraphs[3]
	require.NotNil(t, paragraph)
	assert.Equal(t, 3, paragraph.Total)
	assert.Equal(t, 2, paragraph.Types[domain.TypePositive].Total)
	assert.Equal(t, 1, paragraph.Types[domain.TypeNegative].Total)

	assert.Equal(t, 1, counters[domain.AreaPSI].Total)
	assert.Equal(t, 0, counters[domain.AreaCodegen].Total)
	assert.Equal(t, 6, counters.Total())
}

// Every ancestor's counter must equal the sum of its children's counters
// after a full pass.
func TestCountersRollUpInvariant(t *testing.T) {
	counters := NewCounters(domain.DefaultAreas())

	fixtures := []struct {
		area      domain.TestArea
		section   string
		paragraph int
		testType  domain.TestType
		n         int
	}{
		{domain.AreaDiagnostics, "16.30", 3, domain.TypePositive, 7},
		{domain.AreaDiagnostics, "16.30", 3, domain.TypeNegative, 5},
		{domain.AreaDiagnostics, "16.30", 4, domain.TypePositive, 2},
		{domain.AreaDiagnostics, "1.2.3", 1, domain.TypeNegative, 3},
		{domain.AreaPSI, "5", 1, domain.TypePositive, 4},
		{domain.AreaCodegen, "9", 2, domain.TypeNegative, 1},
	}
	for _, f := range fixtures {
		for i := 0; i < f.n; i++ {
			counters.Add(metaFor(f.area, f.section, f.paragraph, f.testType))
		}
	}

	grandTotal := 0
	for _, area := range counters.Areas() {
		areaCount := counters[area]
		areaSum := 0
		for _, key := range areaCount.SectionKeys() {
			section := areaCount.Sections[key]
			sectionSum := 0
			for _, n := range section.ParagraphNumbers() {
				paragraph := section.Paragraphs[n]
				paragraphSum := 0
				for _, tt := range paragraph.TypeKeys() {
					paragraphSum += paragraph.Types[tt].Total
				}
				assert.Equal(t, paragraph.Total, paragraphSum, "paragraph %s/%s/%d", area, key, n)
				sectionSum += paragraph.Total
			}
			assert.Equal(t, section.Total, sectionSum, "section %s/%s", area, key)
			areaSum += section.Total
		}
		assert.Equal(t, areaCount.Total, areaSum, "area %s", area)
		grandTotal += areaCount.Total
	}
	assert.Equal(t, counters.Total(), grandTotal)
}

func TestCountersSortedAccessors(t *testing.T) {
	counters := NewCounters(nil)

	counters.Add(metaFor(domain.AreaDiagnostics, "2", 10, domain.TypePositive))
	counters.Add(metaFor(domain.AreaDiagnostics, "11", 2, domain.TypeNegative))
	counters.Add(metaFor(domain.AreaDiagnostics, "2", 9, domain.TypePositive))

	diagnostics := counters[domain.AreaDiagnostics]
	assert.Equal(t, []string{"11 sec-11", "2 sec-2"}, diagnostics.SectionKeys())
	assert.Equal(t, []int{9, 10}, diagnostics.Sections["2 sec-2"].ParagraphNumbers())

	paragraph := diagnostics.Sections["2 sec-2"].Paragraphs[10]
	assert.Equal(t, []domain.TestType{domain.TypePositive}, paragraph.TypeKeys())
}

func TestCountersAddUnknownArea(t *testing.T) {
	counters := NewCounters(nil)
	counters.Add(metaFor(domain.AreaCodegen, "1", 1, domain.TypePositive))

	require.NotNil(t, counters[domain.AreaCodegen])
	assert.Equal(t, 1, counters[domain.AreaCodegen].Total)
}
