package report

import (
	"strings"
	"testing"

	"caoclean/internal/models"
)

func TestRender(t *testing.T) {
	stats := models.CleaningStats{
		TotalRecords:      10,
		ValidRecords:      7,
		DuplicatesRemoved: 2,
		RejectionReasons: map[string][]string{
			"Contact Us": {"not a course entry (system page)"},
		},
		DefaultsApplied: map[string]int{"nfq_level": 3},
	}

	categorized := map[string][]models.Course{
		"stem_courses":    {{Name: "Eng"}, {Name: "Sci"}},
		"general_courses": {{Name: "Misc"}},
	}

	got := Render(stats, categorized, 5)

	for _, want := range []string{
		"# Course Data Cleaning Summary",
		"| Total records",
		"| 10",
		"| Duplicates removed",
		"70.0%",
		"stem_courses",
		"| 2",
		"nfq_level",
		"**Contact Us**: not a course entry (system page)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q\n%s", want, got)
		}
	}
}

func TestRender_AlignedColumns(t *testing.T) {
	stats := models.CleaningStats{TotalRecords: 1, ValidRecords: 1}

	got := Render(stats, nil, 0)

	// Every row of the results table has equal display width.
	var widths []int

	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "| ") {
			widths = append(widths, len(line))
		}
	}

	if len(widths) < 3 {
		t.Fatalf("expected a rendered table, got:\n%s", got)
	}

	for i := 1; i < len(widths); i++ {
		if widths[i] != widths[0] {
			t.Errorf("table rows unaligned:\n%s", got)
		}
	}
}

func TestRender_SampleLimit(t *testing.T) {
	stats := models.CleaningStats{
		TotalRecords: 5,
		RejectionReasons: map[string][]string{
			"A": {"r"}, "B": {"r"}, "C": {"r"}, "D": {"r"},
		},
	}

	got := Render(stats, nil, 2)

	if count := strings.Count(got, "- **"); count != 2 {
		t.Errorf("rejection samples = %d, want 2", count)
	}
}
