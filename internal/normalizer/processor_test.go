package normalizer

import (
	"io"
	"strings"
	"testing"

	"caoclean/internal/config"
	"caoclean/internal/logger"
	"caoclean/internal/models"
)

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()

	return NewProcessor(config.DefaultConfig(), logger.NewLoggerWithWriter("error", io.Discard))
}

func TestNewProcessor(t *testing.T) {
	p := newTestProcessor(t)
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_CleanCourseData_ExactDuplicates(t *testing.T) {
	p := newTestProcessor(t)

	raw := []models.RawCourse{
		{"name": "BEng in Computer Engineering", "cao_code": "", "nfq_level": "8", "points": "450"},
		{"name": "BEng in Computer Engineering", "cao_code": "", "nfq_level": 8, "points": 450},
	}

	cleaned, stats := p.CleanCourseData(raw)

	if len(cleaned) != 1 {
		t.Fatalf("got %d records, want 1", len(cleaned))
	}

	course := cleaned[0]

	if course.Tags != "STEM" {
		t.Errorf("Tags = %q, want STEM", course.Tags)
	}

	if course.CAOCode != "" {
		t.Errorf("CAOCode = %q, want empty (no code in name)", course.CAOCode)
	}

	if course.Points != 450 {
		t.Errorf("Points = %d, want 450", course.Points)
	}

	if stats.TotalRecords != 2 {
		t.Errorf("TotalRecords = %d, want 2", stats.TotalRecords)
	}

	if stats.ValidRecords != 1 {
		t.Errorf("ValidRecords = %d, want 1", stats.ValidRecords)
	}

	if stats.DuplicatesRemoved != 1 {
		t.Errorf("DuplicatesRemoved = %d, want 1", stats.DuplicatesRemoved)
	}
}

func TestProcessor_CleanCourseData_RejectsShortName(t *testing.T) {
	p := newTestProcessor(t)

	cleaned, stats := p.CleanCourseData([]models.RawCourse{
		{"name": "Hi", "nfq_level": 8},
	})

	if len(cleaned) != 0 {
		t.Fatalf("got %d records, want 0", len(cleaned))
	}

	reasons, ok := stats.RejectionReasons["Hi"]
	if !ok {
		t.Fatalf("RejectionReasons = %v, want entry for Hi", stats.RejectionReasons)
	}

	found := false

	for _, reason := range reasons {
		if strings.Contains(reason, "too short") {
			found = true

			break
		}
	}

	if !found {
		t.Errorf("reasons = %v, want a too-short reason", reasons)
	}
}

func TestProcessor_CleanCourseData_BusinessCourse(t *testing.T) {
	p := newTestProcessor(t)

	cleaned, _ := p.CleanCourseData([]models.RawCourse{
		{
			"name":        "MSc in Accounting",
			"description": "finance and management",
			"nfq_level":   "9",
		},
	})

	if len(cleaned) != 1 {
		t.Fatalf("got %d records, want 1", len(cleaned))
	}

	course := cleaned[0]

	if course.Tags != "Business" {
		t.Errorf("Tags = %q, want Business", course.Tags)
	}

	if course.NFQLevel != 9 {
		t.Errorf("NFQLevel = %d, want 9", course.NFQLevel)
	}

	joined := "," + course.Keywords + ","

	for _, want := range []string{"accounting", "finance", "management"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Keywords = %q, want to contain %q", course.Keywords, want)
		}
	}

	if strings.Contains(joined, ",and,") || strings.Contains(joined, ", and,") {
		t.Errorf("Keywords = %q, must not contain the stop word \"and\"", course.Keywords)
	}
}

func TestProcessor_CleanCourseData_EmptyBatch(t *testing.T) {
	p := newTestProcessor(t)

	cleaned, stats := p.CleanCourseData([]models.RawCourse{})

	// An empty batch is a valid, non-error outcome.
	if len(cleaned) != 0 {
		t.Errorf("got %d records, want 0", len(cleaned))
	}

	if stats.TotalRecords != 0 || stats.ValidRecords != 0 {
		t.Errorf("stats = %+v, want zero counts", stats)
	}
}

func TestProcessor_CleanCourseData_MalformedRecordsDegradeGracefully(t *testing.T) {
	p := newTestProcessor(t)

	raw := []models.RawCourse{
		{"name": 42, "nfq_level": []any{"weird"}},
		{"points": "450"},
		{"name": "Valid Science Course", "nfq_level": "8"},
	}

	cleaned, stats := p.CleanCourseData(raw)

	// The batch completes; only the malformed records are dropped.
	if len(cleaned) != 1 {
		t.Fatalf("got %d records, want 1", len(cleaned))
	}

	if cleaned[0].Name != "Valid Science Course" {
		t.Errorf("Name = %q", cleaned[0].Name)
	}

	if stats.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", stats.TotalRecords)
	}
}

func TestProcessor_CleanCourseData_CountsDefaults(t *testing.T) {
	p := newTestProcessor(t)

	_, stats := p.CleanCourseData([]models.RawCourse{
		{"name": "Engineering Course", "nfq_level": "not a number", "points": 9999},
		{"name": "Science Course", "nfq_level": 8},
	})

	if stats.DefaultsApplied["nfq_level"] != 1 {
		t.Errorf("nfq_level defaults = %d, want 1", stats.DefaultsApplied["nfq_level"])
	}

	if stats.DefaultsApplied["points"] != 1 {
		t.Errorf("points defaults = %d, want 1", stats.DefaultsApplied["points"])
	}

	if stats.DefaultsApplied["college_id"] != 2 {
		t.Errorf("college_id defaults = %d, want 2", stats.DefaultsApplied["college_id"])
	}
}

func TestProcessor_CleanCourseData_FirstSeenOrder(t *testing.T) {
	p := newTestProcessor(t)

	cleaned, _ := p.CleanCourseData([]models.RawCourse{
		{"name": "Zoology", "nfq_level": 8},
		{"name": "Astronomy", "nfq_level": 8},
		{"name": "Zoology", "nfq_level": 8},
	})

	if len(cleaned) != 2 {
		t.Fatalf("got %d records, want 2", len(cleaned))
	}

	if cleaned[0].Name != "Zoology" || cleaned[1].Name != "Astronomy" {
		t.Errorf("order = [%s, %s], want [Zoology, Astronomy]", cleaned[0].Name, cleaned[1].Name)
	}
}
