package normalizer

import (
	"testing"

	"caoclean/internal/models"
)

func TestDedupKey(t *testing.T) {
	tests := []struct {
		name   string
		course models.Course
		want   string
	}{
		{
			name:   "Name with code",
			course: models.Course{Name: "BSc Computing", CAOCode: "DN201"},
			want:   "bsc computing|DN201",
		},
		{
			name:   "Name without code",
			course: models.Course{Name: "BSc Computing"},
			want:   "bsc computing",
		},
		{
			name:   "Empty record",
			course: models.Course{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupKey(tt.course)
			if got != tt.want {
				t.Errorf("DedupKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeduplicator_FirstSeenWins(t *testing.T) {
	d := NewDeduplicator()

	first := models.Course{Name: "BSc Computing", CAOCode: "DN201", Points: 500}
	second := models.Course{Name: "bsc computing", CAOCode: "DN201", Points: 400}

	unique, duplicates := d.Deduplicate([]models.Course{first, second})

	if len(unique) != 1 {
		t.Fatalf("got %d records, want 1", len(unique))
	}

	if duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", duplicates)
	}

	// The surviving record is the first occurrence.
	if unique[0].Points != 500 {
		t.Errorf("kept Points = %d, want 500 (first occurrence)", unique[0].Points)
	}
}

func TestDeduplicator_AsymmetricCodePolicy(t *testing.T) {
	d := NewDeduplicator()

	courses := []models.Course{
		// Same name, different non-empty codes: distinct courses.
		{Name: "General Nursing", CAOCode: "DN450"},
		{Name: "General Nursing", CAOCode: "GY515"},
		// Same name, both without a code: duplicates.
		{Name: "Business Studies"},
		{Name: "Business Studies"},
		// Coded and uncoded records with the same name stay distinct.
		{Name: "Arts", CAOCode: "TR001"},
		{Name: "Arts"},
	}

	unique, duplicates := d.Deduplicate(courses)

	if len(unique) != 5 {
		t.Fatalf("got %d records, want 5", len(unique))
	}

	if duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", duplicates)
	}
}

func TestDeduplicator_PreservesOrder(t *testing.T) {
	d := NewDeduplicator()

	courses := []models.Course{
		{Name: "Course C"},
		{Name: "Course A"},
		{Name: "Course C"},
		{Name: "Course B"},
	}

	unique, _ := d.Deduplicate(courses)

	want := []string{"Course C", "Course A", "Course B"}
	if len(unique) != len(want) {
		t.Fatalf("got %d records, want %d", len(unique), len(want))
	}

	for i, name := range want {
		if unique[i].Name != name {
			t.Errorf("unique[%d].Name = %q, want %q", i, unique[i].Name, name)
		}
	}
}
