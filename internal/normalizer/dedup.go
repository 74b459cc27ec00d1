package normalizer

import (
	"strings"

	"caoclean/internal/models"
)

// DedupKey returns the identity used to decide two records describe the same
// course. Records with the same name but different non-empty CAO codes stay
// distinct; records with the same name and no CAO code collapse. That
// asymmetry matches the source dataset and changing it changes output
// cardinality.
func DedupKey(course models.Course) string {
	name := strings.ToLower(strings.TrimSpace(course.Name))

	if code := strings.TrimSpace(course.CAOCode); code != "" {
		return name + "|" + code
	}

	return name
}

// Deduplicator removes repeated records in a single linear pass, keeping the
// first occurrence. The seen-set is scoped to one batch; use a fresh instance
// per invocation.
type Deduplicator struct {
	seen map[string]bool
}

// NewDeduplicator creates a deduplicator with an empty seen-set.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{
		seen: make(map[string]bool),
	}
}

// Deduplicate returns the duplicate-free subsequence in first-seen order and
// the number of records dropped.
func (d *Deduplicator) Deduplicate(courses []models.Course) ([]models.Course, int) {
	unique := make([]models.Course, 0, len(courses))
	duplicates := 0

	for _, course := range courses {
		key := DedupKey(course)

		if key == "" || d.seen[key] {
			duplicates++

			continue
		}

		d.seen[key] = true

		unique = append(unique, course)
	}

	return unique, duplicates
}
