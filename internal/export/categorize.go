package export

import (
	"strings"

	"caoclean/internal/models"
)

// categoryBuckets maps a tag substring to its output bucket, probed in order;
// a course lands in the first bucket whose tag it carries.
var categoryBuckets = []struct {
	tag    string
	bucket string
}{
	{"stem", "stem_courses"},
	{"business", "business_courses"},
	{"arts", "arts_courses"},
	{"health", "health_courses"},
	{"education", "education_courses"},
}

// GeneralBucket collects courses matching no category.
const GeneralBucket = "general_courses"

// Categorize splits courses into per-category buckets by their first matching
// tag, for per-category output files.
func Categorize(courses []models.Course) map[string][]models.Course {
	categorized := make(map[string][]models.Course)

	for _, course := range courses {
		tags := strings.ToLower(course.Tags)
		bucket := GeneralBucket

		for _, c := range categoryBuckets {
			if strings.Contains(tags, c.tag) {
				bucket = c.bucket

				break
			}
		}

		categorized[bucket] = append(categorized[bucket], course)
	}

	return categorized
}
