package normalizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"caoclean/internal/config"
	"caoclean/internal/models"
)

// Validator decides whether a cleaned record is admissible. Validation is
// advisory filtering: failures are reported as reasons, never as errors, and
// a record may fail several rules at once.
type Validator struct {
	cfg config.ValidationConfig
}

// NewValidator creates a validator using the given rule configuration.
func NewValidator(cfg *config.Config) *Validator {
	return &Validator{cfg: cfg.Validation}
}

// Validate checks a cleaned course against every rule independently and
// returns the list of violated rules. An empty result means the record is
// admissible.
func (v *Validator) Validate(course models.Course) []string {
	var reasons []string

	for _, field := range v.cfg.RequiredFields {
		if !fieldPresent(course, field) {
			reasons = append(reasons, fmt.Sprintf("missing required field: %s", field))
		}
	}

	nameLen := utf8.RuneCountInString(course.Name)

	if course.Name != "" && nameLen > v.cfg.MaxNameLength {
		reasons = append(reasons, fmt.Sprintf("course name too long: %d chars", nameLen))
	}

	if nameLen < v.cfg.MinNameLength {
		reasons = append(reasons, fmt.Sprintf("course name too short: %d chars", nameLen))
	}

	// Nav and footer links scraped as courses ("Contact Us", "Privacy", ...)
	// are filtered on name substrings.
	if course.Name != "" {
		lower := strings.ToLower(course.Name)

		for _, invalid := range v.cfg.InvalidNames {
			if strings.Contains(lower, invalid) {
				reasons = append(reasons, "not a course entry (system page)")

				break
			}
		}
	}

	// Redundant with the cleaner's defaulting, but kept as an independent
	// assertion for records that bypass cleaning.
	if !v.cfg.HasNFQLevel(course.NFQLevel) {
		reasons = append(reasons, fmt.Sprintf("invalid NFQ level: %d", course.NFQLevel))
	}

	return reasons
}

// fieldPresent reports whether a configured required field carries a value.
// Field names use the snake_case spelling config validation accepts.
func fieldPresent(course models.Course, field string) bool {
	switch field {
	case "name":
		return course.Name != ""
	case "cao_code":
		return course.CAOCode != ""
	case "description":
		return course.Description != ""
	case "nfq_level":
		return course.NFQLevel != 0
	case "duration":
		return course.Duration != ""
	case "points":
		return course.Points != 0
	case "college_id":
		return course.CollegeID != 0
	case "course_url":
		return course.CourseURL != ""
	default:
		return false
	}
}
