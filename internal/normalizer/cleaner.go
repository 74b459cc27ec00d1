// Package normalizer implements the course record cleaning pipeline:
// field cleaning, validation, deduplication and enrichment.
package normalizer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"caoclean/internal/config"
	"caoclean/internal/models"
)

// Cleaner normalizes raw, possibly missing or mistyped field values into
// canonical forms. All exported methods are pure functions of their input;
// default substitutions are reported through CleanCourse.
type Cleaner struct {
	cfg         *config.Config
	validLevels map[int]bool
	punct       *strings.Replacer
	whitespace  *regexp.Regexp
	disallowed  *regexp.Regexp
	caoCode     *regexp.Regexp
	nonAlnum    *regexp.Regexp
	number      *regexp.Regexp
}

// NewCleaner creates a cleaner using the given rule configuration.
func NewCleaner(cfg *config.Config) *Cleaner {
	validLevels := make(map[int]bool, len(cfg.Validation.ValidNFQLevels))
	for _, level := range cfg.Validation.ValidNFQLevels {
		validLevels[level] = true
	}

	return &Cleaner{
		cfg:         cfg,
		validLevels: validLevels,
		punct: strings.NewReplacer(
			" ", " ", // non-breaking space
			"‘", "'", // left single quotation mark
			"’", "'", // right single quotation mark
			"“", `"`, // left double quotation mark
			"”", `"`, // right double quotation mark
			"–", "-", // en dash
			"—", "-", // em dash
		),
		whitespace: regexp.MustCompile(`\s+`),
		disallowed: regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,()&/]`),
		caoCode:    regexp.MustCompile(`([A-Z]{2,4})(\d{3,4})`),
		nonAlnum:   regexp.MustCompile(`[^A-Z0-9]`),
		number:     regexp.MustCompile(`\d+`),
	}
}

// CleanText normalizes a free-text value: Unicode punctuation variants are
// replaced with ASCII equivalents, characters outside the safe allowlist are
// stripped, and whitespace runs collapse to single spaces. The result is
// stable under repeated cleaning.
func (c *Cleaner) CleanText(v any) string {
	text := strings.TrimSpace(toString(v))
	if text == "" {
		return ""
	}

	text = c.punct.Replace(text)
	text = c.disallowed.ReplaceAllString(text, "")
	text = c.whitespace.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// StandardizeCAOCode uppercases the value and extracts the first
// letters-plus-digits admission code (2-4 letters followed by 3-4 digits).
// When no such pattern exists the value is stripped to its alphanumeric
// characters, which may leave it empty.
func (c *Cleaner) StandardizeCAOCode(v any) string {
	code := strings.ToUpper(strings.TrimSpace(toString(v)))
	if code == "" {
		return ""
	}

	if m := c.caoCode.FindStringSubmatch(code); m != nil {
		return m[1] + m[2]
	}

	return c.nonAlnum.ReplaceAllString(code, "")
}

// CleanNFQLevel parses a qualification level, substituting the configured
// default for unparseable or out-of-set values.
func (c *Cleaner) CleanNFQLevel(v any) int {
	level, _ := c.nfqLevel(v)

	return level
}

func (c *Cleaner) nfqLevel(v any) (int, bool) {
	level, ok := toInt(v)
	if !ok || !c.validLevels[level] {
		return c.cfg.Cleaning.DefaultNFQLevel, true
	}

	return level, false
}

// CleanPoints parses an admission points value, coercing unparseable or
// out-of-range input to 0.
func (c *Cleaner) CleanPoints(v any) int {
	points, _ := c.points(v)

	return points
}

func (c *Cleaner) points(v any) (int, bool) {
	points, ok := toInt(v)
	if !ok {
		return 0, true
	}

	if points < 0 || points > c.cfg.Cleaning.MaxPoints {
		return 0, true
	}

	return points, false
}

// CleanCollegeID parses an institution identifier, substituting the sentinel
// default for unparseable or non-positive values.
func (c *Cleaner) CleanCollegeID(v any) int {
	id, _ := c.collegeID(v)

	return id
}

func (c *Cleaner) collegeID(v any) (int, bool) {
	id, ok := toInt(v)
	if !ok || id <= 0 {
		return c.cfg.Cleaning.DefaultCollegeID, true
	}

	return id, false
}

// durationUnits in the order they are probed. A value mentioning several
// units keeps the first one listed here.
var durationUnits = []string{"year", "month", "week"}

// StandardizeDuration renders a duration as "<n> <Unit>" (pluralized for
// n > 1) when the value mentions years, months or weeks alongside a number.
// Anything else is returned title-cased.
func (c *Cleaner) StandardizeDuration(v any) string {
	duration := strings.ToLower(strings.TrimSpace(toString(v)))
	if duration == "" {
		return ""
	}

	for _, unit := range durationUnits {
		if !strings.Contains(duration, unit) {
			continue
		}

		if m := c.number.FindString(duration); m != "" {
			n, err := strconv.Atoi(m)
			if err != nil {
				continue
			}

			plural := ""
			if n > 1 {
				plural = "s"
			}

			return fmt.Sprintf("%d %s%s%s", n, strings.ToUpper(unit[:1]), unit[1:], plural)
		}
	}

	return titleCase(duration)
}

// CleanCourse converts a raw record into a typed Course, applying every field
// cleaner. The returned slice names the fields that received a default value,
// for the statistics accumulator.
func (c *Cleaner) CleanCourse(raw models.RawCourse) (models.Course, []string) {
	var defaults []string

	course := models.Course{CreatedAt: time.Now()}

	if v, ok := raw.Field("name"); ok {
		course.Name = c.CleanText(v)
	}

	if v, ok := raw.Field("description"); ok {
		course.Description = c.CleanText(v)
	}

	if v, ok := raw.Field("duration"); ok {
		course.Duration = c.StandardizeDuration(c.CleanText(v))
	}

	if v, ok := raw.Field("entry_requirements", "entryRequirements"); ok {
		course.EntryRequirements = c.CleanText(v)
	}

	if v, ok := raw.Field("career_info", "careerInfo"); ok {
		course.CareerInfo = c.CleanText(v)
	}

	if v, ok := raw.Field("course_url", "courseUrl"); ok {
		course.CourseURL = strings.TrimSpace(toString(v))
	}

	if v, ok := raw.Field("cao_code", "caoCode"); ok {
		course.CAOCode = c.StandardizeCAOCode(v)
	}

	// An absent NFQ level stays zero so the validator can reject the record;
	// a present but malformed one degrades to the default.
	if v, ok := raw.Field("nfq_level", "nfqLevel"); ok {
		level, defaulted := c.nfqLevel(v)

		course.NFQLevel = level
		if defaulted {
			defaults = append(defaults, "nfq_level")
		}
	}

	if v, ok := raw.Field("points"); ok {
		points, defaulted := c.points(v)

		course.Points = points
		if defaulted {
			defaults = append(defaults, "points")
		}
	}

	if v, ok := raw.Field("college_id", "collegeId"); ok {
		id, defaulted := c.collegeID(v)

		course.CollegeID = id
		if defaulted {
			defaults = append(defaults, "college_id")
		}
	} else {
		course.CollegeID = c.cfg.Cleaning.DefaultCollegeID
		defaults = append(defaults, "college_id")
	}

	return course, defaults
}

// titleCase uppercases every letter that follows a non-letter, matching the
// legacy dataset's casing for unrecognized durations ("full-time" becomes
// "Full-Time").
func titleCase(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	prevLetter := false

	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))

			prevLetter = true
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)

			prevLetter = false
		}
	}

	return b.String()
}

// toString renders a loose value as a string; nil becomes "".
func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == math.Trunc(s) {
			return strconv.Itoa(int(s))
		}

		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// toInt parses a loose value as an integer. JSON numbers arrive as float64
// and are accepted when integral.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}

		return 0, false
	case float32:
		if float64(n) == math.Trunc(float64(n)) {
			return int(n), true
		}

		return 0, false
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}

		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}

		return i, true
	default:
		return 0, false
	}
}
