package normalizer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"

	"caoclean/internal/config"
	"caoclean/internal/models"
)

// Minimum token lengths for keyword extraction. Name tokens are shorter to
// keep degree abbreviations ("msc", "beng").
const (
	minNameTokenLen        = 3
	minDescriptionTokenLen = 4
)

// Enricher derives fields that improve downstream searchability: a backfilled
// CAO code, category tags and a keyword index. It runs after deduplication so
// it never works on records that will be dropped.
type Enricher struct {
	cfg       config.EnrichmentConfig
	stopWords map[string]bool
	nameCode  *regexp.Regexp
}

// NewEnricher creates an enricher using the given configuration.
func NewEnricher(cfg *config.Config) *Enricher {
	stopWords := make(map[string]bool, len(cfg.Enrichment.StopWords))
	for _, word := range cfg.Enrichment.StopWords {
		stopWords[word] = true
	}

	return &Enricher{
		cfg:       cfg.Enrichment,
		stopWords: stopWords,
		nameCode:  regexp.MustCompile(`\b([A-Z]{2,4}\d{3,4})\b`),
	}
}

// Enrich returns a copy of the course with derived fields populated.
func (e *Enricher) Enrich(course models.Course) models.Course {
	if course.CAOCode == "" {
		course.CAOCode = e.ExtractCAOCodeFromName(course.Name)
	}

	tags := e.AssignTags(course.Name, course.Description)
	course.Tags = strings.Join(tags, ", ")
	course.Keywords = strings.Join(e.GenerateKeywords(course.Name, course.Description, tags), ", ")

	return course
}

// ExtractCAOCodeFromName searches a course name for an embedded admission
// code ("Computer Science DN201"). Returns "" when none is found.
func (e *Enricher) ExtractCAOCodeFromName(name string) string {
	if name == "" {
		return ""
	}

	if m := e.nameCode.FindStringSubmatch(strings.ToUpper(name)); m != nil {
		return m[1]
	}

	return ""
}

// AssignTags scans the name and description for category keyword matches and
// returns the sorted set of matching categories, or the default tag when
// nothing matches.
func (e *Enricher) AssignTags(name, description string) []string {
	content := strings.ToLower(name + " " + description)

	var tags []string

	for category, keywords := range e.cfg.Categories {
		for _, keyword := range keywords {
			if strings.Contains(content, keyword) {
				tags = append(tags, category)

				break
			}
		}
	}

	if len(tags) == 0 {
		return []string{e.cfg.DefaultTag}
	}

	sort.Strings(tags)

	return tags
}

// GenerateKeywords builds a sorted keyword set from name tokens, description
// tokens and the assigned tags, minus the configured stop words. A plain
// bag-of-words: no stemming, no frequency weighting.
func (e *Enricher) GenerateKeywords(name, description string, tags []string) []string {
	set := make(map[string]bool)

	for _, token := range tokenize(name) {
		if utf8.RuneCountInString(token) >= minNameTokenLen {
			set[strings.ToLower(token)] = true
		}
	}

	for _, token := range tokenize(description) {
		if utf8.RuneCountInString(token) >= minDescriptionTokenLen {
			set[strings.ToLower(token)] = true
		}
	}

	for _, tag := range tags {
		set[strings.ToLower(tag)] = true
	}

	keywords := make([]string, 0, len(set))

	for word := range set {
		if !e.stopWords[word] {
			keywords = append(keywords, word)
		}
	}

	sort.Strings(keywords)

	return keywords
}

// tokenize segments text into word tokens, dropping segments that carry no
// letter or digit (punctuation, spaces).
func tokenize(text string) []string {
	var tokens []string

	segments := words.FromString(text)
	for segments.Next() {
		token := segments.Value()
		if !isWordToken(token) {
			continue
		}

		tokens = append(tokens, token)
	}

	return tokens
}

func isWordToken(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
