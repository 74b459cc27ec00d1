package normalizer

import (
	"caoclean/internal/config"
	"caoclean/internal/logger"
	"caoclean/internal/models"
	"caoclean/pkg/utils"
)

// rejectionKeyLen bounds the course-name keys in the rejection-reason map.
const rejectionKeyLen = 50

// Processor runs the full cleaning pipeline over one batch of raw records:
// clean, validate, deduplicate, enrich. Statistics and the deduplication
// state are scoped to the instance; construct a fresh Processor per batch.
type Processor struct {
	log       *logger.Logger
	cleaner   *Cleaner
	validator *Validator
	dedup     *Deduplicator
	enricher  *Enricher
	strings   *utils.StringHelper
	stats     models.CleaningStats
	sample    int
}

// NewProcessor creates a processor for a single batch.
func NewProcessor(cfg *config.Config, log *logger.Logger) *Processor {
	return &Processor{
		log:       log,
		cleaner:   NewCleaner(cfg),
		validator: NewValidator(cfg),
		dedup:     NewDeduplicator(),
		enricher:  NewEnricher(cfg),
		strings:   utils.NewStringHelper(),
		stats:     models.NewCleaningStats(),
		sample:    cfg.Logging.SampleRejections,
	}
}

// CleanCourseData transforms a batch of raw records into cleaned, validated,
// deduplicated and enriched courses, in first-seen order. No input degrades
// the batch: malformed fields get defaults, inadmissible records are dropped
// and counted. The batch always completes.
func (p *Processor) CleanCourseData(rawCourses []models.RawCourse) ([]models.Course, models.CleaningStats) {
	p.log.Info("starting data cleaning", "records", len(rawCourses))

	p.stats.TotalRecords = len(rawCourses)

	valid := make([]models.Course, 0, len(rawCourses))

	for _, raw := range rawCourses {
		course, defaults := p.cleaner.CleanCourse(raw)

		for _, field := range defaults {
			p.stats.DefaultsApplied[field]++
		}

		if reasons := p.validator.Validate(course); len(reasons) > 0 {
			key := p.rejectionKey(course.Name)
			p.stats.RejectionReasons[key] = reasons

			p.log.Debug("validation failed", "course", key, "reasons", reasons)

			continue
		}

		valid = append(valid, course)
	}

	unique, duplicates := p.dedup.Deduplicate(valid)
	p.stats.DuplicatesRemoved = duplicates

	p.log.Info("removed duplicate records", "duplicates", duplicates)

	cleaned := make([]models.Course, 0, len(unique))
	for _, course := range unique {
		cleaned = append(cleaned, p.enricher.Enrich(course))
	}

	p.stats.ValidRecords = len(cleaned)

	p.log.Info("data cleaning completed",
		"valid", p.stats.ValidRecords,
		"total", p.stats.TotalRecords,
	)
	p.LogStats()

	return cleaned, p.stats
}

// Stats returns the statistics accumulated so far.
func (p *Processor) Stats() models.CleaningStats {
	return p.stats
}

// LogStats reports the aggregate statistics for the batch, sampling a few
// rejection reasons at debug level.
func (p *Processor) LogStats() {
	p.log.Info("cleaning statistics",
		"total", p.stats.TotalRecords,
		"valid", p.stats.ValidRecords,
		"duplicates", p.stats.DuplicatesRemoved,
		"successRate", p.stats.SuccessRate(),
	)

	for field, count := range p.stats.DefaultsApplied {
		p.log.Info("defaults applied", "field", field, "count", count)
	}

	if len(p.stats.RejectionReasons) == 0 {
		return
	}

	p.log.Warn("records failed validation", "count", len(p.stats.RejectionReasons))

	logged := 0

	for course, reasons := range p.stats.RejectionReasons {
		if logged >= p.sample {
			break
		}

		p.log.Debug("rejected record", "course", course, "reasons", reasons)

		logged++
	}
}

// rejectionKey derives a stable stats key from a course name.
func (p *Processor) rejectionKey(name string) string {
	if name == "" {
		return "Unknown"
	}

	return p.strings.Truncate(name, rejectionKeyLen)
}
