package models

// CleaningStats accumulates summary statistics for one pipeline invocation.
// RejectionReasons is keyed by the course name truncated to 50 characters;
// DefaultsApplied counts default substitutions per field so data-quality
// regressions in the upstream collectors stay visible.
type CleaningStats struct {
	RejectionReasons  map[string][]string `json:"rejectionReasons"`
	DefaultsApplied   map[string]int      `json:"defaultsApplied"`
	TotalRecords      int                 `json:"totalRecords"`
	ValidRecords      int                 `json:"validRecords"`
	DuplicatesRemoved int                 `json:"duplicatesRemoved"`
}

// NewCleaningStats creates an empty statistics structure.
func NewCleaningStats() CleaningStats {
	return CleaningStats{
		RejectionReasons: make(map[string][]string),
		DefaultsApplied:  make(map[string]int),
	}
}

// SuccessRate returns the share of input records that survived cleaning, in
// percent. A zero-record batch has a success rate of 0.
func (s CleaningStats) SuccessRate() float64 {
	if s.TotalRecords == 0 {
		return 0
	}

	return float64(s.ValidRecords) / float64(s.TotalRecords) * 100
}
