// Package config provides configuration management for the course cleaner.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoRequiredFields     = errors.New("validation.required_fields must not be empty")
	ErrUnknownRequiredField = errors.New("validation.required_fields contains an unknown field")
	ErrInvalidMinNameLength = errors.New("validation.min_name_length must be at least 1")
	ErrInvalidMaxNameLength = errors.New("validation.max_name_length must be at least 1")
	ErrMinExceedsMax        = errors.New("validation.min_name_length cannot exceed validation.max_name_length")
	ErrNoValidNFQLevels     = errors.New("validation.valid_nfq_levels must not be empty")
	ErrDefaultNFQNotValid   = errors.New("cleaning.default_nfq_level must be one of validation.valid_nfq_levels")
	ErrInvalidMaxPoints     = errors.New("cleaning.max_points must be at least 1")
	ErrInvalidCollegeID     = errors.New("cleaning.default_college_id must be positive")
	ErrNoCategories         = errors.New("enrichment.categories must not be empty")
	ErrCategoryNoKeywords   = errors.New("category must have at least one keyword")
	ErrMissingDefaultTag    = errors.New("enrichment.default_tag is required")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidOutputFormat  = errors.New("output.format must be 'json' or 'csv'")
)

// knownFields lists the record fields a required-fields rule may reference.
var knownFields = map[string]bool{
	"name":        true,
	"cao_code":    true,
	"description": true,
	"nfq_level":   true,
	"duration":    true,
	"points":      true,
	"college_id":  true,
	"course_url":  true,
}

// Config represents the complete cleaner configuration.
type Config struct {
	Validation ValidationConfig `yaml:"validation"`
	Cleaning   CleaningConfig   `yaml:"cleaning"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Logging    LoggingConfig    `yaml:"logging"`
	Output     OutputConfig     `yaml:"output"`
}

// ValidationConfig defines the rules a cleaned record must satisfy.
type ValidationConfig struct {
	RequiredFields []string `yaml:"required_fields"`
	InvalidNames   []string `yaml:"invalid_names"`
	ValidNFQLevels []int    `yaml:"valid_nfq_levels"`
	MinNameLength  int      `yaml:"min_name_length"`
	MaxNameLength  int      `yaml:"max_name_length"`
}

// HasNFQLevel reports whether level belongs to the valid NFQ set.
func (v *ValidationConfig) HasNFQLevel(level int) bool {
	for _, valid := range v.ValidNFQLevels {
		if level == valid {
			return true
		}
	}

	return false
}

// CleaningConfig defines the defaults substituted for malformed field values.
type CleaningConfig struct {
	DefaultNFQLevel  int `yaml:"default_nfq_level"`
	MaxPoints        int `yaml:"max_points"`
	DefaultCollegeID int `yaml:"default_college_id"`
}

// EnrichmentConfig defines tag categories and keyword extraction behavior.
type EnrichmentConfig struct {
	Categories map[string][]string `yaml:"categories"`
	StopWords  []string            `yaml:"stop_words"`
	DefaultTag string              `yaml:"default_tag"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level            string `yaml:"level"`
	SampleRejections int    `yaml:"sample_rejections"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	BasePath    string `yaml:"base_path"`
	Format      string `yaml:"format"`
	PrettyPrint bool   `yaml:"pretty_print"`
	SplitByTag  bool   `yaml:"split_by_tag"`
}

// DefaultConfig returns the built-in rule set. These are the values the
// cleaner ships with; a YAML file overrides them selectively.
func DefaultConfig() *Config {
	return &Config{
		Validation: ValidationConfig{
			RequiredFields: []string{"name", "nfq_level"},
			InvalidNames: []string{
				"about us", "contact us", "help", "privacy",
				"cookie", "accessibility", "terms",
			},
			ValidNFQLevels: []int{5, 6, 7, 8, 9, 10},
			MinNameLength:  3,
			MaxNameLength:  200,
		},
		Cleaning: CleaningConfig{
			DefaultNFQLevel:  8,
			MaxPoints:        625,
			DefaultCollegeID: 1,
		},
		Enrichment: EnrichmentConfig{
			Categories: map[string][]string{
				"STEM": {
					"engineer", "computer", "science", "technology", "math",
					"physics", "chemistry", "biology", "data",
				},
				"Business": {
					"business", "management", "accounting", "finance",
					"marketing", "economics",
				},
				"Arts": {
					"art", "design", "music", "creative", "media", "film",
					"drama", "literature",
				},
				"Health": {
					"health", "medicine", "nursing", "therapy", "medical", "care",
				},
				"Education": {
					"education", "teaching", "early learning", "childcare",
				},
			},
			StopWords: []string{
				"the", "and", "for", "are", "with", "this", "that",
				"course", "programme", "program",
			},
			DefaultTag: "General",
		},
		Logging: LoggingConfig{
			Level:            "info",
			SampleRejections: 5,
		},
		Output: OutputConfig{
			BasePath:    "data/output",
			Format:      "json",
			PrettyPrint: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file. The file is applied on top
// of DefaultConfig, so partial configurations are valid.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	// Validation rules
	if len(c.Validation.RequiredFields) == 0 {
		return ErrNoRequiredFields
	}

	for _, field := range c.Validation.RequiredFields {
		if !knownFields[field] {
			return fmt.Errorf("%w: %q", ErrUnknownRequiredField, field)
		}
	}

	if c.Validation.MinNameLength < 1 {
		return ErrInvalidMinNameLength
	}

	if c.Validation.MaxNameLength < 1 {
		return ErrInvalidMaxNameLength
	}

	if c.Validation.MinNameLength > c.Validation.MaxNameLength {
		return ErrMinExceedsMax
	}

	if len(c.Validation.ValidNFQLevels) == 0 {
		return ErrNoValidNFQLevels
	}

	// Cleaning defaults
	if !c.Validation.HasNFQLevel(c.Cleaning.DefaultNFQLevel) {
		return ErrDefaultNFQNotValid
	}

	if c.Cleaning.MaxPoints < 1 {
		return ErrInvalidMaxPoints
	}

	if c.Cleaning.DefaultCollegeID <= 0 {
		return ErrInvalidCollegeID
	}

	// Enrichment rules
	if len(c.Enrichment.Categories) == 0 {
		return ErrNoCategories
	}

	for name, keywords := range c.Enrichment.Categories {
		if len(keywords) == 0 {
			return fmt.Errorf("%w: %q", ErrCategoryNoKeywords, name)
		}
	}

	if c.Enrichment.DefaultTag == "" {
		return ErrMissingDefaultTag
	}

	// Logging config
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	// Output config
	if c.Output.Format != "json" && c.Output.Format != "csv" {
		return ErrInvalidOutputFormat
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{RequiredFields: %d, NFQLevels: %d, Categories: %d, Output: %s}",
		len(c.Validation.RequiredFields),
		len(c.Validation.ValidNFQLevels),
		len(c.Enrichment.Categories),
		c.Output.BasePath,
	)
}
