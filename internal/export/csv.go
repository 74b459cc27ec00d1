package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"caoclean/internal/models"
)

// csvColumns is the column order of the legacy course dataset.
var csvColumns = []string{
	"name", "cao_code", "tags", "nfq_level", "duration",
	"description", "course_url", "points", "entry_requirements",
	"career_info", "keywords", "college_id", "created_at",
}

// CSVWriter writes courses as delimited tabular data.
type CSVWriter struct{}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write serializes the courses to path, creating parent directories. The
// header row always carries the full legacy column set.
func (w *CSVWriter) Write(path string, courses []models.Course) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, course := range courses {
		if err := writer.Write(csvRow(course)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func csvRow(course models.Course) []string {
	return []string{
		course.Name,
		course.CAOCode,
		course.Tags,
		strconv.Itoa(course.NFQLevel),
		course.Duration,
		course.Description,
		course.CourseURL,
		strconv.Itoa(course.Points),
		course.EntryRequirements,
		course.CareerInfo,
		course.Keywords,
		strconv.Itoa(course.CollegeID),
		course.CreatedAt.Format(time.RFC3339),
	}
}
