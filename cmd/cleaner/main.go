// Package main provides the cleaner command-line tool for normalizing raw
// scraped course records.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"

	"caoclean/internal/config"
	"caoclean/internal/export"
	"caoclean/internal/logger"
	"caoclean/internal/models"
	"caoclean/internal/normalizer"
	"caoclean/internal/report"
	"caoclean/internal/storage"
)

func main() {
	inputPath := flag.String("input", "", "Path to raw course JSON file (array of records)")
	configPath := flag.String("config", "", "Path to YAML configuration file (optional)")
	outputPath := flag.String("output", "", "Path to cleaned output file")
	format := flag.String("format", "", "Output format: json or csv (overrides config)")
	split := flag.Bool("split", false, "Also write per-category CSV files next to the output")
	reportPath := flag.String("report", "", "Path to markdown statistics report (optional)")
	dsn := flag.String("dsn", "", "Postgres DSN to persist cleaned courses (optional)")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Println("Usage: cleaner -input <raw.json> -output <cleaned.json|csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)

	if *format != "" {
		cfg.Output.Format = *format
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v\n", err)
	}

	logg := logger.NewLogger(cfg.Logging.Level)

	// Read the raw batch. A file that is not a JSON array of records is the
	// only fatal input condition; an empty batch is a valid zero-output run.
	content, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("❌ Error reading input: %v\n", err)
	}

	fmt.Printf("📂 Reading: %s (%d bytes)\n", *inputPath, len(content))

	var rawCourses []models.RawCourse
	if err := json.Unmarshal(content, &rawCourses); err != nil {
		log.Fatalf("❌ Input is not a JSON array of records: %v\n", err)
	}

	processor := normalizer.NewProcessor(cfg, logg)
	cleaned, stats := processor.CleanCourseData(rawCourses)

	fmt.Printf("📊 Cleaned: %d valid of %d records, %d duplicates removed\n",
		stats.ValidRecords, stats.TotalRecords, stats.DuplicatesRemoved)

	writeOutput(cfg, *outputPath, cleaned)

	categorized := export.Categorize(cleaned)

	if *split || cfg.Output.SplitByTag {
		writeCategoryFiles(*outputPath, categorized)
	}

	if *reportPath != "" {
		content := report.Render(stats, categorized, cfg.Logging.SampleRejections)

		if err := os.WriteFile(*reportPath, []byte(content), 0644); err != nil {
			log.Fatalf("❌ Error writing report: %v\n", err)
		}

		fmt.Printf("📝 Report saved to: %s\n", *reportPath)
	}

	if *dsn != "" {
		saveToDatabase(*dsn, cleaned)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}

func loadConfig(configPath string) *config.Config {
	if configPath == "" {
		fmt.Println("⚙️  Using built-in default configuration")

		return config.DefaultConfig()
	}

	fmt.Printf("⚙️  Loading configuration from: %s\n", configPath)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v\n", err)
	}

	fmt.Printf("✅ Configuration loaded: %s\n", cfg)

	return cfg
}

func writeOutput(cfg *config.Config, outputPath string, cleaned []models.Course) {
	switch cfg.Output.Format {
	case "csv":
		if err := export.NewCSVWriter().Write(outputPath, cleaned); err != nil {
			log.Fatalf("❌ Error writing CSV: %v\n", err)
		}
	default:
		if err := export.NewJSONWriter(cfg.Output.PrettyPrint).Write(outputPath, cleaned); err != nil {
			log.Fatalf("❌ Error writing JSON: %v\n", err)
		}
	}
}

func writeCategoryFiles(outputPath string, categorized map[string][]models.Course) {
	dir := filepath.Dir(outputPath)
	timestamp := time.Now().Format("20060102_150405")
	writer := export.NewCSVWriter()

	for bucket, courses := range categorized {
		if len(courses) == 0 {
			continue
		}

		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", bucket, timestamp))

		if err := writer.Write(path, courses); err != nil {
			log.Fatalf("❌ Error writing %s: %v\n", path, err)
		}

		fmt.Printf("📁 Generated %s: %d courses\n", path, len(courses))
	}
}

func saveToDatabase(dsn string, cleaned []models.Course) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("❌ Error opening database: %v\n", err)
	}
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	saved, err := repo.SaveCourses(context.Background(), cleaned)
	if err != nil {
		log.Fatalf("❌ Error saving courses: %v\n", err)
	}

	fmt.Printf("💾 Persisted %d courses\n", saved)
}
