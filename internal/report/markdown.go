// Package report renders cleaning statistics as a markdown summary.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"caoclean/internal/models"
)

// Render produces a markdown report for one cleaning run: overall counts,
// per-category breakdown, default substitutions and a sample of rejection
// reasons (up to sampleLimit entries).
func Render(stats models.CleaningStats, categorized map[string][]models.Course, sampleLimit int) string {
	var lines []string

	lines = append(lines,
		"# Course Data Cleaning Summary",
		"",
		fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")),
		"",
		"## Results",
		"",
	)

	lines = append(lines, renderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Total records", strconv.Itoa(stats.TotalRecords)},
			{"Valid records", strconv.Itoa(stats.ValidRecords)},
			{"Duplicates removed", strconv.Itoa(stats.DuplicatesRemoved)},
			{"Success rate", fmt.Sprintf("%.1f%%", stats.SuccessRate())},
		},
	)...)

	if len(categorized) > 0 {
		lines = append(lines, "", "## Category breakdown", "")
		lines = append(lines, renderTable([]string{"Category", "Courses"}, categoryRows(categorized))...)
	}

	if len(stats.DefaultsApplied) > 0 {
		lines = append(lines, "", "## Defaults applied", "")
		lines = append(lines, renderTable([]string{"Field", "Count"}, defaultRows(stats.DefaultsApplied))...)
	}

	if len(stats.RejectionReasons) > 0 {
		lines = append(lines, "", fmt.Sprintf("## Rejected records (%d)", len(stats.RejectionReasons)), "")
		lines = append(lines, rejectionLines(stats.RejectionReasons, sampleLimit)...)
	}

	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func categoryRows(categorized map[string][]models.Course) [][]string {
	buckets := make([]string, 0, len(categorized))
	for bucket := range categorized {
		buckets = append(buckets, bucket)
	}

	sort.Strings(buckets)

	rows := make([][]string, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, []string{bucket, strconv.Itoa(len(categorized[bucket]))})
	}

	return rows
}

func defaultRows(defaults map[string]int) [][]string {
	fields := make([]string, 0, len(defaults))
	for field := range defaults {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, []string{field, strconv.Itoa(defaults[field])})
	}

	return rows
}

func rejectionLines(rejections map[string][]string, limit int) []string {
	names := make([]string, 0, len(rejections))
	for name := range rejections {
		names = append(names, name)
	}

	sort.Strings(names)

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", name, strings.Join(rejections[name], "; ")))
	}

	return lines
}

// renderTable builds a markdown table with columns padded to equal display
// width. Width is measured with runewidth so wide characters align.
func renderTable(headers []string, rows [][]string) []string {
	widths := make([]int, len(headers))

	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var lines []string

	lines = append(lines, renderRow(headers, widths))

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", widths[i])
	}

	lines = append(lines, renderRow(separator, widths))

	for _, row := range rows {
		lines = append(lines, renderRow(row, widths))
	}

	return lines
}

func renderRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))

	for i, cell := range cells {
		padding := widths[i] - runewidth.StringWidth(cell)
		if padding < 0 {
			padding = 0
		}

		padded[i] = cell + strings.Repeat(" ", padding)
	}

	return "| " + strings.Join(padded, " | ") + " |"
}
