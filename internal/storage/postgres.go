// Package storage persists cleaned course records.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"caoclean/internal/models"
	"caoclean/internal/normalizer"
)

// PostgresRepository persists cleaned courses into Postgres. The pipeline
// itself performs no I/O; this is the downstream collaborator.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ExistingKeys returns a map with the dedup keys that already exist in
// storage.
func (r *PostgresRepository) ExistingKeys(ctx context.Context, keys []string) (map[string]bool, error) {
	if r.db == nil || len(keys) == 0 {
		return map[string]bool{}, nil
	}

	query := `SELECT dedup_key FROM courses WHERE dedup_key = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.StringArray(keys))
	if err != nil {
		return nil, fmt.Errorf("query existing keys: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}

		existing[key] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keys: %w", err)
	}

	return existing, nil
}

// SaveCourses upserts cleaned courses on their dedup key and returns the
// number of records written.
func (r *PostgresRepository) SaveCourses(ctx context.Context, courses []models.Course) (int, error) {
	if r.db == nil || len(courses) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO courses (
			dedup_key, name, cao_code, description, nfq_level, duration,
			tags, course_url, points, entry_requirements, career_info,
			keywords, college_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (dedup_key) DO UPDATE SET
			cao_code = EXCLUDED.cao_code,
			description = EXCLUDED.description,
			nfq_level = EXCLUDED.nfq_level,
			duration = EXCLUDED.duration,
			tags = EXCLUDED.tags,
			course_url = EXCLUDED.course_url,
			points = EXCLUDED.points,
			entry_requirements = EXCLUDED.entry_requirements,
			career_info = EXCLUDED.career_info,
			keywords = EXCLUDED.keywords,
			college_id = EXCLUDED.college_id`

	saved := 0

	for _, course := range courses {
		_, err := r.db.ExecContext(ctx, query,
			normalizer.DedupKey(course),
			course.Name,
			course.CAOCode,
			course.Description,
			course.NFQLevel,
			course.Duration,
			course.Tags,
			course.CourseURL,
			course.Points,
			course.EntryRequirements,
			course.CareerInfo,
			course.Keywords,
			course.CollegeID,
			course.CreatedAt,
		)
		if err != nil {
			return saved, fmt.Errorf("insert course %q: %w", course.Name, err)
		}

		saved++
	}

	return saved, nil
}
