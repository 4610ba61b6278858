package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"jobsapi/internal/domain/models"
)

const seedQueryTimeout = 5 * time.Second

// LoadSeedFile reads a JSON array of jobs. An empty path yields no jobs.
func LoadSeedFile(path string) ([]models.Job, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return []models.Job{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var jobs []models.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// LoadSeedDB reads the jobs table once. The database is never written to.
// posted may be missing from older schemas and reads as "". Blank required
// fields are left for NewJobRepository to reject.
func LoadSeedDB(ctx context.Context, db *sql.DB) ([]models.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, seedQueryTimeout)
	defer cancel()

	posted := optionalColumn(ctx, db, "jobs", "posted")

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, title, department, location, type, COALESCE(description,''), %s
		FROM jobs
		ORDER BY id
	`, posted))
	if err != nil {
		return nil, fmt.Errorf("query seed jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Type, &j.Description, &j.Posted); err != nil {
			return nil, fmt.Errorf("scan seed job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seed jobs: %w", err)
	}
	return jobs, nil
}
