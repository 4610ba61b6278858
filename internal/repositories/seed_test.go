package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsapi/internal/domain"
)

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":1,"title":"Backend Engineer","department":"Engineering","location":"Remote","type":"Full-time","description":"Go services","posted":"2 days ago"},
		{"id":2,"title":"Designer","department":"Design","location":"London","type":"Contract","description":"UI work","posted":"1 week ago"}
	]`), 0o600))

	jobs, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
	assert.Equal(t, "1 week ago", jobs[1].Posted)
}

func TestLoadSeedFile_EmptyPath(t *testing.T) {
	jobs, err := LoadSeedFile("  ")
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o600))
	_, err = LoadSeedFile(path)
	assert.Error(t, err)
}

func TestLoadSeedDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectColumn(mock, "posted", true)
	mock.ExpectQuery(`SELECT id, title, department, location, type, COALESCE\(description,''\), COALESCE\(posted,''\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "department", "location", "type", "description", "posted"}).
			AddRow(1, "Backend Engineer", "Engineering", "Remote", "Full-time", "Go services", "2 days ago").
			AddRow(4, "Support", "Operations", "Berlin", "Part-time", "Customer care", ""))

	jobs, err := LoadSeedDB(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, int64(4), jobs[1].ID)
	assert.Equal(t, "Support", jobs[1].Title)

	repo, err := NewJobRepository(jobs)
	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.Create(newJob("next")).ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeedDB_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectColumn(mock, "posted", true)
	mock.ExpectQuery("FROM jobs").WillReturnError(errors.New("table missing"))

	_, err = LoadSeedDB(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table missing")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeedDB_MissingPostedColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("information_schema.columns").
		WithArgs("jobs", "posted").
		WillReturnError(errors.New("access denied"))
	mock.ExpectQuery(`SELECT id, title, department, location, type, COALESCE\(description,''\), ''`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "department", "location", "type", "description", "posted"}).
			AddRow(2, "Analyst", "Analytics", "Leeds", "Contract", "Dashboards", "").
			AddRow(3, "Intern", "Analytics", "Leeds", "Contract", "", ""))

	jobs, err := LoadSeedDB(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Empty(t, jobs[0].Posted)
	require.NoError(t, mock.ExpectationsWereMet())

	_, err = NewJobRepository(jobs)
	require.Error(t, err)
	assert.Equal(t, []string{"seed[1]: description is a required field"}, domain.ValidationErrors(err))
}

func expectColumn(mock sqlmock.Sqlmock, column string, present bool) {
	rows := sqlmock.NewRows([]string{"column_name"})
	if present {
		rows.AddRow(column)
	}
	mock.ExpectQuery("information_schema.columns").WithArgs("jobs", column).WillReturnRows(rows)
}
