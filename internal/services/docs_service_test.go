package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsapi/internal/domain"
	"jobsapi/internal/domain/models"
	"jobsapi/internal/repositories"
)

func TestDocsServiceGenerateJobSheet(t *testing.T) {
	repo, err := repositories.NewJobRepository([]models.Job{{
		ID:          12,
		Title:       "Senior Backend Engineer (Go)",
		Department:  "Engineering",
		Location:    "Zürich",
		Type:        "Full-time",
		Description: "Build   and run services.",
		Posted:      "3 days ago",
	}})
	require.NoError(t, err)

	svc := DocsService{
		Jobs: JobService{Repo: repo},
		Now:  func() time.Time { return time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC) },
	}

	pdf, name, err := svc.GenerateJobSheet(12)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "job-12-senior-backend-engineer-go.pdf", name)

	_, _, err = svc.GenerateJobSheet(99)
	assert.True(t, domain.IsNotFound(err))
}

func TestDocsServiceGenerateJobSheet_TitleWithoutSlug(t *testing.T) {
	repo, err := repositories.NewJobRepository([]models.Job{{
		ID:          3,
		Title:       "Инженер !!!",
		Department:  "Engineering",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "Build services.",
	}})
	require.NoError(t, err)

	_, name, err := DocsService{Jobs: JobService{Repo: repo}}.GenerateJobSheet(3)
	require.NoError(t, err)
	assert.Equal(t, "job-3.pdf", name)
}
