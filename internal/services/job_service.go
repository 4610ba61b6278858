package services

import (
	"fmt"

	"jobsapi/internal/domain"
	"jobsapi/internal/domain/models"
	"jobsapi/internal/pagination"
	"jobsapi/internal/repositories"
	"jobsapi/internal/utils"
)

// SortFields is the whitelist of fields a job listing may be sorted by.
var SortFields = []string{
	models.FieldID,
	models.FieldTitle,
	models.FieldDepartment,
	models.FieldLocation,
	models.FieldType,
	models.FieldPosted,
}

// JobList is the response body of a job listing.
type JobList struct {
	Data []models.Job    `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// JobService sits between handlers and the repository.
type JobService struct {
	Repo      *repositories.JobRepository
	RequestID string
}

// ListJobs normalizes a raw query and returns one page with its metadata.
func (s JobService) ListJobs(raw map[string]any) JobList {
	q := pagination.Normalize(raw, SortFields)
	res := s.Repo.List(q)
	return JobList{Data: res.Items, Meta: pagination.BuildMeta(q, res.Total)}
}

func (s JobService) GetJob(id int64) (models.Job, error) {
	j, ok := s.Repo.GetByID(id)
	if !ok {
		return models.Job{}, domain.NotFoundError{Resource: "job"}
	}
	return j, nil
}

func (s JobService) CreateJob(data models.CreateJobData) models.Job {
	j := s.Repo.Create(data)
	utils.LogEvent(s.RequestID, "jobs", "create", fmt.Sprintf("id=%d", j.ID))
	return j
}

func (s JobService) UpdateJob(id int64, data models.UpdateJobData) (models.Job, error) {
	j, ok := s.Repo.Update(id, data)
	if !ok {
		return models.Job{}, domain.NotFoundError{Resource: "job"}
	}
	utils.LogEvent(s.RequestID, "jobs", "update", fmt.Sprintf("id=%d", id))
	return j, nil
}

func (s JobService) DeleteJob(id int64) error {
	if !s.Repo.Delete(id) {
		return domain.NotFoundError{Resource: "job"}
	}
	utils.LogEvent(s.RequestID, "jobs", "delete", fmt.Sprintf("id=%d", id))
	return nil
}
