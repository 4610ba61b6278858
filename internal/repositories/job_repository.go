package repositories

import (
	"fmt"
	"slices"
	"sync"

	"jobsapi/internal/domain"
	"jobsapi/internal/domain/models"
	"jobsapi/internal/pagination"
)

// PageResult is one window of jobs plus the size of the whole collection.
type PageResult = pagination.Result[models.Job]

// JobRepository is the in-memory store of job postings.
//
// Records live in a map keyed by id; order keeps insertion order so listings
// and ties are deterministic. Ids come from a counter that only grows.
// All access goes through mu and callers only ever see copies.
type JobRepository struct {
	mu        sync.RWMutex
	items     map[int64]models.Job
	order     []int64
	lastID    int64
	collation pagination.Collation
}

type Option func(*JobRepository)

// WithCollation sets the locale used when sorting text fields.
func WithCollation(c pagination.Collation) Option {
	return func(r *JobRepository) { r.collation = c }
}

// NewJobRepository builds a repository from seed data. Seed ids must be
// positive and unique.
func NewJobRepository(seed []models.Job, opts ...Option) (*JobRepository, error) {
	r := &JobRepository{
		items:     make(map[int64]models.Job, len(seed)),
		order:     make([]int64, 0, len(seed)),
		collation: pagination.NewCollation(""),
	}
	for _, opt := range opts {
		opt(r)
	}

	var problems []string
	for i, j := range seed {
		if j.ID <= 0 {
			problems = append(problems, fmt.Sprintf("seed[%d]: id must be positive, got %d", i, j.ID))
			continue
		}
		if _, dup := r.items[j.ID]; dup {
			problems = append(problems, fmt.Sprintf("seed[%d]: duplicate id %d", i, j.ID))
			continue
		}
		if blank := j.BlankFields(); len(blank) > 0 {
			for _, field := range blank {
				problems = append(problems, fmt.Sprintf("seed[%d]: %s is a required field", i, field))
			}
			continue
		}
		j = j.Trimmed()
		r.items[j.ID] = j
		r.order = append(r.order, j.ID)
		if j.ID > r.lastID {
			r.lastID = j.ID
		}
	}
	if len(problems) > 0 {
		return nil, domain.ValidationError{Msg: "invalid seed data", Errors: problems}
	}

	return r, nil
}

// Len returns the number of stored jobs.
func (r *JobRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// All returns a copy of every job in insertion order.
func (r *JobRepository) All() []models.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

func (r *JobRepository) snapshot() []models.Job {
	out := make([]models.Job, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

func (r *JobRepository) GetByID(id int64) (models.Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.items[id]
	return j, ok
}

// Create stores a new job under the next id.
func (r *JobRepository) Create(data models.CreateJobData) models.Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	j := models.Job{
		ID:          r.lastID,
		Title:       data.Title,
		Department:  data.Department,
		Location:    data.Location,
		Type:        data.Type,
		Description: data.Description,
		Posted:      models.PostedJustNow,
	}
	r.items[j.ID] = j
	r.order = append(r.order, j.ID)
	return j
}

// Update replaces the set fields of the job with the given id.
func (r *JobRepository) Update(id int64, data models.UpdateJobData) (models.Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return models.Job{}, false
	}
	updated := data.Apply(existing)
	updated.ID = existing.ID
	r.items[id] = updated
	return updated, true
}

// Delete removes the job with the given id and reports whether it existed.
func (r *JobRepository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// List sorts a copy of the collection by q and returns the requested page.
// Total always counts the full collection.
func (r *JobRepository) List(q pagination.Query) PageResult {
	r.mu.RLock()
	jobs := r.snapshot()
	r.mu.RUnlock()

	return pagination.Apply(jobs, q, models.Job.Field, r.collation)
}
