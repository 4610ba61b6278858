package repositories

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsapi/internal/domain"
	"jobsapi/internal/domain/models"
	"jobsapi/internal/pagination"
)

func newJob(title string) models.CreateJobData {
	return models.CreateJobData{
		Title:       title,
		Department:  "Engineering",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "Job " + title,
	}
}

func newRepoWith(t *testing.T, titles ...string) *JobRepository {
	t.Helper()
	repo, err := NewJobRepository(nil)
	require.NoError(t, err)
	for _, title := range titles {
		repo.Create(newJob(title))
	}
	return repo
}

func listTitles(res PageResult) []string {
	out := []string{}
	for _, j := range res.Items {
		out = append(out, j.Title)
	}
	return out
}

func TestList_TotalRegardlessOfPagination(t *testing.T) {
	repo := newRepoWith(t, "A", "B", "C")

	res := repo.List(pagination.Query{Page: 1, Limit: 2, SortBy: "title", Order: pagination.OrderAsc})

	assert.Equal(t, 3, res.Total)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, []string{"A", "B"}, listTitles(res))
}

func TestList_SortsThenPaginates(t *testing.T) {
	repo := newRepoWith(t, "C", "A", "B")

	res := repo.List(pagination.Query{Page: 2, Limit: 1, SortBy: "title", Order: pagination.OrderAsc})
	assert.Equal(t, []string{"B"}, listTitles(res))

	res = repo.List(pagination.Query{Page: 1, Limit: 10, SortBy: "title", Order: pagination.OrderDesc})
	assert.Equal(t, []string{"C", "B", "A"}, listTitles(res))
}

func TestList_PageBeyondLastKeepsTotal(t *testing.T) {
	repo := newRepoWith(t, "A", "B")

	res := repo.List(pagination.Query{Page: 3, Limit: 5, SortBy: "id", Order: pagination.OrderAsc})
	assert.Empty(t, res.Items)
	assert.Equal(t, 2, res.Total)
}

func TestList_EmptyCollection(t *testing.T) {
	repo := newRepoWith(t)

	res := repo.List(pagination.Query{Page: 1, Limit: 20, SortBy: "id", Order: pagination.OrderAsc})
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Total)
}

func TestList_DoesNotChangeStoredOrder(t *testing.T) {
	repo := newRepoWith(t, "B", "A")

	repo.List(pagination.Query{Page: 1, Limit: 10, SortBy: "title", Order: pagination.OrderAsc})

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Title)
}

func TestCreate_AssignsIDsFromMaxSeedID(t *testing.T) {
	repo, err := NewJobRepository([]models.Job{seedJob(7, "seed"), seedJob(3, "older")})
	require.NoError(t, err)

	created := repo.Create(newJob("new"))
	assert.Equal(t, int64(8), created.ID)
	assert.Equal(t, models.PostedJustNow, created.Posted)

	empty := newRepoWith(t)
	assert.Equal(t, int64(1), empty.Create(newJob("first")).ID)
}

func TestCreate_IDsNotReusedAfterDelete(t *testing.T) {
	repo := newRepoWith(t, "A", "B")
	require.True(t, repo.Delete(2))

	assert.Equal(t, int64(3), repo.Create(newJob("C")).ID)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newRepoWith(t, "A")
	title := "Renamed"

	updated, ok := repo.Update(1, models.UpdateJobData{Title: &title})
	require.True(t, ok)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Engineering", updated.Department)
	assert.Equal(t, int64(1), updated.ID)

	stored, ok := repo.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, updated, stored)

	_, ok = repo.Update(99, models.UpdateJobData{Title: &title})
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	repo := newRepoWith(t, "A", "B", "C")

	assert.True(t, repo.Delete(2))
	assert.False(t, repo.Delete(2))
	assert.Equal(t, 2, repo.Len())

	_, ok := repo.GetByID(2)
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "C"}, []string{repo.All()[0].Title, repo.All()[1].Title})
}

func TestAll_ReturnsCopy(t *testing.T) {
	repo := newRepoWith(t, "A")

	all := repo.All()
	all[0].Title = "mutated"

	stored, _ := repo.GetByID(1)
	assert.Equal(t, "A", stored.Title)
}

func seedJob(id int64, title string) models.Job {
	return models.Job{ID: id, Title: title, Department: "Engineering", Location: "Remote", Type: "Full-time", Description: "Job " + title}
}

func TestNewJobRepository_RejectsBadSeed(t *testing.T) {
	_, err := NewJobRepository([]models.Job{seedJob(1, "A"), seedJob(1, "B"), seedJob(0, "C")})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, []string{
		"seed[1]: duplicate id 1",
		"seed[2]: id must be positive, got 0",
	}, domain.ValidationErrors(err))
}

func TestNewJobRepository_RejectsBlankSeedFields(t *testing.T) {
	_, err := NewJobRepository([]models.Job{
		{ID: 1, Title: "   ", Department: "", Location: "Remote", Type: "Full-time", Description: "x"},
	})
	require.Error(t, err)
	assert.Equal(t, []string{
		"seed[0]: title is a required field",
		"seed[0]: department is a required field",
	}, domain.ValidationErrors(err))
}

func TestNewJobRepository_TrimsSeed(t *testing.T) {
	j := seedJob(3, "  Analyst ")
	j.Posted = " 1 day ago "
	repo, err := NewJobRepository([]models.Job{j})
	require.NoError(t, err)

	stored, ok := repo.GetByID(3)
	require.True(t, ok)
	assert.Equal(t, "Analyst", stored.Title)
	assert.Equal(t, "1 day ago", stored.Posted)
}

func TestConcurrentCreatesGetUniqueIDs(t *testing.T) {
	repo := newRepoWith(t)

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- repo.Create(newJob("x")).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n, repo.Len())
}
