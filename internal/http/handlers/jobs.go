package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsapi/internal/domain"
	"jobsapi/internal/http/middleware"
	"jobsapi/internal/pagination"
	"jobsapi/internal/repositories"
	"jobsapi/internal/services"
)

// JobsHandler serves /jobs. Reads are public; writes are guarded by the router.
type JobsHandler struct {
	Repo *repositories.JobRepository
}

func (h JobsHandler) service(c *gin.Context) services.JobService {
	return services.JobService{Repo: h.Repo, RequestID: middleware.GetRequestID(c)}
}

// GET /jobs?page=&limit=&sortBy=&order=
func (h JobsHandler) List(c *gin.Context) {
	raw := pagination.RawQuery(c.Request.URL.Query())
	c.JSON(http.StatusOK, h.service(c).ListJobs(raw))
}

// GET /jobs/:id
func (h JobsHandler) Get(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	job, err := h.service(c).GetJob(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// POST /jobs
func (h JobsHandler) Create(c *gin.Context) {
	body, ok := readJSONBody(c)
	if !ok {
		return
	}
	if errs := validateCreateJob(body); len(errs) > 0 {
		RespondDomainError(c, domain.ValidationError{Msg: "Validation failed", Errors: errs})
		return
	}

	c.JSON(http.StatusCreated, h.service(c).CreateJob(createDataFrom(body)))
}

// PATCH /jobs/:id
func (h JobsHandler) Update(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}
	body, ok := readJSONBody(c)
	if !ok {
		return
	}
	if errs := validateUpdateJob(body); len(errs) > 0 {
		RespondDomainError(c, domain.ValidationError{Msg: "Validation failed", Errors: errs})
		return
	}

	job, err := h.service(c).UpdateJob(id, updateDataFrom(body))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DELETE /jobs/:id
func (h JobsHandler) Delete(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	if err := h.service(c).DeleteJob(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
