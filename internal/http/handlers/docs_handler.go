package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsapi/internal/http/middleware"
	"jobsapi/internal/services"
)

// GET /jobs/:id/pdf
func (h JobsHandler) Sheet(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	svc := services.DocsService{Jobs: h.service(c), RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateJobSheet(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
