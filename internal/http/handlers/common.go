package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobsapi/internal/http/middleware"
)

// parseJobID reads the :id path parameter. On failure the response is written.
func parseJobID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, middleware.CodeInvalidID, "Invalid Job ID", nil)
		return 0, false
	}
	return id, true
}

// readJSONBody decodes the request body into a loosely-typed value so
// validation can report on shape and types itself. An empty body decodes to
// nil. Malformed JSON writes a 400 and returns false.
func readJSONBody(c *gin.Context) (any, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, middleware.CodeInvalidRequest, "Unable to read request body", nil)
		return nil, false
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, true
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		respondError(c, http.StatusBadRequest, middleware.CodeInvalidRequest, "Malformed JSON in request body", nil)
		return nil, false
	}
	return body, true
}
