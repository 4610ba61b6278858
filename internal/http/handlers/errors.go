package handlers

import (
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"jobsapi/internal/domain"
	"jobsapi/internal/http/middleware"
	"jobsapi/internal/utils"
)

func respondError(c *gin.Context, status int, code middleware.ErrorCode, message string, details map[string]any) {
	middleware.AbortWithError(c, status, code, message, details)
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, middleware.CodeValidation, "Validation failed",
			map[string]any{"errors": domain.ValidationErrors(err)})
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, middleware.CodeNotFound, capitalize(err.Error()), nil)
	default:
		l := utils.Logger()
		l.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("unhandled error")
		respondError(c, http.StatusInternalServerError, middleware.CodeInternal, "An unexpected error occurred", nil)
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
