package middleware

import (
	"github.com/gin-gonic/gin"
)

// ErrorCode is the machine-readable code of an API error.
type ErrorCode string

const (
	CodeForbidden       ErrorCode = "FORBIDDEN"        // 403
	CodeInternal        ErrorCode = "INTERNAL_ERROR"   // 500
	CodeInvalidID       ErrorCode = "INVALID_ID"       // 400
	CodeInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	CodeNotFound        ErrorCode = "NOT_FOUND"        // 404
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"  // 401
	CodeValidation      ErrorCode = "VALIDATION_ERROR" // 400
)

// ErrorBody is the payload under "error".
type ErrorBody struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, status int, code ErrorCode, message string, details map[string]any) {
	if details == nil {
		details = map[string]any{}
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		RequestID: GetRequestID(c),
	})
}
