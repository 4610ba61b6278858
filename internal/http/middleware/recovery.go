package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"jobsapi/internal/utils"
)

// Recovery turns panics into a 500 envelope. Outside production the stack is logged too.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		l := utils.Logger()
		ev := l.Error().
			Str("request_id", GetRequestID(c)).
			Str("error", fmt.Sprint(recovered))
		if !production {
			ev = ev.Bytes("stack", debug.Stack())
		}
		ev.Msg("unhandled error")

		AbortWithError(c, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred", nil)
	})
}
