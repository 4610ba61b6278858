package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsapi/internal/http/middleware"
)

// GET /healthCheck
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /admin-check, behind Authenticate + RequireRoles(admin).
func AdminCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func NoRoute(c *gin.Context) {
	respondError(c, http.StatusNotFound, middleware.CodeNotFound, "Route not found", map[string]any{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
}
