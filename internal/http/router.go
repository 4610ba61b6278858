package api

import (
	"github.com/gin-gonic/gin"

	"jobsapi/internal/auth"
	intconfig "jobsapi/internal/config"
	"jobsapi/internal/domain"
	h "jobsapi/internal/http/handlers"
	"jobsapi/internal/http/middleware"
	"jobsapi/internal/repositories"
	"jobsapi/internal/utils"
)

// Deps are the long-lived components the routes serve from.
type Deps struct {
	Jobs     *repositories.JobRepository
	Verifier *auth.Verifier
}

func NewRouter(env intconfig.Env, deps Deps) (*gin.Engine, error) {
	corsMW, err := middleware.CORS(env.CORSAllowedOrigins)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery(env.IsProduction()), corsMW)

	if err := r.SetTrustedProxies(nil); err != nil {
		l := utils.Logger()
		l.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(h.NoRoute)

	authenticated := middleware.Authenticate(deps.Verifier)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	r.GET("/healthCheck", h.Health)
	r.GET("/admin-check", authenticated, adminOnly, h.AdminCheck)

	jobs := h.JobsHandler{Repo: deps.Jobs}
	g := r.Group("/jobs")
	{
		g.GET("", jobs.List)
		g.GET("/:id", jobs.Get)
		g.GET("/:id/pdf", jobs.Sheet)

		// writes are admin only
		g.POST("", authenticated, adminOnly, jobs.Create)
		g.PATCH("/:id", authenticated, adminOnly, jobs.Update)
		g.DELETE("/:id", authenticated, adminOnly, jobs.Delete)
	}

	return r, nil
}
