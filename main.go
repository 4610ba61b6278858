package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobsapi/internal/auth"
	intconfig "jobsapi/internal/config"
	"jobsapi/internal/domain/models"
	router "jobsapi/internal/http"
	"jobsapi/internal/pagination"
	"jobsapi/internal/repositories"
	"jobsapi/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		l := utils.Logger()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := utils.InitLogger(env.LogLevel, env.LogFormat, os.Stderr)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	seed, source, err := loadSeed(env)
	if err != nil {
		logger.Fatal().Err(err).Str("source", source).Msg("failed to load seed jobs")
	}

	collation := pagination.NewCollation(env.SortLocale)
	repo, err := repositories.NewJobRepository(seed, repositories.WithCollation(collation))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid seed jobs")
	}
	logger.Info().Int("jobs", repo.Len()).Str("source", source).Str("locale", collation.Locale()).Msg("seed jobs loaded")

	verifier, err := auth.NewVerifier(env.AuthTokens, env.AuthJWTSecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid auth configuration")
	}

	r, err := router.NewRouter(env, router.Deps{Jobs: repo, Verifier: verifier})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", env.AppAddr).Msg("API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("shutdown failed")
	}

	logger.Info().Msg("server stopped")
}

// loadSeed reads the initial jobs from MySQL when SEED_DSN is set, otherwise
// from SEED_FILE.
func loadSeed(env intconfig.Env) ([]models.Job, string, error) {
	if env.SeedDSN != "" {
		ctx := context.Background()
		db, err := intconfig.OpenSeedDB(ctx, env.SeedDSN)
		if err != nil {
			return nil, "mysql", err
		}
		defer db.Close()

		jobs, err := repositories.LoadSeedDB(ctx, db)
		return jobs, "mysql", err
	}

	jobs, err := repositories.LoadSeedFile(env.SeedFile)
	return jobs, env.SeedFile, err
}
