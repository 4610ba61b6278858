package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Env struct {
	AppAddr string
	AppEnv  string
	GinMode string

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string

	SeedFile string
	SeedDSN  string

	AuthTokens    string
	AuthJWTSecret string

	SortLocale string
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (e Env) IsProduction() bool {
	return strings.EqualFold(e.AppEnv, "production")
}

const (
	DefaultAppAddr    = ":3000"
	DefaultSeedFile   = "data.json"
	DefaultAuthTokens = "admin-token:admin,user-token:user"
	DefaultSortLocale = "en"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3001",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads settings from the environment and an optional config.yaml in
// the working directory. Environment variables win. A config.yaml that exists
// but cannot be read or parsed is an error.
func LoadEnv() (Env, error) {
	return loadEnv(viper.New(), ".")
}

func loadEnv(v *viper.Viper, configPath string) (Env, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	// SEED_FILE= must be able to switch seeding off
	v.AllowEmptyEnv(true)

	v.SetDefault("app_addr", "")
	v.SetDefault("port", "")
	v.SetDefault("app_env", "development")
	v.SetDefault("gin_mode", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("seed_file", DefaultSeedFile)
	v.SetDefault("seed_dsn", "")
	v.SetDefault("auth_tokens", DefaultAuthTokens)
	v.SetDefault("auth_jwt_secret", "")
	v.SetDefault("sort_locale", DefaultSortLocale)

	// a missing config.yaml is fine: defaults + env
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Env{}, fmt.Errorf("read config file: %w", err)
		}
	}

	appAddr := strings.TrimSpace(v.GetString("app_addr"))
	if appAddr == "" {
		if port := strings.TrimSpace(v.GetString("port")); port != "" {
			appAddr = ":" + strings.TrimPrefix(port, ":")
		} else {
			appAddr = DefaultAppAddr
		}
	}

	origins := splitList(v.GetString("cors_allowed_origins"))
	if len(origins) == 0 {
		origins = append([]string(nil), defaultCORSOrigins...)
	}

	return Env{
		AppAddr:            appAddr,
		AppEnv:             strings.TrimSpace(v.GetString("app_env")),
		GinMode:            strings.TrimSpace(v.GetString("gin_mode")),
		LogLevel:           strings.TrimSpace(v.GetString("log_level")),
		LogFormat:          strings.TrimSpace(v.GetString("log_format")),
		CORSAllowedOrigins: origins,
		SeedFile:           strings.TrimSpace(v.GetString("seed_file")),
		SeedDSN:            strings.TrimSpace(v.GetString("seed_dsn")),
		AuthTokens:         strings.TrimSpace(v.GetString("auth_tokens")),
		AuthJWTSecret:      v.GetString("auth_jwt_secret"),
		SortLocale:         strings.TrimSpace(v.GetString("sort_locale")),
	}, nil
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
