// Package config reads process configuration from the environment. Values
// come from KOSMI_* variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server configures `kosmi serve`.
type Server struct {
	Addr        string
	DatabaseURL string
	// RedisURL enables the content cache when set.
	RedisURL string
	CacheTTL time.Duration

	JWTSecret string
	JWTIssuer string

	CORSOrigins     []string
	ShutdownTimeout time.Duration
	// MaxUploadBytes bounds dictation uploads.
	MaxUploadBytes int64

	Log  Log
	OTel OTel
}

// Log configures the logger.
type Log struct {
	Mode     string
	Level    string
	HashSalt string
}

// OTel configures tracing.
type OTel struct {
	Enabled     bool
	ServiceName string
	Environment string
	SampleRatio float64
}

// Client configures `kosmi play`.
type Client struct {
	APIURL  string
	Token   string
	Timeout time.Duration
	// RecordCommand and PlayCommand override the audio tools.
	RecordCommand string
	PlayCommand   string
}

// LoadDotEnv loads the given .env files, or ./.env when none are named.
// Missing files are ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// DefaultServer returns the server defaults.
func DefaultServer() Server {
	return Server{
		Addr:            ":8080",
		CacheTTL:        10 * time.Minute,
		CORSOrigins:     []string{"http://localhost:3000"},
		ShutdownTimeout: 10 * time.Second,
		MaxUploadBytes:  25 << 20,
		Log:             Log{Mode: "dev", Level: "info"},
		OTel:            OTel{ServiceName: "kosmi", Environment: "dev", SampleRatio: 0.1},
	}
}

// ServerFromEnv applies KOSMI_* variables over the defaults.
func ServerFromEnv() Server {
	cfg := DefaultServer()
	setString(&cfg.Addr, "KOSMI_ADDR")
	setString(&cfg.DatabaseURL, "KOSMI_DATABASE_URL")
	setString(&cfg.RedisURL, "KOSMI_REDIS_URL")
	setDuration(&cfg.CacheTTL, "KOSMI_CACHE_TTL")
	setString(&cfg.JWTSecret, "KOSMI_JWT_SECRET")
	setString(&cfg.JWTIssuer, "KOSMI_JWT_ISSUER")
	setList(&cfg.CORSOrigins, "KOSMI_CORS_ORIGINS")
	setDuration(&cfg.ShutdownTimeout, "KOSMI_SHUTDOWN_TIMEOUT")
	if v, err := strconv.ParseInt(os.Getenv("KOSMI_MAX_UPLOAD_BYTES"), 10, 64); err == nil && v > 0 {
		cfg.MaxUploadBytes = v
	}

	setString(&cfg.Log.Mode, "KOSMI_LOG_MODE")
	setString(&cfg.Log.Level, "KOSMI_LOG_LEVEL")
	setString(&cfg.Log.HashSalt, "KOSMI_LOG_HASH_SALT")

	cfg.OTel.Enabled = truthy(os.Getenv("KOSMI_OTEL_ENABLED"))
	setString(&cfg.OTel.ServiceName, "KOSMI_OTEL_SERVICE_NAME")
	setString(&cfg.OTel.Environment, "KOSMI_ENV")
	if v, err := strconv.ParseFloat(os.Getenv("KOSMI_OTEL_SAMPLE_RATIO"), 64); err == nil {
		cfg.OTel.SampleRatio = min(max(v, 0), 1)
	}
	return cfg
}

// Validate reports settings the server cannot start without.
func (s Server) Validate() error {
	var problems []string
	if s.Addr == "" {
		problems = append(problems, "listen address is empty")
	}
	if s.JWTSecret == "" {
		problems = append(problems, "KOSMI_JWT_SECRET is required")
	}
	if s.CacheTTL < 0 {
		problems = append(problems, "cache ttl must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ClientFromEnv reads the player settings.
func ClientFromEnv() Client {
	cfg := Client{
		APIURL:  "http://localhost:8080",
		Timeout: 60 * time.Second,
	}
	setString(&cfg.APIURL, "KOSMI_API_URL")
	setString(&cfg.Token, "KOSMI_TOKEN")
	setDuration(&cfg.Timeout, "KOSMI_CLIENT_TIMEOUT")
	setString(&cfg.RecordCommand, "KOSMI_RECORD_COMMAND")
	setString(&cfg.PlayCommand, "KOSMI_PLAY_COMMAND")
	return cfg
}

func setString(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, env string) {
	if v, err := time.ParseDuration(os.Getenv(env)); err == nil && v > 0 {
		*dst = v
	}
}

func setList(dst *[]string, env string) {
	raw := strings.TrimSpace(os.Getenv(env))
	if raw == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	*dst = out
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
