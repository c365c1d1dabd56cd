package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestServerFromEnv(t *testing.T) {
	t.Setenv("KOSMI_ADDR", ":9090")
	t.Setenv("KOSMI_DATABASE_URL", "postgres://kosmi@localhost/kosmi")
	t.Setenv("KOSMI_CACHE_TTL", "2m")
	t.Setenv("KOSMI_JWT_SECRET", "geheim")
	t.Setenv("KOSMI_CORS_ORIGINS", "https://kosmi.nl, https://app.kosmi.nl,")
	t.Setenv("KOSMI_OTEL_ENABLED", "yes")
	t.Setenv("KOSMI_OTEL_SAMPLE_RATIO", "3")
	t.Setenv("KOSMI_MAX_UPLOAD_BYTES", "1024")

	cfg := ServerFromEnv()
	if cfg.Addr != ":9090" || cfg.DatabaseURL != "postgres://kosmi@localhost/kosmi" {
		t.Errorf("addr/db = %q %q", cfg.Addr, cfg.DatabaseURL)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Errorf("cache ttl = %s", cfg.CacheTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://app.kosmi.nl" {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
	if !cfg.OTel.Enabled || cfg.OTel.SampleRatio != 1 {
		t.Errorf("otel = %+v", cfg.OTel)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("max upload = %d", cfg.MaxUploadBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestServerDefaultsNeedSecret(t *testing.T) {
	t.Setenv("KOSMI_JWT_SECRET", "")
	cfg := ServerFromEnv()
	if cfg.Addr != ":8080" {
		t.Errorf("default addr = %q", cfg.Addr)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without jwt secret")
	}
}

func TestClientFromEnv(t *testing.T) {
	t.Setenv("KOSMI_API_URL", "https://api.kosmi.nl")
	t.Setenv("KOSMI_TOKEN", "abc")
	t.Setenv("KOSMI_CLIENT_TIMEOUT", "nonsense")

	cfg := ClientFromEnv()
	if cfg.APIURL != "https://api.kosmi.nl" || cfg.Token != "abc" {
		t.Errorf("client = %+v", cfg)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("invalid timeout should keep default, got %s", cfg.Timeout)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("KOSMI_TEST_DOTENV=uit-bestand\nKOSMI_TEST_PRESET=uit-bestand\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KOSMI_TEST_PRESET", "al-gezet")
	t.Cleanup(func() { os.Unsetenv("KOSMI_TEST_DOTENV") })

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("KOSMI_TEST_DOTENV"); got != "uit-bestand" {
		t.Errorf("KOSMI_TEST_DOTENV = %q", got)
	}
	if got := os.Getenv("KOSMI_TEST_PRESET"); got != "al-gezet" {
		t.Errorf("existing variable overwritten: %q", got)
	}
}
