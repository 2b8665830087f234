package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Store != "sqlite" {
		t.Errorf("Store = %q", cfg.Store)
	}
	if cfg.Credentials != "plaintext" {
		t.Errorf("Credentials = %q", cfg.Credentials)
	}
	if cfg.AdvisoryTimeout != 15*time.Second {
		t.Errorf("AdvisoryTimeout = %v", cfg.AdvisoryTimeout)
	}
	if cfg.AdvisoryModel != "gemini-3-flash-preview" {
		t.Errorf("AdvisoryModel = %q", cfg.AdvisoryModel)
	}
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("HOUSEPOINTS_ADDR", ":9090")
	t.Setenv("HOUSEPOINTS_STORE", "redis")
	t.Setenv("HOUSEPOINTS_REDIS_DB", "3")
	t.Setenv("HOUSEPOINTS_SUMMARY_CONCURRENCY", "4")
	t.Setenv("HOUSEPOINTS_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.Store != "redis" || cfg.RedisDB != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.SummaryConcurrency != 4 || cfg.ShutdownTimeout != 2*time.Second {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown store", map[string]string{"HOUSEPOINTS_STORE": "mongo"}},
		{"unknown credentials", map[string]string{"HOUSEPOINTS_CREDENTIALS": "md5"}},
		{"postgres without url", map[string]string{"HOUSEPOINTS_STORE": "postgres"}},
		{"zero concurrency", map[string]string{"HOUSEPOINTS_SUMMARY_CONCURRENCY": "0"}},
		{"bad duration", map[string]string{"HOUSEPOINTS_ADVISORY_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Parse(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("HOUSEPOINTS_STORE=memory\nHOUSEPOINTS_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOUSEPOINTS_ENV_FILE", path)
	// Already-set variables take precedence over the file.
	t.Setenv("HOUSEPOINTS_LOG_LEVEL", "warn")
	// Registered so t.Setenv restores it once godotenv has set it.
	t.Setenv("HOUSEPOINTS_STORE", "")
	os.Unsetenv("HOUSEPOINTS_STORE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store != "memory" {
		t.Errorf("Store = %q, want memory from file", cfg.Store)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn from environment", cfg.LogLevel)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("HOUSEPOINTS_ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	if _, err := Load(); err != nil {
		t.Errorf("missing dotenv file should be ignored: %v", err)
	}
}

func TestLocation(t *testing.T) {
	cfg := Config{Timezone: "UTC"}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location() = %v, %v", loc, err)
	}
	cfg.Timezone = "Mars/Olympus"
	if _, err := cfg.Location(); err == nil {
		t.Error("expected error for unknown zone")
	}
}
