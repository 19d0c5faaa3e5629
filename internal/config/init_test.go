package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_PORT", "GIN_MODE", "POST_ID_STRATEGY", "CORS_ALLOW_ORIGINS",
		"REDIS_ADDR", "REDIS_DB", "EVENT_BATCH_SIZE", "EVENT_FLUSH_INTERVAL", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.AppPort != "5002" {
		t.Errorf("AppPort = %q, want 5002", cfg.AppPort)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.PostIDStrategy != "max" {
		t.Errorf("PostIDStrategy = %q, want max", cfg.PostIDStrategy)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
	if cfg.RedisChannel != "posts:events" || cfg.RedisFeedKey != "posts:feed" || cfg.RedisFeedSize != 100 {
		t.Errorf("redis defaults = %q %q %d", cfg.RedisChannel, cfg.RedisFeedKey, cfg.RedisFeedSize)
	}
	if cfg.EventBatchSize != 100 || cfg.EventBufferSize != 1024 || cfg.EventFlushInterval != time.Second {
		t.Errorf("event defaults = %d %d %v", cfg.EventBatchSize, cfg.EventBufferSize, cfg.EventFlushInterval)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("POST_ID_STRATEGY", "sequence")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("EVENT_BATCH_SIZE", "not-a-number")
	t.Setenv("EVENT_FLUSH_INTERVAL", "250ms")

	cfg := Load()
	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", cfg.AppPort)
	}
	if cfg.PostIDStrategy != "sequence" {
		t.Errorf("PostIDStrategy = %q, want sequence", cfg.PostIDStrategy)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "http://a.test" || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 3 {
		t.Errorf("redis = %q db %d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.EventBatchSize != 100 {
		t.Errorf("EventBatchSize = %d, want fallback 100", cfg.EventBatchSize)
	}
	if cfg.EventFlushInterval != 250*time.Millisecond {
		t.Errorf("EventFlushInterval = %v, want 250ms", cfg.EventFlushInterval)
	}
}

func TestConfig_Validate_CORSOrigins(t *testing.T) {
	tests := []struct {
		origins []string
		wantErr bool
	}{
		{[]string{"*"}, false},
		{nil, false},
		{[]string{"http://a.test", "https://b.test:8443"}, false},
		{[]string{"example.com"}, true},
		{[]string{"https://ok.test", "ftp://files.test"}, true},
	}
	for _, tt := range tests {
		cfg := &Config{CORSOrigins: tt.origins}
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) err = %v, wantErr %v", tt.origins, err, tt.wantErr)
		}
	}
}

func TestLoad_SchemelessOriginFailsValidation(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "example.com")

	if err := Load().Validate(); err == nil {
		t.Fatal("Validate accepted origin without scheme")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("BLOGAPI_TEST_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BLOGAPI_TEST_KEY", "")
	os.Unsetenv("BLOGAPI_TEST_KEY")

	if !LoadDotEnv(path) {
		t.Fatal("LoadDotEnv returned false for existing file")
	}
	if got := os.Getenv("BLOGAPI_TEST_KEY"); got != "from-dotenv" {
		t.Errorf("BLOGAPI_TEST_KEY = %q, want from-dotenv", got)
	}
	if LoadDotEnv(filepath.Join(dir, "missing.env")) {
		t.Error("LoadDotEnv returned true for missing file")
	}
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		logger, err := NewLogger(env)
		if err != nil {
			t.Fatalf("NewLogger(%q) failed: %v", env, err)
		}
		if logger == nil {
			t.Fatalf("NewLogger(%q) returned nil", env)
		}
	}
}
