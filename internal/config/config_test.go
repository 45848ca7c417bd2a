package config

import (
	"testing"
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected app env dev, got %s", cfg.AppEnv)
	}
	if cfg.ServiceName != "fantasy-engine" {
		t.Fatalf("expected service name fantasy-engine, got %s", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("unexpected timeouts: read=%v write=%v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty db url, got %s", cfg.DBURL)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 30*time.Second {
		t.Fatalf("unexpected cache config: enabled=%t ttl=%v", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if !cfg.SweeperEnabled || cfg.SweepInterval != 30*time.Second || cfg.SweepWorkers != 4 {
		t.Fatalf("unexpected sweeper config: enabled=%t interval=%v workers=%d", cfg.SweeperEnabled, cfg.SweepInterval, cfg.SweepWorkers)
	}
	if cfg.UptraceEnabled || cfg.PyroscopeEnabled || cfg.PprofEnabled {
		t.Fatal("expected observability extras disabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("HTTP_READ_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_URL", "postgres://localhost:5432/fantasy")
	t.Setenv("AUCTION_SWEEP_INTERVAL", "1m")
	t.Setenv("AUCTION_SWEEP_WORKERS", "8")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("expected app env prod, got %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected addr :9090, got %s", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %v", cfg.ReadTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.DBURL != "postgres://localhost:5432/fantasy" {
		t.Fatalf("unexpected db url: %s", cfg.DBURL)
	}
	if cfg.SweepInterval != time.Minute || cfg.SweepWorkers != 8 {
		t.Fatalf("unexpected sweeper config: interval=%v workers=%d", cfg.SweepInterval, cfg.SweepWorkers)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad app env", key: "APP_ENV", value: "staging-2"},
		{name: "bad read timeout", key: "HTTP_READ_TIMEOUT", value: "soon"},
		{name: "bad cache flag", key: "CACHE_ENABLED", value: "maybe"},
		{name: "bad sweep workers", key: "AUCTION_SWEEP_WORKERS", value: "-1"},
		{name: "uptrace without dsn", key: "UPTRACE_ENABLED", value: "true"},
		{name: "pyroscope without address", key: "PYROSCOPE_ENABLED", value: "true"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatal("expected load to fail")
			}
		})
	}
}

func TestUptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=https://token@api.uptrace.dev/42,other=1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/42" {
		t.Fatalf("unexpected dsn: %s", cfg.UptraceDSN)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logging.Level
	}{
		{"debug", logging.LevelDebug},
		{"info", logging.LevelInfo},
		{"warn", logging.LevelWarn},
		{"warning", logging.LevelWarn},
		{"error", logging.LevelError},
		{"", logging.LevelInfo},
		{"unknown", logging.LevelInfo},
	}

	for _, tc := range tests {
		if got := parseLogLevel(tc.in); got != tc.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
