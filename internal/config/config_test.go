package config

import (
	"os"
	"testing"
)

// clearEnv unsets the keys for the duration of the test, restoring any
// previous values on cleanup, and fails if a key is still visible.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if orig, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, orig) })
			_ = os.Unsetenv(k)
		}
		if _, ok := os.LookupEnv(k); ok {
			t.Fatalf("%s is still set", k)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, envKeys...)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("port=%q want=5000", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Fatalf("environment=%q", cfg.Environment)
	}
	if !cfg.SimulateLatency {
		t.Fatalf("simulate latency should default to true")
	}
	if cfg.MetricsToken != "" {
		t.Fatalf("metrics token=%q", cfg.MetricsToken)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development mode")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t, envKeys...)

	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SIMULATE_LATENCY", "false")
	t.Setenv("METRICS_TOKEN", "scrape-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("port=%q", cfg.Port)
	}
	if cfg.Environment != "production" || cfg.IsDevelopment() {
		t.Fatalf("environment=%q", cfg.Environment)
	}
	if cfg.SimulateLatency {
		t.Fatalf("simulate latency should be off")
	}
	if cfg.MetricsToken != "scrape-token" {
		t.Fatalf("metrics token=%q", cfg.MetricsToken)
	}
}
