package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("unexpected api base url %q", cfg.APIBaseURL)
	}
	if cfg.NotifyPollInterval != defaultNotifyPollInterval {
		t.Fatalf("unexpected notify interval %v", cfg.NotifyPollInterval)
	}
	if cfg.WorkerPoolSize != defaultWorkerPoolSize {
		t.Fatalf("unexpected worker pool size %d", cfg.WorkerPoolSize)
	}
	if !cfg.SeedSampleData {
		t.Fatal("expected sample data seeding on by default")
	}
	if cfg.SessionFile == "" {
		t.Fatal("expected a default session file path")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":          ":9090",
		"DATABASE_URI":         "postgres://db/orders",
		"API_BASE_URL":         "https://api.example.com",
		"NOTIFY_POLL_INTERVAL": "30s",
		"NOTIFY_BATCH_SIZE":    "5",
		"SEED_SAMPLE_DATA":     "false",
	}
	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RunAddress != ":9090" || cfg.DatabaseURI != "postgres://db/orders" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("unexpected api base url %q", cfg.APIBaseURL)
	}
	if cfg.NotifyPollInterval != 30*time.Second {
		t.Fatalf("unexpected notify interval %v", cfg.NotifyPollInterval)
	}
	if cfg.NotifyBatchSize != 5 {
		t.Fatalf("unexpected batch size %d", cfg.NotifyBatchSize)
	}
	if cfg.SeedSampleData {
		t.Fatal("expected seeding disabled")
	}
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	env := map[string]string{"RUN_ADDRESS": ":9090"}
	cfg, err := load([]string{"-a", ":7070", "-api", "http://10.0.0.2:8080"}, lookupFrom(env))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("flag should win, got %q", cfg.RunAddress)
	}
	if cfg.APIBaseURL != "http://10.0.0.2:8080" {
		t.Fatalf("unexpected api base url %q", cfg.APIBaseURL)
	}
}

func TestLoadTokenSecretFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret")
	if err := os.WriteFile(path, []byte("super-secret"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	cfg, err := load(nil, lookupFrom(map[string]string{"TOKEN_SECRET_FILE": path}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenSecret != "super-secret" {
		t.Fatalf("unexpected secret %q", cfg.TokenSecret)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	if _, err := load([]string{"-notify-interval", "soon"}, lookupFrom(nil)); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoadPositionalArgs(t *testing.T) {
	cfg, err := load([]string{"-api", "http://10.0.0.2:8080", "orders", "-status", "pending"}, lookupFrom(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"orders", "-status", "pending"}
	if len(cfg.Args) != len(want) {
		t.Fatalf("unexpected args %v", cfg.Args)
	}
	for i, arg := range want {
		if cfg.Args[i] != arg {
			t.Fatalf("unexpected args %v", cfg.Args)
		}
	}
}

func TestLoadSanitizesNonPositives(t *testing.T) {
	cfg, err := load([]string{"-notify-batch", "-1", "-worker-pool", "0"}, lookupFrom(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NotifyBatchSize != defaultNotifyBatchSize {
		t.Fatalf("expected batch size fallback, got %d", cfg.NotifyBatchSize)
	}
	if cfg.WorkerPoolSize != defaultWorkerPoolSize {
		t.Fatalf("expected worker pool fallback, got %d", cfg.WorkerPoolSize)
	}
}
