package config

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadFromEnvFile(t *testing.T) {
	for _, key := range []string{"STAGE", "PORT", "DATABASE_URL", "MIGRATION_DIR"} {
		unsetenv(t, key)
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("STAGE=dev\nPORT=9191\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Stage != StageDev {
		t.Fatalf("expected stage: %s\tgot: %s", StageDev, cfg.Stage)
	}
	if cfg.Port != 9191 {
		t.Fatalf("expected port: %d\tgot: %d", 9191, cfg.Port)
	}
	if cfg.MigrationDir != defaultMigrationDir {
		t.Fatalf("expected migration dir: %s\tgot: %s", defaultMigrationDir, cfg.MigrationDir)
	}
	if cfg.AnalyticsEnabled() {
		t.Fatal("analytics must be off without a database url")
	}
}

func TestLoadProd(t *testing.T) {
	t.Setenv("STAGE", StageProd)
	t.Setenv("DATABASE_URL", "postgres://localhost/battleship")
	unsetenv(t, "PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected port: %d\tgot: %d", defaultPort, cfg.Port)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Fatalf("expected addr: %s\tgot: %s", "0.0.0.0:8000", cfg.Addr())
	}
	if !cfg.AnalyticsEnabled() {
		t.Fatal("analytics must be on with a database url")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		stage string
		port  string
	}{
		{name: "invalid stage", stage: "staging", port: "8000"},
		{name: "invalid port", stage: StageDev, port: "eighty"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("STAGE", test.stage)
			t.Setenv("PORT", test.port)

			// an empty env file so godotenv has something to load
			envFile := filepath.Join(t.TempDir(), ".env")
			if err := os.WriteFile(envFile, nil, 0o600); err != nil {
				t.Fatal(err)
			}

			if _, err := Load(envFile); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
