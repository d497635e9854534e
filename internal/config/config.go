package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	defaultPort         = 8000
	defaultMigrationDir = "file://db/migration"
)

type Config struct {
	Stage        string
	Port         int
	DatabaseUrl  string
	MigrationDir string
}

// Load reads the environment. Outside prod the variables may come from
// a .env file.
func Load(envFiles ...string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if len(envFiles) == 0 {
			envFiles = []string{".env"}
		}
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:        os.Getenv("STAGE"),
		Port:         defaultPort,
		DatabaseUrl:  os.Getenv("DATABASE_URL"),
		MigrationDir: os.Getenv("MIGRATION_DIR"),
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %q", cfg.Stage)
	}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid port %q: %w", portEnv, err)
		}
		cfg.Port = port
	}

	if cfg.MigrationDir == "" {
		cfg.MigrationDir = defaultMigrationDir
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseUrl != ""
}
