package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DATA_DIR points the scenario at a persistent store instead
	// of a per-test temporary directory
	DataDir string `envconfig:"E2E_DATA_DIR"`
	// E2E_DEBUG_LOGS enables debug-level component logging
	DebugLogs bool `envconfig:"E2E_DEBUG_LOGS" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
