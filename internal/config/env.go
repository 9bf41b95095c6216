package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide CLI flag defaults.
const (
	EnvDB         = "SLICER_DB"
	EnvConfig     = "SLICER_CONFIG"
	EnvDifficulty = "SLICER_DIFFICULTY"
	EnvSSHAddr    = "SLICER_SSH_ADDR"
	EnvLogLevel   = "SLICER_LOG_LEVEL"
)

// LoadEnv reads KEY=VALUE files (./.env when none are given) into the
// environment. Missing files are skipped; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
