package config

import (
	"path/filepath"
	"sync"

	"fjacquet/sales-report/internal/fileutils"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads a .env file from the current or parent directory, once.
// It returns the file it loaded, or "" when none was found.
func LoadEnv() string {
	var loaded string
	envOnce.Do(func() {
		loaded = loadEnvFile()
	})
	return loaded
}

func loadEnvFile() string {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if !fileutils.FileExists(envFile) {
			continue
		}
		// godotenv never overrides variables already set in the environment.
		if err := godotenv.Load(envFile); err != nil {
			return ""
		}
		return envFile
	}
	return ""
}

// DelimiterRune returns the first rune of the configured delimiter.
func (c InputConfig) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}

// Validate re-checks a Config, for callers that override fields after loading.
func (c *Config) Validate() error {
	return validateConfig(c)
}
