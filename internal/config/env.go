package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override settings.
const (
	EnvServiceURL = "STITCHER_SERVICE_URL"
	EnvFeedsDir   = "STITCHER_FEEDS_DIR"
	EnvUserAgent  = "STITCHER_USER_AGENT"
	EnvUserID     = "STITCHER_USER_ID"
)

// DefaultEnvPaths are tried in order by LoadEnv.
var DefaultEnvPaths = []string{".env", ".env.local"}

// LoadEnv loads the first existing file among paths (DefaultEnvPaths when
// none are given) into the process environment. Variables already set are
// not overridden. It returns the path that was loaded, or "" if none exist.
func LoadEnv(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = DefaultEnvPaths
	}

	for _, envPath := range paths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", fmt.Errorf("error loading %s file: %w", envPath, err)
		}
		return envPath, nil
	}

	return "", nil
}

// ApplyEnv overrides settings with any non-empty STITCHER_* variables.
func (s *Settings) ApplyEnv() {
	if v := getEnv(EnvServiceURL); v != "" {
		s.ServiceURL = v
	}
	if v := getEnv(EnvFeedsDir); v != "" {
		s.FeedsDir = v
	}
	if v := getEnv(EnvUserAgent); v != "" {
		s.UserAgent = v
	}
	if v := getEnv(EnvUserID); v != "" {
		s.UserID = v
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
