package cli

import (
	"fmt"

	"github.com/laurence-myers/stitcher-scraper/internal/config"
)

// LoadSettings loads a .env file if present, then the JSON settings at
// path (defaults when path is empty or missing), then applies environment
// overrides. It returns the .env path that was loaded, if any.
func LoadSettings(path string) (*config.Settings, string, error) {
	envPath, err := config.LoadEnv()
	if err != nil {
		return nil, "", err
	}

	settings := config.DefaultSettings()
	if path != "" {
		settings, err = config.Load(path)
		if err != nil {
			return nil, envPath, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	settings.ApplyEnv()
	return settings, envPath, nil
}
