package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/laurence-myers/stitcher-scraper/internal/audio"
	"github.com/laurence-myers/stitcher-scraper/internal/stitcher"
)

// Settings holds all configuration options.
type Settings struct {
	// Feed source settings
	ServiceURL          string `json:"service_url"`
	UserID              string `json:"user_id,omitempty"`
	UserAgent           string `json:"user_agent"`
	HTTPTimeoutSeconds  int    `json:"http_timeout_seconds"`
	PageSize            int    `json:"page_size"`
	FullCatalogPageSize int    `json:"full_catalog_page_size"`
	Season              int    `json:"season"`
	Offset              int    `json:"offset"`

	// Output locations
	FeedsDir         string `json:"feeds_dir"`
	OutputDir        string `json:"output_dir"`
	ManifestFileName string `json:"manifest_file_name"`

	// Cover art settings
	CoverArtInTagsResize  bool `json:"cover_art_in_tags_resize"`
	CoverArtInTagsMaxSize int  `json:"cover_art_in_tags_max_size"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist"`
	PlaylistFormat string `json:"playlist_format"` // m3u, pls
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ServiceURL:          stitcher.DefaultServiceURL,
		UserAgent:           "stitcher-scraper",
		HTTPTimeoutSeconds:  300,
		PageSize:            10,
		FullCatalogPageSize: 10000,
		Season:              -1,
		Offset:              0,

		FeedsDir:         "feeds",
		OutputDir:        ".",
		ManifestFileName: "renames.tsv",

		CoverArtInTagsResize:  false,
		CoverArtInTagsMaxSize: 1000,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// HTTPTimeout returns the configured request timeout.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds) * time.Second
}

// ToFetcherConfig converts settings to a fetch configuration. The full
// catalog is requested unless latest is set, in which case only the newest
// page_size episodes are.
func (s *Settings) ToFetcherConfig(latest bool) stitcher.FetcherConfig {
	count := s.FullCatalogPageSize
	if latest {
		count = s.PageSize
	}
	return stitcher.FetcherConfig{
		ServiceURL: s.ServiceURL,
		FeedsDir:   s.FeedsDir,
		OutputDir:  s.OutputDir,
		Options: stitcher.Options{
			Count:  count,
			Season: s.Season,
			Offset: s.Offset,
		},
	}
}

// ToPlaylistFormat converts the playlist_format setting.
func (s *Settings) ToPlaylistFormat() audio.PlaylistFormat {
	return audio.ParsePlaylistFormat(s.PlaylistFormat)
}
