package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laurence-myers/stitcher-scraper/internal/audio"
	"github.com/laurence-myers/stitcher-scraper/internal/stitcher"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	s := DefaultSettings()
	s.FeedsDir = "/archive"
	s.CreatePlaylist = true
	s.PlaylistFormat = "pls"
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
	assert.Equal(t, audio.FormatPLS, loaded.ToPlaylistFormat())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"page_size": 25}`), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, s.PageSize)
	assert.Equal(t, 10000, s.FullCatalogPageSize)
	assert.Equal(t, "renames.tsv", s.ManifestFileName)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSettings_Conversions(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 5*time.Minute, s.HTTPTimeout())
	assert.Equal(t, audio.FormatM3U, s.ToPlaylistFormat())

	fc := s.ToFetcherConfig(false)
	assert.Equal(t, stitcher.DefaultServiceURL, fc.ServiceURL)
	assert.Equal(t, "feeds", fc.FeedsDir)
	assert.Equal(t, stitcher.FullCatalogOptions(10000), fc.Options)

	s.PageSize = 25
	assert.Equal(t, stitcher.FullCatalogOptions(25), s.ToFetcherConfig(true).Options)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvServiceURL, "http://localhost:9999/feed")
	t.Setenv(EnvFeedsDir, " /tmp/feeds ")
	t.Setenv(EnvUserAgent, "")
	t.Setenv(EnvUserID, "123")

	s := DefaultSettings()
	s.ApplyEnv()

	assert.Equal(t, "http://localhost:9999/feed", s.ServiceURL)
	assert.Equal(t, "/tmp/feeds", s.FeedsDir)
	assert.Equal(t, "stitcher-scraper", s.UserAgent, "empty variable must not override")
	assert.Equal(t, "123", s.UserID)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "missing.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(second, []byte("STITCHER_USER_ID=4242\n"), 0644))

	// Clear so godotenv is allowed to set it; t.Setenv restores it afterwards.
	t.Setenv(EnvUserID, "")
	os.Unsetenv(EnvUserID)

	loaded, err := LoadEnv(first, second)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
	assert.Equal(t, "4242", os.Getenv(EnvUserID))
}

func TestLoadEnv_NoneFound(t *testing.T) {
	loaded, err := LoadEnv(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestDefaultFeedTable(t *testing.T) {
	feeds := DefaultFeedTable()

	tests := []struct {
		name string
		id   string
	}{
		{"ComedyBangBang", "96916"},
		{"AnalyzePhish", "32540"},
		{"Superego", "15981"},
		{"WompItUp", "148041"},
		{"improv4humans", "148038"},
	}
	for _, tt := range tests {
		id, ok := feeds.Lookup(tt.name)
		assert.True(t, ok, tt.name)
		assert.Equal(t, tt.id, id, tt.name)

		name, ok := feeds.NameOf(tt.id)
		assert.True(t, ok, tt.id)
		assert.Equal(t, tt.name, name)
	}

	id, ok := feeds.Lookup("comedybangbang")
	assert.True(t, ok)
	assert.Equal(t, "96916", id)

	_, ok = feeds.Lookup("NotAShow")
	assert.False(t, ok)

	entries := feeds.Entries()
	assert.Len(t, entries, 30)
	assert.Equal(t, "AnalyzePhish", entries[0].Name)
	assert.Equal(t, "WompItUp", entries[len(entries)-1].Name)

	assert.Equal(t, "96916", feeds.Resolve("ComedyBangBang"))
	assert.Equal(t, "12345", feeds.Resolve("12345"))
}

func TestParseFeedTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", "feeds: [\n"},
		{"missing id", "feeds:\n  - name: A\n"},
		{"duplicate name", "feeds:\n  - {name: A, id: \"1\"}\n  - {name: a, id: \"2\"}\n"},
		{"duplicate id", "feeds:\n  - {name: A, id: \"1\"}\n  - {name: B, id: \"1\"}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFeedTable([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
