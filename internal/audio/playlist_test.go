package audio

import (
	"strings"
	"testing"
)

func testEntries() []PlaylistEntry {
	return []PlaylistEntry{
		{FileName: "Show - 2020-01-01 - First.mp3", Title: "First"},
		{FileName: "Show - 2020-01-08 - Second.mp3", Title: "Second"},
	}
}

func TestPlaylistCreator_M3U(t *testing.T) {
	content := NewPlaylistCreator(FormatM3U).CreatePlaylist(testEntries())

	want := "#EXTM3U\n" +
		"#EXTINF:-1,First\nShow - 2020-01-01 - First.mp3\n" +
		"#EXTINF:-1,Second\nShow - 2020-01-08 - Second.mp3\n"
	if content != want {
		t.Errorf("M3U content = %q, want %q", content, want)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	content := NewPlaylistCreator(FormatPLS).CreatePlaylist(testEntries())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File2=Show - 2020-01-08 - Second.mp3") {
		t.Error("PLS should contain File2 entry")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries=2")
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		input string
		want  PlaylistFormat
		ext   string
	}{
		{"m3u", FormatM3U, ".m3u"},
		{"PLS", FormatPLS, ".pls"},
		{"wpl", FormatM3U, ".m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParsePlaylistFormat(tt.input)
			if got != tt.want {
				t.Errorf("ParsePlaylistFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.Extension() != tt.ext {
				t.Errorf("Extension() = %q, want %q", got.Extension(), tt.ext)
			}
		})
	}
}
