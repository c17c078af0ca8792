package model

import (
	"testing"
)

func TestFileNameFromURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://cdn.example.com/audio/episode.mp3", "episode.mp3"},
		{"https://cdn.example.com/audio/Ep%201%20-%20Pilot.mp3", "Ep 1 - Pilot.mp3"},
		{"https://cdn.example.com/audio/episode.mp3?token=abc", "episode.mp3"},
		{"https://cdn.example.com/a%2Fb.mp3", "a/b.mp3"},
		{"https://cdn.example.com/caf%C3%A9.mp3", "café.mp3"},
		{"https://cdn.example.com", ""},
		{"https://cdn.example.com/", ""},
		{"https://cdn.example.com/audio/..", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := FileNameFromURL(tt.input)
			if err != nil {
				t.Fatalf("FileNameFromURL(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("FileNameFromURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFileNameFromURL_Invalid(t *testing.T) {
	if _, err := FileNameFromURL("http://[::1"); err == nil {
		t.Error("expected error for malformed URL")
	}
}

func TestNewEpisodeRecord(t *testing.T) {
	ep, err := NewEpisodeRecord("https://example.com/shows/cbb%20100.mp3", "2020-06-28 21:02:39")
	if err != nil {
		t.Fatalf("NewEpisodeRecord failed: %v", err)
	}
	if ep.FileName != "cbb 100.mp3" {
		t.Errorf("FileName = %q, want %q", ep.FileName, "cbb 100.mp3")
	}
	if ep.PublishedDate() != "2020-06-28" {
		t.Errorf("PublishedDate() = %q, want %q", ep.PublishedDate(), "2020-06-28")
	}
	if ep.HasTitle() || ep.Description != "" {
		t.Error("new episode should have no title or description")
	}
}

func TestFeedData_TrackNumber(t *testing.T) {
	data := &FeedData{Episodes: make([]EpisodeRecord, 5)}

	// Newest episode (index 0) gets the highest number.
	if got := data.TrackNumber(0); got != 5 {
		t.Errorf("TrackNumber(0) = %d, want 5", got)
	}
	if got := data.TrackNumber(4); got != 1 {
		t.Errorf("TrackNumber(4) = %d, want 1", got)
	}
}
