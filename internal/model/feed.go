package model

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// FeedRecord holds feed-level metadata.
//
// Genre and ImageURL come from attributes on the root feed element; Name
// comes from the text of the nested name element.
type FeedRecord struct {
	// Genre is the feed genre, written to the ID3 genre frame.
	Genre string

	// ImageURL is the feed artwork URL. The artwork is downloaded once
	// per tagging run and embedded in every tagged file.
	ImageURL string

	// Name is the show name, used for album/artist tags and renamed files.
	Name string
}

// EpisodeRecord represents a single episode within a feed.
//
// FileName is always derived from URL via FileNameFromURL and never
// supplied independently.
type EpisodeRecord struct {
	// FileName is the percent-decoded last path segment of URL. Empty when
	// the URL path names no file.
	FileName string

	// PublishedAt is the raw "YYYY-MM-DD HH:MM:SS" publish timestamp.
	PublishedAt string

	// URL is the episode download URL.
	URL string

	// Title is the episode title. Empty when the feed has none.
	Title string

	// Description is the episode description. Empty when the feed has none.
	Description string
}

// HasTitle returns true if the episode carries a title.
func (e *EpisodeRecord) HasTitle() bool {
	return e.Title != ""
}

// PublishedDate returns the date portion (before the first space) of PublishedAt.
func (e *EpisodeRecord) PublishedDate() string {
	date, _, _ := strings.Cut(e.PublishedAt, " ")
	return date
}

// FeedData is a parsed feed: its metadata plus every episode in document
// order (newest-first). It is built once per run and not modified afterwards.
type FeedData struct {
	Feed     FeedRecord
	Episodes []EpisodeRecord
}

// TrackNumber returns the 1-based, oldest-first track number for the episode
// at index i (0 being the newest).
func (d *FeedData) TrackNumber(i int) int {
	return len(d.Episodes) - i
}

// NewEpisodeRecord creates an EpisodeRecord with FileName derived from rawURL.
func NewEpisodeRecord(rawURL, publishedAt string) (EpisodeRecord, error) {
	fileName, err := FileNameFromURL(rawURL)
	if err != nil {
		return EpisodeRecord{}, err
	}
	return EpisodeRecord{
		FileName:    fileName,
		PublishedAt: publishedAt,
		URL:         rawURL,
	}, nil
}

// FileNameFromURL returns the percent-decoded last segment of the URL path.
// It returns an empty name when the path has no usable last segment.
//
// Example:
//
//	FileNameFromURL("https://cdn.example.com/audio/Ep%201%20-%20Pilot.mp3")
//	// Returns "Ep 1 - Pilot.mp3"
func FileNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid episode URL %q: %w", rawURL, err)
	}

	// Decode after splitting so an encoded slash stays inside the segment.
	base := path.Base(u.EscapedPath())
	fileName, err := url.PathUnescape(base)
	if err != nil {
		return "", fmt.Errorf("invalid episode URL path %q: %w", rawURL, err)
	}
	switch fileName {
	case ".", "..", "/":
		return "", nil
	}
	return fileName, nil
}
