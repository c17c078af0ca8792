package stitcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/laurence-myers/stitcher-scraper/internal/model"
)

// ArchivePath returns where the raw feed document for feedID is archived.
func ArchivePath(feedsDir, feedID string) string {
	return filepath.Join(feedsDir, feedID+".xml")
}

// URLListPath returns where the plain-text URL list for feedID is written.
func URLListPath(outputDir, feedID string) string {
	return filepath.Join(outputDir, feedID+".txt")
}

// OpenLocal opens a previously archived feed document.
func OpenLocal(feedsDir, feedID string) (io.ReadCloser, error) {
	f, err := os.Open(ArchivePath(feedsDir, feedID))
	if err != nil {
		return nil, fmt.Errorf("open archived feed %s: %w", feedID, err)
	}
	return f, nil
}

// LoadFeed parses an archived feed document into a FeedData.
func LoadFeed(feedsDir, feedID string) (*model.FeedData, error) {
	r, err := OpenLocal(feedsDir, feedID)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := ExtractFeed(r)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", feedID, err)
	}
	return data, nil
}
