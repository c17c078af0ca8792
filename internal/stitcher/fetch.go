package stitcher

import (
	"context"
	"fmt"
	"io"
	"os"

	httpclient "github.com/laurence-myers/stitcher-scraper/internal/http"
	ioutils "github.com/laurence-myers/stitcher-scraper/internal/io"
)

// FetcherConfig holds the locations and paging used by a Fetcher.
type FetcherConfig struct {
	ServiceURL string
	FeedsDir   string
	OutputDir  string
	Options    Options
}

// FetchResult describes a completed fetch.
type FetchResult struct {
	// URLs holds every episode URL in document order (newest-first).
	URLs []string

	ArchivePath string
	URLListPath string

	// Bytes is the size of the archived document.
	Bytes int64
}

// Fetcher downloads a feed document, archives it and extracts its
// episode URLs in a single pass over the response body.
type Fetcher struct {
	client *httpclient.Client
	cfg    FetcherConfig

	// OnProgress, if set, is called as archived bytes accumulate. total is
	// -1 when the server sends no Content-Length.
	OnProgress func(written, total int64)
}

// NewFetcher creates a Fetcher.
func NewFetcher(client *httpclient.Client, cfg FetcherConfig) *Fetcher {
	return &Fetcher{
		client: client,
		cfg:    cfg,
	}
}

// Fetch requests the feed for feedID as userID.
//
// The response body is teed to the archive file and to a URL-list
// extractor. Both must succeed; a failure in either aborts the other.
// The URL list is then written oldest-first, one URL per line.
func (f *Fetcher) Fetch(ctx context.Context, userID, feedID string) (*FetchResult, error) {
	feedURL := FeedURL(f.cfg.ServiceURL, feedID, userID, f.cfg.Options)

	stream, err := f.client.OpenStream(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("request feed %s: %w", feedID, err)
	}
	defer stream.Close()

	if err := ioutils.EnsureDir(f.cfg.FeedsDir); err != nil {
		return nil, err
	}

	res := &FetchResult{
		ArchivePath: ArchivePath(f.cfg.FeedsDir, feedID),
		URLListPath: URLListPath(f.cfg.OutputDir, feedID),
	}

	archive, err := os.Create(res.ArchivePath)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}

	sink := &httpclient.ProgressWriter{
		Writer:   archive,
		Total:    stream.ContentLength,
		OnUpdate: f.OnProgress,
	}

	teeErr := ioutils.Tee(ctx, stream, sink, func(r io.Reader) error {
		urls, err := ExtractURLs(r)
		res.URLs = urls
		return err
	})
	closeErr := archive.Close()
	if teeErr != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedID, teeErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("close archive: %w", closeErr)
	}
	res.Bytes = sink.Written

	if err := ioutils.EnsureDir(f.cfg.OutputDir); err != nil {
		return nil, err
	}
	if err := ioutils.WriteReversedLines(res.URLListPath, res.URLs); err != nil {
		return nil, err
	}

	return res, nil
}
