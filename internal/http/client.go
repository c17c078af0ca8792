package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "stitcher-scraper"

// Client wraps HTTP operations used to fetch feeds and artwork.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Streaming GET for large feed documents
//   - In-memory GET for small files like artwork
//
// Example usage:
//
//	client := NewClient("stitcher-scraper", 5*time.Minute)
//
//	// Stream a feed document
//	body, err := client.OpenStream(ctx, feedURL)
//	defer body.Close()
//
//	// Download artwork
//	image, err := client.DownloadBytes(ctx, imageURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// An empty userAgent falls back to DefaultUserAgent. A zero timeout means
// no timeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// ProgressWriter wraps a writer to count bytes passing through it.
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: file,
//	    OnUpdate: func(written, total int64) {
//	        fmt.Printf("%d bytes\n", written)
//	    },
//	}
//	io.Copy(pw, response.Body)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes, or -1 if unknown.
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// Stream is an open response body plus its advertised length.
type Stream struct {
	io.ReadCloser

	// ContentLength is the Content-Length header, or -1 if unknown.
	ContentLength int64
}

// OpenStream performs a GET request and returns the unread response body.
//
// The caller must Close the returned stream. Returns an error if the
// request fails or the response status is not 200 OK.
func (c *Client) OpenStream(ctx context.Context, url string) (*Stream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return &Stream{ReadCloser: resp.Body, ContentLength: resp.ContentLength}, nil
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	stream, err := c.OpenStream(ctx, url)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	return io.ReadAll(stream)
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like cover art. Feed documents should be
// streamed with OpenStream instead.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
