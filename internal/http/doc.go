// Package http provides the HTTP client used to fetch feed documents and
// feed artwork.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Streaming downloads for large feed documents
//   - In-memory downloads for artwork
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient("stitcher-scraper", 5*time.Minute)
//
//	body, err := client.OpenStream(ctx, feedURL)
//	if err != nil {
//	    return err
//	}
//	defer body.Close()
//
// # Progress Tracking
//
// The ProgressWriter type can wrap any io.Writer to count bytes:
//
//	pw := &http.ProgressWriter{Writer: file, Total: body.ContentLength}
package http
