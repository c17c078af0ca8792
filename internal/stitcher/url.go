package stitcher

import (
	"fmt"
	"net/url"
	"strconv"
)

// DefaultServiceURL is the feed-details endpoint of the remote service.
const DefaultServiceURL = "https://app.stitcher.com/Service/GetFeedDetailsWithEpisodes.php"

// Options controls which slice of a feed's episode catalog is requested.
type Options struct {
	// Count is the maximum number of episodes returned.
	Count int

	// Season selects a season; -1 means all seasons.
	Season int

	// Offset skips that many of the newest episodes.
	Offset int
}

// DefaultOptions returns the service's default page: ten episodes, all
// seasons, from the newest.
func DefaultOptions() Options {
	return Options{
		Count:  10,
		Season: -1,
		Offset: 0,
	}
}

// FullCatalogOptions returns options that request up to count episodes in
// a single document, which in practice is the whole back catalog.
func FullCatalogOptions(count int) Options {
	opts := DefaultOptions()
	opts.Count = count
	return opts
}

// FeedURL builds the request URL for a feed document.
func FeedURL(serviceURL, feedID, userID string, opts Options) string {
	if serviceURL == "" {
		serviceURL = DefaultServiceURL
	}
	return fmt.Sprintf("%s?mode=webApp&fid=%s&s=%s&id_Season=%s&uid=%s&c=%s",
		serviceURL,
		url.QueryEscape(feedID),
		strconv.Itoa(opts.Offset),
		strconv.Itoa(opts.Season),
		url.QueryEscape(userID),
		strconv.Itoa(opts.Count),
	)
}
