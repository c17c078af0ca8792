// Package stitcher reads feed documents from the podcast service's
// feed-details endpoint.
//
// The package handles three concerns:
//
//  1. Building feed request URLs (FeedURL, Options)
//  2. Extracting episode URLs or full feed records from a document
//  3. Fetching a remote document while archiving it locally
//
// # Extraction
//
// An Extractor makes one forward pass over the document's token stream.
// Its Mode decides what is collected:
//
//	urls, err := stitcher.ExtractURLs(r)     // ModeURLList
//	data, err := stitcher.ExtractFeed(r)     // ModeFullRecord
//
// In ModeURLList every episode element carrying a url attribute is
// collected, wherever it sits. In ModeFullRecord only episode elements
// inside an episodes element are recorded.
//
// # Fetching
//
// Fetcher streams the remote document once, writing it to
// <feeds dir>/<feed id>.xml while the URL extractor reads the same bytes:
//
//	f := stitcher.NewFetcher(client, stitcher.FetcherConfig{
//	    FeedsDir:  "feeds",
//	    OutputDir: ".",
//	    Options:   stitcher.FullCatalogOptions(10000),
//	})
//	res, err := f.Fetch(ctx, userID, feedID)
//
// Documents list episodes newest-first. The URL list file is written in
// reverse so that it reads oldest-first.
package stitcher
