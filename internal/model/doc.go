// Package model defines the core data structures used throughout
// stitcher-scraper.
//
// # Feed
//
// FeedData is the fully materialized result of parsing a feed document:
//
//	data := &model.FeedData{Feed: model.FeedRecord{Name: "Comedy Bang Bang"}}
//	fmt.Println(len(data.Episodes))
//
// # Episode ordering
//
// Episodes are stored in document order, which the upstream service emits
// newest-first. Consumers that want oldest-first order must walk the slice
// in reverse. TrackNumber converts an index into a 1-based, oldest-first
// track number.
//
// # Rename manifest
//
// RenameManifestEntry records a single old → new filename pair for one
// organize run.
package model
