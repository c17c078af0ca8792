// Package config provides configuration management for the feed tools.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment overrides, optionally loaded from a .env file
//   - The built-in table of known feed IDs
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Archives feeds under ./feeds
//	// Requests up to 10000 episodes per feed
//	// Writes renames.tsv after a rename pass
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
//	config.LoadEnv()      // .env, then .env.local
//	settings.ApplyEnv()   // STITCHER_SERVICE_URL, STITCHER_FEEDS_DIR, ...
//
// # Known Feeds
//
// The feed table maps show names to numeric feed IDs:
//
//	feeds := config.DefaultFeedTable()
//	id, ok := feeds.Lookup("ComedyBangBang") // "96916"
package config
