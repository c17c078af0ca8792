// Package organizer tags and renames a directory of downloaded episode
// files using a feed parsed by package stitcher.
//
// # Basic Usage
//
//	data, err := stitcher.LoadFeed(settings.FeedsDir, feedID)
//	if err != nil {
//	    return err
//	}
//
//	org := organizer.NewOrganizer(settings, client, func(e organizer.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	summary, err := org.Run(ctx, dir, data, organizer.Options{Tag: true, Rename: true})
//
// # Episode Order
//
// Feeds list episodes newest-first. Both passes walk from the oldest
// episode (index len-1) down to index 1, so track numbers run 1, 2, 3...
// as the pass proceeds. Index 0, the newest episode, is left untouched by
// the tag and rename passes.
//
// # Failure Policy
//
// Files that are not present in the directory are skipped. A failed tag
// write or rename is reported as a LevelError event and the pass moves on.
// A failed artwork download or an unparseable publish date aborts the
// tag pass.
//
// # Progress Reporting
//
// Progress is reported through the callback with a ProgressLevel:
//   - LevelInfo: pass start messages
//   - LevelVerbose: per-file detail and skips
//   - LevelWarning: non-fatal issues
//   - LevelError: per-file failures
//   - LevelSuccess: pass completion
package organizer
