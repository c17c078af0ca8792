// Package ioutils provides stream, file system and image utilities.
//
// # Streams
//
//	// Copy a stream until EOF or failure
//	err := ioutils.CopyStream(ctx, resp.Body, file)
//
//	// Feed one source to an archive file and a parser at the same time
//	err := ioutils.Tee(ctx, resp.Body, file, func(r io.Reader) error {
//	    _, err := extractor.Extract(r)
//	    return err
//	})
//
// # Files
//
//	// Write URLs oldest-first
//	err := ioutils.WriteReversedLines("96916.txt", urls)
//
//	// Write the rename manifest
//	err := ioutils.WriteManifest("/podcasts/renames.tsv", entries)
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName(`Ep: "Title" <1>`) // Returns "Ep - 'Title' 1"
//
// # Image Processing
//
//	svc := ioutils.NewImageService()
//	small, _ := svc.FitWithin(ctx, artwork, 1000)
package ioutils
