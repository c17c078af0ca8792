// Package ioutils provides stream and file system utilities for stitcher-scraper.
//
// This package contains functions for:
//   - Stream copying and single-source fan-out
//   - Line and manifest writing
//   - Filename sanitization
//   - Directory creation
package ioutils

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/laurence-myers/stitcher-scraper/internal/model"
)

// invalidFileNameChars matches characters stripped by SanitizeFileName.
var invalidFileNameChars = regexp.MustCompile(`[<>:/\\|?*]`)

// SanitizeFileName maps arbitrary text to a string safe to use as a file name.
//
// The following transformations are applied, in order:
//   - The first ": " is replaced with " - "
//   - Double quotes are replaced with single quotes
//   - The characters < > : / \ | ? * are removed
//   - Leading and trailing whitespace is trimmed
//
// There is no length limit and no Unicode normalization.
//
// Example:
//
//	SanitizeFileName(`Ep: "Title" <1>`) // Returns "Ep - 'Title' 1"
func SanitizeFileName(name string) string {
	name = strings.Replace(name, ": ", " - ", 1)
	name = strings.ReplaceAll(name, `"`, "'")
	name = invalidFileNameChars.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteReversedLines writes lines to path in reverse order, one per line.
//
// The feed lists episodes newest-first, so this produces an oldest-first
// file: line k of the output is lines[len(lines)-1-k].
//
// The file is created with mode 0644, or truncated if it exists.
func WriteReversedLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i := len(lines) - 1; i >= 0; i-- {
		if _, err := w.WriteString(lines[i] + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}

// WriteManifest writes rename entries to path as tab-separated rows
// (old name, new name) with no header, in the order given.
func WriteManifest(path string, entries []model.RenameManifestEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, entry := range entries {
		if _, err := w.WriteString(entry.OldFileName + "\t" + entry.NewFileName + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}
