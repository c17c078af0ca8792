package audio

import (
	"fmt"
	"strings"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// FormatM3U creates extended .m3u files (most compatible).
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS
)

// ParsePlaylistFormat maps a settings value ("m3u", "pls") to a format.
// Unknown values fall back to FormatM3U.
func ParsePlaylistFormat(s string) PlaylistFormat {
	if strings.EqualFold(s, "pls") {
		return FormatPLS
	}
	return FormatM3U
}

// Extension returns the file extension for the format, including the dot.
func (pf PlaylistFormat) Extension() string {
	if pf == FormatPLS {
		return ".pls"
	}
	return ".m3u"
}

// PlaylistEntry is one episode file in a playlist.
type PlaylistEntry struct {
	// FileName is relative to the playlist's directory.
	FileName string

	// Title is shown by players that read extended info.
	Title string
}

// PlaylistCreator generates playlists for an organized feed directory.
//
// Episode durations are not known, so extended entries use -1 as the
// length, which players treat as "unknown".
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U)
//	content := creator.CreatePlaylist(entries)
//	os.WriteFile(filepath.Join(dir, "Show.m3u"), []byte(content), 0644)
type PlaylistCreator struct {
	format PlaylistFormat
}

// NewPlaylistCreator creates a new PlaylistCreator.
func NewPlaylistCreator(format PlaylistFormat) *PlaylistCreator {
	return &PlaylistCreator{format: format}
}

// Format returns the configured playlist format.
func (p *PlaylistCreator) Format() PlaylistFormat {
	return p.format
}

// CreatePlaylist renders entries in the order given.
func (p *PlaylistCreator) CreatePlaylist(entries []PlaylistEntry) string {
	if p.format == FormatPLS {
		return p.createPLS(entries)
	}
	return p.createM3U(entries)
}

// createM3U generates an extended M3U playlist:
//
//	#EXTM3U
//	#EXTINF:-1,Title
//	filename1.mp3
func (p *PlaylistCreator) createM3U(entries []PlaylistEntry) string {
	var sb strings.Builder

	sb.WriteString("#EXTM3U\n")
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", entry.Title))
		sb.WriteString(entry.FileName + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist:
//
//	[playlist]
//	File1=filename1.mp3
//	Title1=Title
//	Length1=-1
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(entries []PlaylistEntry) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")
	for i, entry := range entries {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, entry.FileName))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, entry.Title))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}
	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(entries)))
	sb.WriteString("Version=2\n")

	return sb.String()
}
