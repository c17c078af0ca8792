package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"

	"github.com/laurence-myers/stitcher-scraper/internal/audio"
	"github.com/laurence-myers/stitcher-scraper/internal/config"
	"github.com/laurence-myers/stitcher-scraper/internal/http"
	ioutils "github.com/laurence-myers/stitcher-scraper/internal/io"
	"github.com/laurence-myers/stitcher-scraper/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the level name.
func (l ProgressLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("ProgressLevel(%d)", int(l))
	}
}

// ProgressEvent represents an organize progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Options selects which passes Run performs.
type Options struct {
	Tag      bool
	Rename   bool
	Playlist bool
}

// Summary counts what a run did.
type Summary struct {
	Tagged   int
	Renamed  int
	Skipped  int
	Failed   int
	Renames  []model.RenameManifestEntry
	Playlist string
}

var letterAfterComma = regexp.MustCompile(`,([a-zA-Z])`)

// Organizer tags and renames downloaded episode files using a parsed feed.
//
// Episodes are visited from the oldest (index len-1) to index 1. The
// newest episode, index 0, is never tagged or renamed.
type Organizer struct {
	settings     *config.Settings
	httpClient   *http.Client
	tagger       *audio.Tagger
	playlist     *audio.PlaylistCreator
	imageService *ioutils.ImageService

	processed int32
	total     int32

	onProgress func(ProgressEvent)
}

// NewOrganizer creates a new Organizer.
func NewOrganizer(settings *config.Settings, client *http.Client, onProgress func(ProgressEvent)) *Organizer {
	return &Organizer{
		settings:     settings,
		httpClient:   client,
		tagger:       audio.NewTagger(),
		playlist:     audio.NewPlaylistCreator(settings.ToPlaylistFormat()),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// GetProgress returns how many episodes the current pass has visited.
func (o *Organizer) GetProgress() (processed, total int32) {
	return atomic.LoadInt32(&o.processed), atomic.LoadInt32(&o.total)
}

// Run performs the requested passes in order: tag, rename, playlist.
// With neither Tag nor Rename set, both are performed.
func (o *Organizer) Run(ctx context.Context, dir string, data *model.FeedData, opts Options) (*Summary, error) {
	if !opts.Tag && !opts.Rename {
		opts.Tag = true
		opts.Rename = true
	}

	summary := &Summary{}

	if opts.Tag {
		if err := o.Tag(ctx, dir, data, summary); err != nil {
			return summary, err
		}
	}

	if opts.Rename {
		if err := o.Rename(ctx, dir, data, summary); err != nil {
			return summary, err
		}
	}

	if opts.Playlist || o.settings.CreatePlaylist {
		path, err := o.WritePlaylist(dir, data, summary.Renames)
		if err != nil {
			o.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		} else {
			summary.Playlist = path
			o.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist %s", filepath.Base(path)), Level: LevelSuccess})
		}
	}

	return summary, nil
}

// Tag writes ID3 tags to every episode file present in dir.
//
// The feed artwork is downloaded once; if that fails the pass is aborted.
// A malformed publish date also aborts the pass. Missing files are skipped
// and a failed write is reported without stopping the pass. Counts are
// added to summary, which may be nil.
func (o *Organizer) Tag(ctx context.Context, dir string, data *model.FeedData, summary *Summary) error {
	if summary == nil {
		summary = &Summary{}
	}

	cover, err := o.downloadCover(ctx, data.Feed.ImageURL)
	if err != nil {
		return err
	}

	o.progress(ProgressEvent{Message: fmt.Sprintf("Tagging %d episodes...", len(data.Episodes)), Level: LevelInfo})
	o.startPass(len(data.Episodes) - 1)

	for i := len(data.Episodes) - 1; i > 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		atomic.AddInt32(&o.processed, 1)

		episode := data.Episodes[i]
		path, ok := episodeFile(dir, episode.FileName)
		if !ok {
			summary.Skipped++
			o.progress(ProgressEvent{Message: fmt.Sprintf("File %q not found, skipping", path), Level: LevelVerbose})
			continue
		}

		tags, err := audio.NewEpisodeTags(data.Feed, episode, data.TrackNumber(i))
		if err != nil {
			return fmt.Errorf("episode %s: %w", episode.FileName, err)
		}

		if err := o.tagger.SaveTags(path, tags, cover); err != nil {
			summary.Failed++
			o.progress(ProgressEvent{Message: fmt.Sprintf("Failed to write to %q: %v", path, err), Level: LevelError})
			continue
		}

		summary.Tagged++
		o.progress(ProgressEvent{Message: fmt.Sprintf("Updated file %q", path), Level: LevelVerbose})
	}

	o.progress(ProgressEvent{Message: fmt.Sprintf("Tagged %d episodes", summary.Tagged), Level: LevelSuccess})
	return nil
}

// Rename gives every episode file present in dir a descriptive name and
// writes the manifest of completed renames. A failed rename is reported
// and the pass continues; the manifest is written regardless.
func (o *Organizer) Rename(ctx context.Context, dir string, data *model.FeedData, summary *Summary) error {
	if summary == nil {
		summary = &Summary{}
	}

	o.progress(ProgressEvent{Message: fmt.Sprintf("Renaming %d episodes...", len(data.Episodes)), Level: LevelInfo})
	o.startPass(len(data.Episodes) - 1)

	var renames []model.RenameManifestEntry
	var ctxErr error
	for i := len(data.Episodes) - 1; i > 0; i-- {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		atomic.AddInt32(&o.processed, 1)

		episode := data.Episodes[i]
		oldPath, ok := episodeFile(dir, episode.FileName)
		if !ok {
			summary.Skipped++
			o.progress(ProgressEvent{Message: fmt.Sprintf("File %q not found, skipping", oldPath), Level: LevelVerbose})
			continue
		}

		newName := NewFileName(data.Feed.Name, episode, data.TrackNumber(i))
		if err := os.Rename(oldPath, filepath.Join(dir, newName)); err != nil {
			summary.Failed++
			o.progress(ProgressEvent{Message: fmt.Sprintf("Failed to rename %q: %v", oldPath, err), Level: LevelError})
			continue
		}

		renames = append(renames, model.RenameManifestEntry{OldFileName: episode.FileName, NewFileName: newName})
		summary.Renamed++
		o.progress(ProgressEvent{Message: fmt.Sprintf("Renamed file %s => %s", episode.FileName, newName), Level: LevelVerbose})
	}
	summary.Renames = renames

	manifest := filepath.Join(dir, o.settings.ManifestFileName)
	if err := ioutils.WriteManifest(manifest, renames); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if ctxErr != nil {
		return ctxErr
	}

	o.progress(ProgressEvent{Message: fmt.Sprintf("Renamed %d episodes", summary.Renamed), Level: LevelSuccess})
	return nil
}

// NewFileName builds "<feed> - <date> - <title or number><ext>" for an
// episode, sanitized for the filesystem.
func NewFileName(feedName string, episode model.EpisodeRecord, episodeNumber int) string {
	title := episode.Title
	if !episode.HasTitle() {
		title = fmt.Sprint(episodeNumber)
	}
	title = letterAfterComma.ReplaceAllString(title, ", $1")

	name := feedName + " - " + episode.PublishedDate() + " - " + title
	return ioutils.SanitizeFileName(name) + filepath.Ext(episode.FileName)
}

// WritePlaylist writes a playlist of the episode files present in dir,
// oldest first. renames maps original file names to their new names.
func (o *Organizer) WritePlaylist(dir string, data *model.FeedData, renames []model.RenameManifestEntry) (string, error) {
	renamed := make(map[string]string, len(renames))
	for _, r := range renames {
		renamed[r.OldFileName] = r.NewFileName
	}

	var entries []audio.PlaylistEntry
	for i := len(data.Episodes) - 1; i >= 0; i-- {
		episode := data.Episodes[i]
		name := episode.FileName
		if n, ok := renamed[name]; ok {
			name = n
		}
		if _, ok := episodeFile(dir, name); !ok {
			continue
		}

		title := episode.Title
		if !episode.HasTitle() {
			title = fmt.Sprintf("%s %d", data.Feed.Name, data.TrackNumber(i))
		}
		entries = append(entries, audio.PlaylistEntry{FileName: name, Title: title})
	}

	if len(entries) == 0 {
		return "", errors.New("no episode files found")
	}

	base := ioutils.SanitizeFileName(data.Feed.Name)
	if base == "" {
		base = "playlist"
	}
	path := filepath.Join(dir, base+o.playlist.Format().Extension())
	content := o.playlist.CreatePlaylist(entries)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (o *Organizer) downloadCover(ctx context.Context, imageURL string) (*audio.Cover, error) {
	if imageURL == "" {
		o.progress(ProgressEvent{Message: "Feed has no image, tagging without artwork", Level: LevelWarning})
		return nil, nil
	}

	o.progress(ProgressEvent{Message: fmt.Sprintf("Downloading image from %q...", imageURL), Level: LevelInfo})
	artwork, err := o.httpClient.DownloadBytes(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("download feed image: %w", err)
	}

	cover := &audio.Cover{Data: artwork, MimeType: audio.CoverMimeType(imageURL)}

	if o.settings.CoverArtInTagsResize {
		resized, err := o.imageService.FitWithin(ctx, artwork, o.settings.CoverArtInTagsMaxSize)
		if err != nil {
			o.progress(ProgressEvent{Message: fmt.Sprintf("Could not resize feed image, using original: %v", err), Level: LevelWarning})
		} else {
			cover = &audio.Cover{Data: resized, MimeType: "image/jpeg"}
		}
	}

	o.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded feed image (%d bytes)", len(cover.Data)), Level: LevelVerbose})
	return cover, nil
}

func (o *Organizer) startPass(total int) {
	if total < 0 {
		total = 0
	}
	atomic.StoreInt32(&o.processed, 0)
	atomic.StoreInt32(&o.total, int32(total))
}

// episodeFile returns the path of name in dir and whether it is a regular
// file there.
func episodeFile(dir, name string) (string, bool) {
	path := filepath.Join(dir, name)
	if name == "" {
		return path, false
	}
	info, err := os.Stat(path)
	return path, err == nil && info.Mode().IsRegular()
}

func (o *Organizer) progress(event ProgressEvent) {
	if o.onProgress != nil {
		o.onProgress(event)
	}
}
