package audio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/laurence-myers/stitcher-scraper/internal/model"
)

const (
	// tagLanguage is the ISO-639-2 code used for the language and comment frames.
	tagLanguage = "eng"

	// coverDescription is the description stored on the embedded picture frame.
	coverDescription = "Feed Thumbnail"
)

// Cover is artwork to embed in each tagged file.
type Cover struct {
	// Data holds the encoded image bytes.
	Data []byte

	// MimeType is the image MIME type, e.g. "image/jpeg".
	MimeType string
}

// CoverMimeType guesses the artwork MIME type from its URL.
//
// URLs ending in ".jpg" (case-insensitive) are JPEG; everything else is
// assumed to be PNG. This is wrong for other formats such as GIF or WebP,
// and for ".jpeg" URLs.
func CoverMimeType(imageURL string) string {
	if strings.HasSuffix(strings.ToLower(imageURL), ".jpg") {
		return "image/jpeg"
	}
	return "image/png"
}

// EpisodeTags is the complete set of values written to one episode file.
type EpisodeTags struct {
	Album       string
	Artist      string
	Genre       string
	Title       string
	Comment     string
	FileURL     string
	TrackNumber int
	Recording   RecordingDate
}

// NewEpisodeTags builds the tags for an episode.
//
// The publish timestamp is parsed here, before any file is touched, so a
// malformed date never leaves a half-written file behind. The returned error
// matches ErrInvalidDateFormat in that case.
func NewEpisodeTags(feed model.FeedRecord, episode model.EpisodeRecord, trackNumber int) (EpisodeTags, error) {
	recording, err := ParsePublishedDate(episode.PublishedAt)
	if err != nil {
		return EpisodeTags{}, err
	}

	return EpisodeTags{
		Album:       feed.Name,
		Artist:      feed.Name,
		Genre:       feed.Genre,
		Title:       episode.Title,
		Comment:     episode.Description,
		FileURL:     episode.URL,
		TrackNumber: trackNumber,
		Recording:   recording,
	}, nil
}

// Tagger writes ID3v2.3 tags to episode audio files.
//
// Every save replaces the whole tag, so tagging the same file twice yields
// the same frames rather than duplicated comments or pictures.
//
// Example:
//
//	tagger := NewTagger()
//	tags, err := NewEpisodeTags(feed, episode, 12)
//	if err != nil {
//	    return err
//	}
//	err = tagger.SaveTags("/podcasts/episode.mp3", tags, cover)
type Tagger struct {
	encoding id3v2.Encoding
}

// NewTagger creates a Tagger. ID3v2.3 has no UTF-8 encoding, so text
// frames are written as UTF-16.
func NewTagger() *Tagger {
	return &Tagger{encoding: id3v2.EncodingUTF16}
}

// SaveTags writes tags (and cover, if non-nil) to the file at path.
//
// Returns an error if the file cannot be opened, parsed or saved.
func (t *Tagger) SaveTags(path string, tags EpisodeTags, cover *Cover) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag: %w", err)
	}
	defer tag.Close()

	tag.DeleteAllFrames()
	tag.SetVersion(3)
	tag.SetDefaultEncoding(t.encoding)

	t.updateStringTags(tag, tags)

	if cover != nil && len(cover.Data) > 0 {
		t.updateArtwork(tag, cover)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag: %w", err)
	}
	return nil
}

// updateStringTags writes text, comment and URL frames.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, tags EpisodeTags) {
	tag.SetAlbum(tags.Album)
	tag.SetArtist(tags.Artist)
	tag.SetGenre(tags.Genre)
	if tags.Title != "" {
		tag.SetTitle(tags.Title)
	}

	// Language (TLAN)
	tag.AddTextFrame("TLAN", t.encoding, tagLanguage)

	// Recording year, date and time (TYER, TDAT, TIME)
	tag.SetYear(strconv.Itoa(tags.Recording.Year))
	tag.AddTextFrame("TDAT", t.encoding, tags.Recording.Date)
	tag.AddTextFrame("TIME", t.encoding, tags.Recording.Time)

	// Track Number (TRCK)
	tag.AddTextFrame("TRCK", t.encoding, strconv.Itoa(tags.TrackNumber))

	// Comments (COMM)
	if tags.Comment != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    t.encoding,
			Language:    tagLanguage,
			Description: "",
			Text:        tags.Comment,
		})
	}

	// Official audio file webpage (WOAF). URL frames have no encoding byte.
	if tags.FileURL != "" {
		tag.AddFrame("WOAF", id3v2.UnknownFrame{Body: []byte(tags.FileURL)})
	}
}

// updateArtwork embeds cover art as the front cover picture.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, cover *Cover) {
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    t.encoding,
		MimeType:    cover.MimeType,
		PictureType: id3v2.PTFrontCover,
		Description: coverDescription,
		Picture:     cover.Data,
	})
}
