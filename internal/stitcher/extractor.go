package stitcher

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/laurence-myers/stitcher-scraper/internal/model"
)

// Mode selects what an Extractor accumulates.
type Mode int

const (
	// ModeURLList collects the url attribute of every episode element.
	ModeURLList Mode = iota

	// ModeFullRecord builds a FeedData from the feed, name and episode
	// elements.
	ModeFullRecord
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeURLList:
		return "urls"
	case ModeFullRecord:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Element and attribute names, lower-cased.
const (
	elemFeed        = "feed"
	elemEpisodes    = "episodes"
	elemEpisode     = "episode"
	elemTitle       = "title"
	elemDescription = "description"
	elemName        = "name"

	attrURL       = "url"
	attrPublished = "published"
	attrGenre     = "genre"
	attrImageURL  = "imageurl"
)

// Extraction is the result of a single pass. URLs is populated in
// ModeURLList and Data in ModeFullRecord.
type Extraction struct {
	URLs []string
	Data *model.FeedData
}

// Extractor reads a feed document in one forward pass over its token
// stream. The document is never materialized in memory.
//
// Element and attribute names are matched case-insensitively against the
// qualified name, so a prefixed element such as itunes:episode is unknown
// and ignored. Entities and CDATA sections are decoded in text content.
type Extractor struct {
	mode Mode
}

// NewExtractor creates an Extractor for the given mode.
func NewExtractor(mode Mode) *Extractor {
	return &Extractor{mode: mode}
}

// Extract consumes r until EOF. Any read or parse error aborts the pass
// and no partial result is returned.
func (e *Extractor) Extract(r io.Reader) (*Extraction, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = charset.NewReaderLabel

	st := &extractState{mode: e.mode, prefixes: make(map[string]string)}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse feed: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			st.declare(t.Attr)
			if err := st.open(st.qualifiedName(t.Name), t.Attr); err != nil {
				return nil, err
			}
		case xml.EndElement:
			st.close(st.qualifiedName(t.Name))
		case xml.CharData:
			st.text(string(t))
		}
	}

	if e.mode == ModeURLList {
		return &Extraction{URLs: st.urls}, nil
	}
	return &Extraction{Data: &st.data}, nil
}

// ExtractURLs returns every episode url attribute in document order.
func ExtractURLs(r io.Reader) ([]string, error) {
	res, err := NewExtractor(ModeURLList).Extract(r)
	if err != nil {
		return nil, err
	}
	return res.URLs, nil
}

// ExtractFeed returns the feed record and its episodes in document order.
func ExtractFeed(r io.Reader) (*model.FeedData, error) {
	res, err := NewExtractor(ModeFullRecord).Extract(r)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// extractState is owned by a single Extract call.
type extractState struct {
	mode Mode

	// prefixes maps a declared namespace URI back to its prefix, or to ""
	// for a default namespace.
	prefixes map[string]string

	urls []string
	data model.FeedData

	current *model.EpisodeRecord

	inEpisodes    bool
	inTitle       bool
	inDescription bool
	inName        bool

	titleText       strings.Builder
	descriptionText strings.Builder
	nameText        strings.Builder
}

func (s *extractState) declare(attrs []xml.Attr) {
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			s.prefixes[a.Value] = a.Name.Local
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			s.prefixes[a.Value] = ""
		}
	}
}

// qualifiedName returns the lower-cased prefix:local form of n as written in
// the document. The decoder replaces declared prefixes with their URI and
// leaves undeclared ones unchanged.
func (s *extractState) qualifiedName(n xml.Name) string {
	space := n.Space
	if prefix, ok := s.prefixes[space]; ok {
		space = prefix
	}
	if space != "" {
		return strings.ToLower(space + ":" + n.Local)
	}
	return strings.ToLower(n.Local)
}

func (s *extractState) attrValue(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if s.qualifiedName(a.Name) == name {
			return a.Value
		}
	}
	return ""
}

func (s *extractState) open(name string, attrs []xml.Attr) error {
	if s.mode == ModeURLList {
		if name == elemEpisode {
			if u := s.attrValue(attrs, attrURL); u != "" {
				s.urls = append(s.urls, u)
			}
		}
		return nil
	}

	switch name {
	case elemFeed:
		s.data.Feed.Genre = s.attrValue(attrs, attrGenre)
		s.data.Feed.ImageURL = s.attrValue(attrs, attrImageURL)
	case elemEpisodes:
		s.inEpisodes = true
	case elemEpisode:
		u := s.attrValue(attrs, attrURL)
		if !s.inEpisodes || u == "" {
			return nil
		}
		ep, err := model.NewEpisodeRecord(u, s.attrValue(attrs, attrPublished))
		if err != nil {
			return fmt.Errorf("episode %q: %w", u, err)
		}
		s.current = &ep
	case elemTitle:
		s.inTitle = true
		s.titleText.Reset()
	case elemDescription:
		s.inDescription = true
		s.descriptionText.Reset()
	case elemName:
		s.inName = true
		s.nameText.Reset()
	}
	return nil
}

func (s *extractState) close(name string) {
	if s.mode == ModeURLList {
		return
	}

	switch name {
	case elemEpisode:
		if s.current != nil {
			s.data.Episodes = append(s.data.Episodes, *s.current)
			s.current = nil
		}
	case elemEpisodes:
		s.inEpisodes = false
	case elemTitle:
		s.inTitle = false
		if s.current != nil {
			s.current.Title = strings.TrimSpace(s.titleText.String())
		}
	case elemDescription:
		s.inDescription = false
		if s.current != nil {
			s.current.Description = strings.TrimSpace(s.descriptionText.String())
		}
	case elemName:
		s.inName = false
		if !s.captureName() {
			return
		}
		if text := strings.TrimSpace(s.nameText.String()); text != "" {
			s.data.Feed.Name = text
		}
	}
}

func (s *extractState) text(data string) {
	if s.mode == ModeURLList {
		return
	}

	switch {
	case s.current != nil && s.inTitle:
		s.titleText.WriteString(data)
	case s.current != nil && s.inDescription:
		s.descriptionText.WriteString(data)
	case s.inName && s.captureName():
		s.nameText.WriteString(data)
	}
}

// captureName reports whether name text belongs to the feed. Capture ends
// at the first episode, so season or other later names never replace it.
func (s *extractState) captureName() bool {
	return s.current == nil && len(s.data.Episodes) == 0
}
