package config

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed feeds.yaml
var defaultFeedsYAML []byte

// FeedEntry maps a show name to its feed ID.
type FeedEntry struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

type feedFile struct {
	Feeds []FeedEntry `yaml:"feeds"`
}

// FeedTable is an immutable lookup of known feeds.
type FeedTable struct {
	entries []FeedEntry
	byName  map[string]FeedEntry
	byID    map[string]FeedEntry
}

// ParseFeedTable parses a YAML feed list. Names are matched
// case-insensitively and must be unique, as must IDs.
func ParseFeedTable(data []byte) (*FeedTable, error) {
	var f feedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse feed table: %w", err)
	}

	t := &FeedTable{
		byName: make(map[string]FeedEntry, len(f.Feeds)),
		byID:   make(map[string]FeedEntry, len(f.Feeds)),
	}
	for _, e := range f.Feeds {
		if e.Name == "" || e.ID == "" {
			return nil, fmt.Errorf("feed table: entry %+v needs both name and id", e)
		}
		key := strings.ToLower(e.Name)
		if _, dup := t.byName[key]; dup {
			return nil, fmt.Errorf("feed table: duplicate name %q", e.Name)
		}
		if _, dup := t.byID[e.ID]; dup {
			return nil, fmt.Errorf("feed table: duplicate id %q", e.ID)
		}
		t.byName[key] = e
		t.byID[e.ID] = e
		t.entries = append(t.entries, e)
	}

	sort.Slice(t.entries, func(i, j int) bool {
		return strings.ToLower(t.entries[i].Name) < strings.ToLower(t.entries[j].Name)
	})
	return t, nil
}

// DefaultFeedTable returns the built-in table of known feeds.
func DefaultFeedTable() *FeedTable {
	t, err := ParseFeedTable(defaultFeedsYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the feed ID for a show name.
func (t *FeedTable) Lookup(name string) (string, bool) {
	e, ok := t.byName[strings.ToLower(name)]
	return e.ID, ok
}

// NameOf returns the show name for a feed ID.
func (t *FeedTable) NameOf(id string) (string, bool) {
	e, ok := t.byID[id]
	return e.Name, ok
}

// Entries returns a copy of all entries sorted by name.
func (t *FeedTable) Entries() []FeedEntry {
	out := make([]FeedEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Resolve accepts either a numeric feed ID or a known show name and
// returns the feed ID. Unknown names are returned unchanged.
func (t *FeedTable) Resolve(nameOrID string) string {
	if id, ok := t.Lookup(nameOrID); ok {
		return id
	}
	return nameOrID
}
