package stitcher

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/laurence-myers/stitcher-scraper/internal/model"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed id="96916" genre="Comedy" imageURL="https://img.example/cbb.jpg">
  <name><![CDATA[Comedy Bang Bang]]></name>
  <episodes>
    <episode id="3" published="2020-06-28 21:02:39" url="https://cdn.example/cbb/ep%20300.mp3">
      <title><![CDATA[Ep 300,With Guests]]></title>
      <description>Fun &amp; games</description>
    </episode>
    <episode id="2" published="2020-06-21 09:15:00" url="https://cdn.example/cbb/ep299.mp3?x=1">
      <title>Caf&eacute; Talk</title>
    </episode>
    <episode id="1" published="2020-06-14 00:00:01" url="https://cdn.example/cbb/ep298.mp3"></episode>
  </episodes>
</feed>`

func TestExtractURLs(t *testing.T) {
	got, err := ExtractURLs(strings.NewReader(sampleFeed))
	if err != nil {
		t.Fatalf("ExtractURLs failed: %v", err)
	}

	want := []string{
		"https://cdn.example/cbb/ep%20300.mp3",
		"https://cdn.example/cbb/ep299.mp3?x=1",
		"https://cdn.example/cbb/ep298.mp3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractURLs() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFeed(t *testing.T) {
	got, err := ExtractFeed(strings.NewReader(sampleFeed))
	if err != nil {
		t.Fatalf("ExtractFeed failed: %v", err)
	}

	want := &model.FeedData{
		Feed: model.FeedRecord{
			Genre:    "Comedy",
			ImageURL: "https://img.example/cbb.jpg",
			Name:     "Comedy Bang Bang",
		},
		Episodes: []model.EpisodeRecord{
			{
				FileName:    "ep 300.mp3",
				PublishedAt: "2020-06-28 21:02:39",
				URL:         "https://cdn.example/cbb/ep%20300.mp3",
				Title:       "Ep 300,With Guests",
				Description: "Fun & games",
			},
			{
				FileName:    "ep299.mp3",
				PublishedAt: "2020-06-21 09:15:00",
				URL:         "https://cdn.example/cbb/ep299.mp3?x=1",
				Title:       "Café Talk",
			},
			{
				FileName:    "ep298.mp3",
				PublishedAt: "2020-06-14 00:00:01",
				URL:         "https://cdn.example/cbb/ep298.mp3",
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractFeed() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_EpisodesAncestor(t *testing.T) {
	// Episodes outside an episodes element.
	doc := `<feed genre="News">
		<episode url="https://cdn.example/a.mp3" published="2021-01-01 00:00:00"><title>A</title></episode>
		<episode url="https://cdn.example/b.mp3" published="2021-01-02 00:00:00"><title>B</title></episode>
		<episode><title>no url</title></episode>
	</feed>`

	urls, err := ExtractURLs(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractURLs failed: %v", err)
	}
	if diff := cmp.Diff([]string{"https://cdn.example/a.mp3", "https://cdn.example/b.mp3"}, urls); diff != "" {
		t.Errorf("URL-list mode mismatch (-want +got):\n%s", diff)
	}

	data, err := ExtractFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractFeed failed: %v", err)
	}
	if len(data.Episodes) != 0 {
		t.Errorf("full-record mode found %d episodes outside <episodes>, want 0", len(data.Episodes))
	}
	if data.Feed.Genre != "News" {
		t.Errorf("Genre = %q, want %q", data.Feed.Genre, "News")
	}
}

func TestExtractFeed_SkipsEpisodeWithoutURL(t *testing.T) {
	doc := `<feed><name>Show</name><episodes>
		<episode published="2021-01-01 00:00:00"><title>Missing</title></episode>
		<episode url="https://cdn.example/b.mp3" published="2021-01-02 00:00:00"><title>Kept</title></episode>
	</episodes></feed>`

	data, err := ExtractFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractFeed failed: %v", err)
	}
	if len(data.Episodes) != 1 {
		t.Fatalf("got %d episodes, want 1", len(data.Episodes))
	}
	if data.Episodes[0].Title != "Kept" {
		t.Errorf("Title = %q, want %q", data.Episodes[0].Title, "Kept")
	}
	if data.Feed.Name != "Show" {
		t.Errorf("Name = %q, want %q", data.Feed.Name, "Show")
	}
}

func TestExtractFeed_TextOutsideEpisodeIgnored(t *testing.T) {
	doc := `<feed><name>Show</name><title>Feed Title</title><episodes>
		<episode url="https://cdn.example/a.mp3" published="2021-01-01 00:00:00"><title>One</title></episode>
		<description>between episodes</description>
		<episode url="https://cdn.example/b.mp3" published="2021-01-02 00:00:00"></episode>
	</episodes></feed>`

	data, err := ExtractFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractFeed failed: %v", err)
	}
	if len(data.Episodes) != 2 {
		t.Fatalf("got %d episodes, want 2", len(data.Episodes))
	}
	if data.Episodes[0].Description != "" {
		t.Errorf("first Description = %q, want empty", data.Episodes[0].Description)
	}
	if data.Episodes[1].Description != "" || data.Episodes[1].Title != "" {
		t.Errorf("second episode = %+v, want no title or description", data.Episodes[1])
	}
}

func TestExtractFeed_NameUnderTitle(t *testing.T) {
	doc := `<FEED GENRE="Music" IMAGEURL="https://img.example/a.png"><Name><Title>Nested Name</Title></Name></FEED>`

	data, err := ExtractFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractFeed failed: %v", err)
	}
	want := model.FeedRecord{Genre: "Music", ImageURL: "https://img.example/a.png", Name: "Nested Name"}
	if diff := cmp.Diff(want, data.Feed); diff != "" {
		t.Errorf("Feed mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_PrefixedElementsIgnored(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"undeclared prefix", `<feed><name>Show</name><episodes>
			<episode url="https://x/a.mp3" published="2021-01-01 00:00:00"><x:title>Wrong</x:title><title>Right</title></episode>
			<itunes:episode url="https://x/b.mp3" published="2021-01-02 00:00:00"></itunes:episode>
			<episode foo:url="https://x/c.mp3" published="2021-01-03 00:00:00"></episode>
		</episodes></feed>`},
		{"declared prefix", `<feed xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"><name>Show</name><episodes>
			<episode url="https://x/a.mp3" published="2021-01-01 00:00:00"><itunes:title>Wrong</itunes:title><title>Right</title></episode>
			<itunes:episode url="https://x/b.mp3" published="2021-01-02 00:00:00"></itunes:episode>
			<episode itunes:url="https://x/c.mp3" published="2021-01-03 00:00:00"></episode>
		</episodes></feed>`},
		{"default namespace", `<feed xmlns="urn:stitcher"><name>Show</name><episodes>
			<episode url="https://x/a.mp3" published="2021-01-01 00:00:00"><title>Right</title></episode>
			<i:episode xmlns:i="urn:other" url="https://x/b.mp3" published="2021-01-02 00:00:00"></i:episode>
		</episodes></feed>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls, err := ExtractURLs(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("ExtractURLs failed: %v", err)
			}
			if diff := cmp.Diff([]string{"https://x/a.mp3"}, urls); diff != "" {
				t.Errorf("ExtractURLs() mismatch (-want +got):\n%s", diff)
			}

			data, err := ExtractFeed(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("ExtractFeed failed: %v", err)
			}
			if len(data.Episodes) != 1 {
				t.Fatalf("got %d episodes, want 1", len(data.Episodes))
			}
			if data.Episodes[0].Title != "Right" {
				t.Errorf("Title = %q, want %q", data.Episodes[0].Title, "Right")
			}
			if data.Feed.Name != "Show" {
				t.Errorf("Name = %q, want %q", data.Feed.Name, "Show")
			}
		})
	}
}

func TestExtractFeed_NameAfterEpisodesIgnored(t *testing.T) {
	doc := `<feed><name>Show</name><episodes>
		<episode url="https://x/a.mp3" published="2021-01-01 00:00:00"></episode>
	</episodes><seasons><season><name>Season 1</name></season></seasons></feed>`

	data, err := ExtractFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractFeed failed: %v", err)
	}
	if data.Feed.Name != "Show" {
		t.Errorf("Name = %q, want %q", data.Feed.Name, "Show")
	}
}

func TestExtractFeed_Charset(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
		"<feed><name>Caf\xe9</name></feed>"

	data, err := ExtractFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractFeed failed: %v", err)
	}
	if data.Feed.Name != "Café" {
		t.Errorf("Name = %q, want %q", data.Feed.Name, "Café")
	}
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		doc  string
	}{
		{"truncated urls", ModeURLList, `<feed><episodes><episode url="https://cdn.example/a.mp3">`},
		{"truncated full", ModeFullRecord, `<feed><episodes><episode url="https://cdn.example/a.mp3">`},
		{"bad episode url", ModeFullRecord, `<feed><episodes><episode url="http://[::1"></episode></episodes></feed>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewExtractor(tt.mode).Extract(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatalf("Extract() = %+v, want error", res)
			}
			if res != nil {
				t.Errorf("Extract() returned partial result %+v", res)
			}
		})
	}
}

func TestExtract_ManyEpisodes(t *testing.T) {
	var b strings.Builder
	b.WriteString("<feed><episodes>")
	const n = 250
	for i := 0; i < n; i++ {
		b.WriteString(`<episode published="2021-01-01 00:00:00" url="https://cdn.example/`)
		b.WriteString(strings.Repeat("x", i%7))
		b.WriteString(`.mp3"/>`)
	}
	b.WriteString("</episodes></feed>")

	urls, err := ExtractURLs(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ExtractURLs failed: %v", err)
	}
	if len(urls) != n {
		t.Errorf("got %d URLs, want %d", len(urls), n)
	}

	data, err := ExtractFeed(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ExtractFeed failed: %v", err)
	}
	if len(data.Episodes) != n {
		t.Errorf("got %d episodes, want %d", len(data.Episodes), n)
	}
}

func TestMode_String(t *testing.T) {
	if ModeURLList.String() != "urls" || ModeFullRecord.String() != "full" {
		t.Errorf("unexpected mode names %q, %q", ModeURLList, ModeFullRecord)
	}
	if got := Mode(9).String(); got != "Mode(9)" {
		t.Errorf("Mode(9).String() = %q", got)
	}
}
