// Package audio provides episode audio file services: recording date
// parsing, ID3 tag writing and playlist generation.
//
// # Recording Dates
//
// Feed timestamps are converted to ID3v2.3 date codes:
//
//	rd, err := audio.ParsePublishedDate("2020-06-28 21:02:39")
//	// rd.Year = 2020, rd.Date = "2806", rd.Time = "2102"
//
// Malformed timestamps return an error matching audio.ErrInvalidDateFormat.
//
// # ID3 Tagging
//
//	tags, err := audio.NewEpisodeTags(feed, episode, trackNumber)
//	cover := &audio.Cover{Data: artwork, MimeType: audio.CoverMimeType(feed.ImageURL)}
//	err = audio.NewTagger().SaveTags(path, tags, cover)
//
// The tagger writes:
//   - Album, Artist (feed name), Genre, Title
//   - Language, Comment (episode description)
//   - Recording year, date and time
//   - Track number
//   - Official audio file URL
//   - Cover art (embedded front cover)
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U)
//	content := creator.CreatePlaylist(entries)
package audio
