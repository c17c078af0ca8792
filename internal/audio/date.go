package audio

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidDateFormat is matched by every error ParsePublishedDate returns.
var ErrInvalidDateFormat = errors.New("invalid published date")

// InvalidDateFormatError carries the timestamp that failed to parse.
type InvalidDateFormatError struct {
	Value string
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidDateFormat, e.Value)
}

// Is reports whether target is ErrInvalidDateFormat.
func (e *InvalidDateFormatError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}

var publishedDatePattern = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})-([0-9]{2}) ([0-9]{2}):([0-9]{2}):([0-9]{2})$`)

// RecordingDate holds the ID3v2.3 recording date frames for an episode.
type RecordingDate struct {
	// Year goes into TYER.
	Year int

	// Date is "DDMM" and goes into TDAT.
	Date string

	// Time is "HHMM" and goes into TIME.
	Time string
}

// ParsePublishedDate converts a "YYYY-MM-DD HH:MM:SS" timestamp into
// ID3 recording date codes. Seconds are validated but discarded.
//
// Example:
//
//	rd, err := ParsePublishedDate("2020-06-28 21:02:39")
//	// rd = RecordingDate{Year: 2020, Date: "2806", Time: "2102"}
func ParsePublishedDate(published string) (RecordingDate, error) {
	m := publishedDatePattern.FindStringSubmatch(published)
	if m == nil {
		return RecordingDate{}, &InvalidDateFormatError{Value: published}
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return RecordingDate{}, &InvalidDateFormatError{Value: published}
	}

	return RecordingDate{
		Year: year,
		Date: m[3] + m[2],
		Time: m[4] + m[5],
	}, nil
}
