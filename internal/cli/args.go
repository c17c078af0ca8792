package cli

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ExitCode is a process exit status.
type ExitCode int

const (
	ExitOkay           ExitCode = 0
	ExitUnhandledError ExitCode = 1
	ExitInvalidArgs    ExitCode = 2
)

// InvalidArgumentError is a user-facing argument problem.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func invalidf(format string, args ...any) error {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// ExitCodeFor maps an error returned by a command to its exit status.
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitOkay
	}
	var invalid *InvalidArgumentError
	if errors.As(err, &invalid) {
		return ExitInvalidArgs
	}
	return ExitUnhandledError
}

var numericID = regexp.MustCompile(`^[0-9]+$`)

const tooManyArgs = "Too many arguments. Please only pass the feed ID and the directory containing the downloaded MP3 files."

// IsID reports whether s looks like a numeric user or feed ID.
func IsID(s string) bool {
	return numericID.MatchString(s)
}

// FetchArgs are the positional arguments of the fetch tool.
type FetchArgs struct {
	UserID string
	FeedID string
}

// ParseFetchArgs parses "<userId> <feedId>". When defaultUserID is set a
// lone argument is taken as the feed ID. resolve, if non-nil, maps a show
// name in the feed position to its feed ID; the user ID is never resolved.
func ParseFetchArgs(args []string, defaultUserID string, resolve func(string) string) (FetchArgs, error) {
	if len(args) == 1 && defaultUserID != "" && IsID(defaultUserID) {
		args = []string{defaultUserID, args[0]}
	}

	var out FetchArgs
	for _, arg := range args {
		switch {
		case out.UserID == "":
			if !IsID(arg) {
				return FetchArgs{}, invalidf("%q does not look like a valid user ID.", arg)
			}
			out.UserID = arg
		case out.FeedID == "":
			id := arg
			if resolve != nil {
				id = resolve(arg)
			}
			if !IsID(id) {
				return FetchArgs{}, invalidf("%q does not look like a valid feed ID.", arg)
			}
			out.FeedID = id
		default:
			return FetchArgs{}, invalidf(tooManyArgs)
		}
	}

	if out.UserID == "" {
		return FetchArgs{}, invalidf("Please pass your Stitcher user ID as the first argument.")
	}
	if out.FeedID == "" {
		return FetchArgs{}, invalidf("Please pass the feed ID as the second argument.")
	}
	return out, nil
}

// OrganiseArgs are the positional arguments of the organize tools.
type OrganiseArgs struct {
	FeedID    string
	Directory string
}

// ParseOrganiseArgs parses "<feedId> <directory>". resolve, if non-nil,
// maps a show name to its feed ID before validation.
//
// A directory that cannot be stat'ed is returned as a plain error, not an
// InvalidArgumentError.
func ParseOrganiseArgs(args []string, resolve func(string) string) (OrganiseArgs, error) {
	var out OrganiseArgs
	for _, arg := range args {
		switch {
		case out.FeedID == "":
			id := arg
			if resolve != nil {
				id = resolve(arg)
			}
			if !IsID(id) {
				return OrganiseArgs{}, invalidf("%q does not look like a valid feed ID.", arg)
			}
			out.FeedID = id
		case out.Directory == "":
			if err := ValidateDirectory(arg); err != nil {
				return OrganiseArgs{}, err
			}
			out.Directory = arg
		default:
			return OrganiseArgs{}, invalidf(tooManyArgs)
		}
	}

	if out.FeedID == "" {
		return OrganiseArgs{}, invalidf("Please pass the feed ID as the first argument.")
	}
	if out.Directory == "" {
		return OrganiseArgs{}, invalidf("Please pass the directory containing the download MP3 files as the second argument.")
	}
	return out, nil
}

// ValidateDirectory checks that path exists and is a directory.
func ValidateDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return invalidf("%q is not a directory. Please pass the directory containing the download MP3 files as the second argument.", path)
	}
	return nil
}
