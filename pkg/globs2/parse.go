package globs2

import (
	"bufio"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
)

// Format is the layout of a glob database file
type Format int

const (
	// FormatGlobs2 is "weight:mimetype:pattern[:flags]"
	FormatGlobs2 Format = iota
	// FormatGlobs is the legacy "mimetype:pattern"
	FormatGlobs
	// FormatXML is a mime/packages source file with <glob> elements
	FormatXML
)

// NoGlobs is the pattern that clears a MIME type's earlier globs
const NoGlobs = "__NOGLOBS__"

// caseSensitiveFlag marks a case-sensitive pattern in the flags field
const caseSensitiveFlag = "cs"

// String returns the file name conventionally used for the format, or the
// extension for package files
func (f Format) String() string {
	switch f {
	case FormatGlobs:
		return "globs"
	case FormatXML:
		return "xml"
	default:
		return "globs2"
	}
}

// FormatForPath guesses the format from the file name. A file named "globs"
// is the legacy format and a ".xml" file is a package file.
func FormatForPath(path string) Format {
	switch {
	case filepath.Base(path) == "globs":
		return FormatGlobs
	case strings.EqualFold(filepath.Ext(path), ".xml"):
		return FormatXML
	default:
		return FormatGlobs2
	}
}

// Entry is one parsed line
type Entry struct {
	glob.Glob
	// NoGlobs is set for a "__NOGLOBS__" line
	NoGlobs bool
	// Line is the source line, or the record position in a package file
	Line int
}

// Parse reads every record from r and fails on the first malformed line
func Parse(r io.Reader, format Format) ([]Entry, error) {
	return parse(r, format, func(err error) error { return err })
}

// parse calls onError for each malformed line; a nil return skips the line
func parse(r io.Reader, format Format, onError func(error) error) ([]Entry, error) {
	if format == FormatXML {
		return parseXML(r, onError)
	}

	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var entry Entry
		var err error
		if format == FormatGlobs {
			entry, err = parseGlobsLine(line)
		} else {
			entry, err = parseGlobs2Line(line)
		}
		if err != nil {
			wrapped := errors.Wrapf(err, errors.ErrDatabaseParse, "line %d", lineNo).
				WithDetail("line", lineNo)
			if err := onError(wrapped); err != nil {
				return nil, err
			}
			continue
		}

		entry.Line = lineNo
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseRead, "failed to read glob database")
	}

	return entries, nil
}

func parseGlobs2Line(line string) (Entry, error) {
	fields := strings.SplitN(line, ":", 4)
	if len(fields) < 3 {
		return Entry{}, errors.Newf(errors.ErrDatabaseParse, "expected weight:mimetype:pattern, got %q", line)
	}

	weight, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, errors.Wrapf(err, errors.ErrDatabaseParse, "invalid weight %q", fields[0])
	}

	entry := Entry{Glob: glob.Glob{
		Pattern:  fields[2],
		MimeType: fields[1],
		Weight:   weight,
	}}
	if len(fields) == 4 {
		for _, flag := range strings.Split(fields[3], ",") {
			if flag == caseSensitiveFlag {
				entry.CaseSensitive = true
			}
		}
	}

	return finishEntry(entry, line)
}

func parseGlobsLine(line string) (Entry, error) {
	mimeType, pattern, ok := strings.Cut(line, ":")
	if !ok {
		return Entry{}, errors.Newf(errors.ErrDatabaseParse, "expected mimetype:pattern, got %q", line)
	}
	return finishEntry(Entry{Glob: glob.NewGlob(pattern, mimeType)}, line)
}

func finishEntry(entry Entry, line string) (Entry, error) {
	if entry.MimeType == "" {
		return Entry{}, errors.Newf(errors.ErrDatabaseParse, "missing mime type in %q", line)
	}
	if entry.Pattern == NoGlobs {
		entry.NoGlobs = true
		return entry, nil
	}
	if err := entry.Glob.Validate(); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
