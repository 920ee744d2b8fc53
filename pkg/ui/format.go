package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects a renderer
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output
	FormatAuto Format = iota
	// FormatTerminal is styled output for a color terminal
	FormatTerminal
	// FormatText is plain lines, one per result
	FormatText
	FormatJSON
	FormatYAML
	FormatTOML
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
	FormatTOML:     "toml",
}

// aliases accepted by ParseFormat besides the canonical names
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
	"yml":      FormatYAML,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Structured reports whether the format is a machine-readable document
func (f Format) Structured() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML:
		return true
	}
	return false
}

// ParseFormat accepts a canonical format name or one of its aliases,
// ignoring case
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatAuto, errors.Newf(errors.ErrOutputFormat, "unknown format: %s", s).
		WithDetail("format", s)
}

// DetectFormat is FormatTerminal when output is a terminal that can show
// color and color is not disabled through the environment, FormatText
// otherwise
func DetectFormat(output *os.File) Format {
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(output).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
