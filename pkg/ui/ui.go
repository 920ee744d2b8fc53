// Package ui turns the report types of package display into output. Each
// format lives in its own subpackage; this package picks one.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/ui/json"
	"github.com/arthur-debert/mimeglob/pkg/ui/terminal"
	"github.com/arthur-debert/mimeglob/pkg/ui/text"
	"github.com/arthur-debert/mimeglob/pkg/ui/toml"
	"github.com/arthur-debert/mimeglob/pkg/ui/yaml"
)

// Renderer writes reports, errors and notes in one format
type Renderer interface {
	// RenderResult renders one of the display report types
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format writing to output. FormatAuto
// is resolved with DetectFormat when output is a file and is plain text
// otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = FormatText
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}

	switch format {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	case FormatTOML:
		return toml.New(output)
	}
	return nil, errors.Newf(errors.ErrOutputFormat, "unknown format: %v", format).
		WithDetail("format", int(format))
}
