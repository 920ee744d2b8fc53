// Package markdown renders the markdown of long help texts for a terminal.
package markdown

import (
	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/logging"
	"github.com/charmbracelet/glamour"
)

// AutoStyle picks the dark or light style from the terminal background
const AutoStyle = "auto"

// Renderer turns markdown into styled terminal text
type Renderer struct {
	Style string // glamour style name or path to a style file; "" is AutoStyle
	Width int    // word wrap column, 0 keeps the glamour default
}

// New creates a renderer with the auto style and default width
func New() *Renderer {
	return &Renderer{Style: AutoStyle}
}

// Render converts content to terminal output
func (r *Renderer) Render(content string) (string, error) {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != AutoStyle {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrOutputFormat, "cannot use markdown style %q", r.Style).
			WithDetail("style", r.Style)
	}
	out, err := tr.Render(content)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrOutputFormat, "failed to render markdown")
	}
	return out, nil
}

// RenderOrPlain is Render falling back to content unchanged
func (r *Renderer) RenderOrPlain(content string) string {
	out, err := r.Render(content)
	if err != nil {
		logger := logging.GetLogger("ui.markdown")
		logger.Debug().Err(err).Msg("Showing help as plain text")
		return content
	}
	return out
}
