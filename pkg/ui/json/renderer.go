// Package json writes reports as indented JSON, one value per call
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/mimeglob/pkg/ui/display"
)

// Renderer encodes reports for scripts and other tools
type Renderer struct {
	enc *json.Encoder
}

// New creates a JSON renderer writing to w
func New(w io.Writer) (*Renderer, error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return &Renderer{enc: enc}, nil
}

// RenderResult encodes a report value
func (r *Renderer) RenderResult(result interface{}) error {
	return r.enc.Encode(result)
}

// RenderError encodes err with its error code
func (r *Renderer) RenderError(err error) error {
	return r.enc.Encode(display.NewErrorReport(err))
}

// RenderMessage encodes msg
func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(display.MessageReport{Message: msg})
}
