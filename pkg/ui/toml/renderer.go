// Package toml provides TOML document output
package toml

import (
	"io"

	"github.com/arthur-debert/mimeglob/pkg/ui/display"
	"github.com/pelletier/go-toml/v2"
)

// Renderer writes results as TOML tables
type Renderer struct {
	output io.Writer
}

// New creates a new TOML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a struct or map result as TOML
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders err and its error code as TOML
func (r *Renderer) RenderError(err error) error {
	return r.encode(display.NewErrorReport(err))
}

// RenderMessage renders a simple message as TOML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(display.MessageReport{Message: msg})
}

func (r *Renderer) encode(v interface{}) error {
	encoder := toml.NewEncoder(r.output)
	encoder.SetIndentTables(true)
	return encoder.Encode(v)
}
