// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/mimeglob/pkg/globs2"
	"github.com/arthur-debert/mimeglob/pkg/ui/display"
)

// NoMatch is printed for a file name no pattern matched
const NoMatch = "(no match)"

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.MatchReport:
		for _, fm := range v.Files {
			if err := r.renderFileMatch(fm); err != nil {
				return err
			}
		}
		return nil
	case *display.ClassifyReport:
		for _, p := range v.Patterns {
			if err := r.renderPatternInfo(p); err != nil {
				return err
			}
		}
		return nil
	case *display.ProbeReport:
		verdict := "no match"
		if v.Matched {
			verdict = "match"
		}
		_, err := fmt.Fprintf(r.output, "%s %s: %s\n", v.Pattern, v.Filename, verdict)
		return err
	case *display.GlobListing:
		return globs2.Write(r.output, v.Globs)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderFileMatch(fm display.FileMatch) error {
	if len(fm.Winners) == 0 {
		_, err := fmt.Fprintf(r.output, "%s: %s\n", fm.Path, NoMatch)
		return err
	}

	line := fmt.Sprintf("%s: %s", fm.Path, strings.Join(fm.Winners, ", "))
	if others := fm.Others(); len(others) > 0 {
		line += fmt.Sprintf(" (also: %s)", strings.Join(others, ", "))
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

func (r *Renderer) renderPatternInfo(p display.PatternInfo) error {
	line := fmt.Sprintf("%s: %s, specificity %d", p.Pattern, p.Kind, p.Specificity)
	if p.CaseSensitive {
		line += ", case-sensitive"
	}
	if p.Error != "" {
		line += ", error: " + p.Error
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
