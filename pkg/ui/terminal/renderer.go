// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/mimeglob/pkg/globs2"
	"github.com/arthur-debert/mimeglob/pkg/logging"
	"github.com/arthur-debert/mimeglob/pkg/ui/display"
	"github.com/arthur-debert/mimeglob/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using the shared styles
type Renderer struct {
	output   io.Writer
	renderer *lipgloss.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	renderer := lipgloss.NewRenderer(w)

	logger := logging.GetLogger("ui.terminal")
	logger.Debug().
		Str("colorProfile", fmt.Sprintf("%v", renderer.ColorProfile())).
		Msg("Terminal renderer created")

	return &Renderer{
		output:   w,
		renderer: renderer,
	}, nil
}

func (r *Renderer) style(name string) lipgloss.Style {
	return styles.GetStyle(name).Renderer(r.renderer)
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.MatchReport:
		for _, fm := range v.Files {
			if _, err := fmt.Fprintln(r.output, r.fileMatch(fm)); err != nil {
				return err
			}
		}
		return nil
	case *display.ClassifyReport:
		for _, p := range v.Patterns {
			if _, err := fmt.Fprintln(r.output, r.patternInfo(p)); err != nil {
				return err
			}
		}
		return nil
	case *display.ProbeReport:
		verdict := r.style("NoMatch").Render("no match")
		if v.Matched {
			verdict = r.style("Matched").Render("match")
		}
		_, err := fmt.Fprintf(r.output, "%s %s %s\n",
			r.style("Kind").Render(v.Pattern), r.style("Path").Render(v.Filename), verdict)
		return err
	case *display.GlobListing:
		return globs2.Write(r.output, v.Globs)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) fileMatch(fm display.FileMatch) string {
	var b strings.Builder
	b.WriteString(r.style("Path").Render(fm.Path))
	b.WriteString("  ")

	if len(fm.Winners) == 0 {
		b.WriteString(r.style("NoMatch").Render("no match"))
		return b.String()
	}

	winners := make([]string, 0, len(fm.Winners))
	for _, w := range fm.Winners {
		winners = append(winners, r.style("MimeType").Render(w))
	}
	b.WriteString(strings.Join(winners, " "))

	if fm.KnownSuffix != "" {
		b.WriteString(" ")
		b.WriteString(r.style("Suffix").Render("." + fm.KnownSuffix))
	}
	if others := fm.Others(); len(others) > 0 {
		b.WriteString(" ")
		b.WriteString(r.style("Candidate").Render("also " + strings.Join(others, " ")))
	}
	return b.String()
}

func (r *Renderer) patternInfo(p display.PatternInfo) string {
	line := fmt.Sprintf("%s  %s  %s",
		r.style("Path").Render(p.Pattern),
		r.style("Kind").Render(p.Kind),
		r.style("Candidate").Render(fmt.Sprintf("specificity %d", p.Specificity)))
	if p.CaseSensitive {
		line += " " + r.style("Candidate").Render("case-sensitive")
	}
	if p.Error != "" {
		line += " " + r.style("Error").Render(p.Error)
	}
	return line
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, r.style("Error").Render(fmt.Sprintf("Error: %v", err)))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.style("Message").Render(msg))
	return err
}
