package mimeglob

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/mimeglob/pkg/ui/markdown"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stdoutIsTerminal reports whether help output goes to a terminal
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// formatMarkdown renders long help text as markdown on a color terminal
func formatMarkdown(s string) string {
	return renderHelp(s, stdoutIsTerminal() && !termenv.EnvNoColor())
}

// renderHelp leaves s as written unless styled is set
func renderHelp(s string, styled bool) string {
	if !styled {
		return s
	}
	return markdown.New().RenderOrPlain(s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
		"markdown":  formatMarkdown,
	})
}
