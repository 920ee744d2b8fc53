// Package styles holds the lipgloss styles of the term output format.
//
// Styles have semantic names (Path, MimeType, Suffix...) and refer to
// adaptive colors that pick a light or dark value from the terminal
// background. The built-in set is the embedded styles.yaml; a file with the
// same layout replaces it through LoadStylesFile.
package styles

import (
	_ "embed"
	"os"
	"sort"
	"sync"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef is an adaptive color
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is one named style. Foreground and Background name a color.
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// File is the layout of a styles YAML file
type File struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var (
	mu       sync.RWMutex
	registry map[string]lipgloss.Style
)

func init() {
	if err := LoadDefaults(); err != nil {
		panic("embedded styles: " + err.Error())
	}
}

// LoadDefaults restores the built-in styles
func LoadDefaults() error {
	return LoadStyles(defaultStyles)
}

// LoadStylesFile replaces the current styles with the ones in path
func LoadStylesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrConfigLoad
		if os.IsNotExist(err) {
			code = errors.ErrFileNotFound
		}
		return errors.Wrapf(err, code, "cannot read styles file %s", path).
			WithDetail("path", path)
	}
	return LoadStyles(data)
}

// LoadStyles replaces the current styles with the ones in data. A style
// naming an undefined color is rejected.
func LoadStyles(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "cannot parse styles")
	}

	styles := make(map[string]lipgloss.Style, len(f.Styles))
	for name, def := range f.Styles {
		style, err := def.build(f.Colors)
		if err != nil {
			return err.WithDetail("style", name)
		}
		styles[name] = style
	}

	mu.Lock()
	registry = styles
	mu.Unlock()
	return nil
}

func (def StyleDef) build(colors map[string]ColorDef) (lipgloss.Style, *errors.Error) {
	style := lipgloss.NewStyle().
		Bold(def.Bold).
		Italic(def.Italic).
		Underline(def.Underline)

	if def.Foreground != "" {
		color, err := lookupColor(colors, def.Foreground)
		if err != nil {
			return style, err
		}
		style = style.Foreground(color)
	}
	if def.Background != "" {
		color, err := lookupColor(colors, def.Background)
		if err != nil {
			return style, err
		}
		style = style.Background(color)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style, nil
}

func lookupColor(colors map[string]ColorDef, name string) (lipgloss.AdaptiveColor, *errors.Error) {
	c, ok := colors[name]
	if !ok {
		return lipgloss.AdaptiveColor{}, errors.Newf(errors.ErrConfigValid, "undefined color %q", name)
	}
	return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}, nil
}

// GetStyle returns the named style, or an empty style when it is not defined
func GetStyle(name string) lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Names returns the defined style names in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
