// Package display holds the report types rendered by the ui renderers
package display

import (
	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
)

// FileMatch is the resolution of one file name
type FileMatch struct {
	Path        string   `json:"path" yaml:"path" toml:"path"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Winners     []string `json:"winners" yaml:"winners" toml:"winners"`
	Matches     []string `json:"matches" yaml:"matches" toml:"matches"`
	Weight      int      `json:"weight" yaml:"weight" toml:"weight"`
	KnownSuffix string   `json:"known_suffix,omitempty" yaml:"known_suffix,omitempty" toml:"known_suffix,omitempty"`
}

// MatchReport is the output of the match command
type MatchReport struct {
	Files []FileMatch `json:"files" yaml:"files" toml:"files"`
}

// PatternInfo describes how a pattern is classified
type PatternInfo struct {
	Pattern       string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Kind          string `json:"kind" yaml:"kind" toml:"kind"`
	Specificity   int    `json:"specificity" yaml:"specificity" toml:"specificity"`
	CaseSensitive bool   `json:"case_sensitive" yaml:"case_sensitive" toml:"case_sensitive"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// ClassifyReport is the output of the classify command
type ClassifyReport struct {
	Patterns []PatternInfo `json:"patterns" yaml:"patterns" toml:"patterns"`
}

// ProbeReport is the output of the probe command
type ProbeReport struct {
	Pattern  string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Filename string `json:"filename" yaml:"filename" toml:"filename"`
	Matched  bool   `json:"matched" yaml:"matched" toml:"matched"`
}

// GlobListing is the output of the export command
type GlobListing struct {
	Globs []glob.Glob `json:"globs" yaml:"globs" toml:"globs"`
}

// ErrorReport is a failure in structured output. Code is left empty for
// errors that carry none.
type ErrorReport struct {
	Error string `json:"error" yaml:"error" toml:"error"`
	Code  string `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
}

// MessageReport is a free-form note in structured output
type MessageReport struct {
	Message string `json:"message" yaml:"message" toml:"message"`
}

// NewErrorReport converts err
func NewErrorReport(err error) ErrorReport {
	report := ErrorReport{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		report.Code = string(code)
	}
	return report
}

// NewFileMatch converts a match result for name, found at path
func NewFileMatch(path, name string, result *glob.MatchResult) FileMatch {
	fm := FileMatch{
		Path:    path,
		Name:    name,
		Winners: result.Winners(),
		Matches: result.AllMatches(),
		Weight:  result.Weight(),
	}
	if fm.Winners == nil {
		fm.Winners = []string{}
	}
	if fm.Matches == nil {
		fm.Matches = []string{}
	}
	if !result.Empty() {
		fm.KnownSuffix = result.Suffix(name)
	}
	return fm
}

// Others returns the matches that did not win
func (fm FileMatch) Others() []string {
	winners := make(map[string]bool, len(fm.Winners))
	for _, w := range fm.Winners {
		winners[w] = true
	}
	var others []string
	for _, m := range fm.Matches {
		if !winners[m] {
			others = append(others, m)
		}
	}
	return others
}

// NewPatternInfo describes a compiled pattern
func NewPatternInfo(p *glob.Pattern) PatternInfo {
	info := PatternInfo{
		Pattern:       p.Glob().Pattern,
		Kind:          p.Kind().String(),
		Specificity:   p.Specificity(),
		CaseSensitive: p.CaseSensitive(),
	}
	if err := p.Err(); err != nil {
		info.Error = err.Error()
	}
	return info
}
