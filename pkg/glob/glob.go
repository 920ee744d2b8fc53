package glob

import (
	"github.com/arthur-debert/mimeglob/pkg/errors"
)

// Weight bounds for glob records
const (
	MinWeight     = 0
	DefaultWeight = 50
	MaxWeight     = 100
)

// Glob is a single glob record as supplied by a database loader
type Glob struct {
	Pattern       string `json:"pattern" yaml:"pattern" toml:"pattern" koanf:"pattern"`
	MimeType      string `json:"mime_type" yaml:"mime_type" toml:"mime_type" koanf:"mime_type"`
	Weight        int    `json:"weight" yaml:"weight" toml:"weight" koanf:"weight"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty" toml:"case_sensitive,omitempty" koanf:"case_sensitive"`
}

// NewGlob returns a case-insensitive record with the default weight
func NewGlob(pattern, mimeType string) Glob {
	return Glob{Pattern: pattern, MimeType: mimeType, Weight: DefaultWeight}
}

// Validate checks the parts of a record that do not depend on the pattern syntax
func (g Glob) Validate() error {
	if err := g.validatePattern(); err != nil {
		return err
	}
	if g.MimeType == "" {
		return errors.Newf(errors.ErrInvalidInput, "glob %q has no mime type", g.Pattern).
			WithDetail("pattern", g.Pattern)
	}
	return nil
}

// validatePattern checks what a pattern needs to be compiled
func (g Glob) validatePattern() error {
	if g.Pattern == "" {
		return errors.New(errors.ErrEmptyPattern, "glob pattern cannot be empty").
			WithDetail("mimeType", g.MimeType)
	}
	if g.Weight < MinWeight || g.Weight > MaxWeight {
		return errors.Newf(errors.ErrInvalidWeight, "glob %q weight %d out of range [%d, %d]",
			g.Pattern, g.Weight, MinWeight, MaxWeight).
			WithDetail("pattern", g.Pattern).
			WithDetail("weight", g.Weight)
	}
	return nil
}
