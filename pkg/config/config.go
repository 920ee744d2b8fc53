package config

import (
	"slices"
	"time"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
)

// Config is the resolved mimeglob configuration
type Config struct {
	Database DatabaseConfig `koanf:"database" json:"database" yaml:"database" toml:"database"`
	Matching MatchingConfig `koanf:"matching" json:"matching" yaml:"matching" toml:"matching"`
	Output   OutputConfig   `koanf:"output" json:"output" yaml:"output" toml:"output"`
	Globs    []GlobConfig   `koanf:"globs" json:"globs,omitempty" yaml:"globs,omitempty" toml:"globs,omitempty"`
}

// DatabaseConfig selects the glob database files
type DatabaseConfig struct {
	UseSystem bool     `koanf:"use_system" json:"use_system" yaml:"use_system" toml:"use_system"`
	Files     []string `koanf:"files" json:"files" yaml:"files" toml:"files"`
}

// MatchingConfig tunes the registry
type MatchingConfig struct {
	FastIndex    bool          `koanf:"fast_index" json:"fast_index" yaml:"fast_index" toml:"fast_index"`
	RegexTimeout time.Duration `koanf:"regex_timeout" json:"regex_timeout" yaml:"regex_timeout" toml:"regex_timeout"`
}

// OutputConfig controls CLI rendering
type OutputConfig struct {
	Format string `koanf:"format" json:"format" yaml:"format" toml:"format"`
	// Styles is a YAML file replacing the built-in terminal styles
	Styles string `koanf:"styles" json:"styles" yaml:"styles" toml:"styles"`
}

// GlobConfig is an inline glob record. Weight is optional and defaults to
// glob.DefaultWeight.
type GlobConfig struct {
	Pattern       string `koanf:"pattern" json:"pattern" yaml:"pattern" toml:"pattern"`
	MimeType      string `koanf:"mime_type" json:"mime_type" yaml:"mime_type" toml:"mime_type"`
	Weight        *int   `koanf:"weight" json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
	CaseSensitive bool   `koanf:"case_sensitive" json:"case_sensitive" yaml:"case_sensitive" toml:"case_sensitive"`
}

// OutputFormats lists the accepted output.format values
var OutputFormats = []string{"auto", "term", "text", "json", "yaml", "toml"}

// Glob converts the record to a glob.Glob
func (g GlobConfig) Glob() glob.Glob {
	weight := glob.DefaultWeight
	if g.Weight != nil {
		weight = *g.Weight
	}
	return glob.Glob{
		Pattern:       g.Pattern,
		MimeType:      g.MimeType,
		Weight:        weight,
		CaseSensitive: g.CaseSensitive,
	}
}

// InlineGlobs returns the configured inline records
func (c *Config) InlineGlobs() []glob.Glob {
	globs := make([]glob.Glob, 0, len(c.Globs))
	for _, g := range c.Globs {
		globs = append(globs, g.Glob())
	}
	return globs
}

// Validate checks values the loaders cannot check by type alone
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("key", "output.format").
			WithDetail("allowed", OutputFormats)
	}

	if c.Matching.RegexTimeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "negative regex timeout %s", c.Matching.RegexTimeout).
			WithDetail("key", "matching.regex_timeout")
	}

	for i, g := range c.Globs {
		if err := g.Glob().Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid glob %d", i).
				WithDetail("key", "globs").
				WithDetail("index", i)
		}
	}

	return nil
}
