// Package database assembles a glob.Registry from the configured sources:
// the system shared-mime-info databases, extra database files and inline
// globs, in that order.
package database

import (
	"github.com/arthur-debert/mimeglob/pkg/config"
	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
	"github.com/arthur-debert/mimeglob/pkg/globs2"
	"github.com/arthur-debert/mimeglob/pkg/logging"
	"github.com/rs/zerolog"
)

// Builder loads registries
type Builder struct {
	systemFiles func() []string
	loader      *globs2.Loader
	logger      zerolog.Logger
}

// NewBuilder creates a builder reading the XDG system databases
func NewBuilder() *Builder {
	return &Builder{
		systemFiles: globs2.SystemFiles,
		loader:      globs2.NewLoader(),
		logger:      logging.GetLogger("database"),
	}
}

// WithSystemFiles replaces the system database lookup
func (b *Builder) WithSystemFiles(fn func() []string) *Builder {
	b.systemFiles = fn
	return b
}

// Build is NewBuilder().Build(cfg)
func Build(cfg *config.Config) (*glob.Registry, error) {
	return NewBuilder().Build(cfg)
}

// Build creates a registry from cfg. Unreadable system databases are logged
// and skipped; configured files and inline globs must load.
func (b *Builder) Build(cfg *config.Config) (*glob.Registry, error) {
	done := logging.LogOperationStart(b.logger, "build registry")
	defer done()

	reg := glob.NewRegistry(
		glob.WithFastIndex(cfg.Matching.FastIndex),
		glob.WithRegexTimeout(cfg.Matching.RegexTimeout),
		glob.WithLogger(logging.GetLogger("glob.registry")),
	)

	if cfg.Database.UseSystem {
		for _, path := range b.systemFiles() {
			if _, err := b.loader.LoadFile(reg, path); err != nil {
				b.logger.Warn().Err(err).Str("path", path).Msg("Skipping system glob database")
			}
		}
	}

	for _, path := range cfg.Database.Files {
		if _, err := b.loader.LoadFile(reg, path); err != nil {
			return nil, err
		}
	}

	if err := reg.AddGlobs(cfg.InlineGlobs()); err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), "invalid inline glob")
	}

	b.logger.Info().
		Int("globs", reg.Len()).
		Int("mimeTypes", len(reg.MimeTypes())).
		Msg("Glob registry ready")

	return reg, nil
}
