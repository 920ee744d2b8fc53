package glob

import (
	"slices"
	"sort"
	"time"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/rs/zerolog"
)

// Registry resolves file names against a set of glob records
type Registry struct {
	high PatternList // weight > DefaultWeight
	ext  PatternList // index eligible records while the index is disabled
	low  PatternList // weight <= DefaultWeight, not index eligible
	fast *FastIndex

	globs []Glob

	useFastIndex bool
	regexTimeout time.Duration
	logger       zerolog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger for registration and query diagnostics. The
// default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithRegexTimeout bounds each generic pattern match. Zero means no bound.
func WithRegexTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.regexTimeout = d
	}
}

// WithFastIndex enables or disables the extension index. With the index
// disabled the eligible records are scanned in the index's place, between the
// high and low weight scans, so results do not change.
func WithFastIndex(enabled bool) Option {
	return func(r *Registry) {
		r.useFastIndex = enabled
	}
}

// WithoutFastIndex is WithFastIndex(false)
func WithoutFastIndex() Option {
	return WithFastIndex(false)
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		fast:         NewFastIndex(),
		useFastIndex: true,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddGlob registers a record. Registration order is kept as scan order.
func (r *Registry) AddGlob(g Glob) error {
	if err := g.Validate(); err != nil {
		return err
	}

	ext, eligible := FastExtension(g)
	if eligible && r.useFastIndex {
		r.fast.Add(ext, g.MimeType)
		r.globs = append(r.globs, g)
		r.logger.Trace().
			Str("pattern", g.Pattern).
			Str("mimeType", g.MimeType).
			Str("ext", ext).
			Msg("Indexed glob by extension")
		return nil
	}

	p, err := compilePattern(g, r.regexTimeout)
	if err != nil {
		return err
	}
	if p.Err() != nil {
		r.logger.Warn().
			Err(p.Err()).
			Str("pattern", g.Pattern).
			Str("mimeType", g.MimeType).
			Msg("Glob cannot be compiled and will never match")
	}

	switch {
	case p.weight > DefaultWeight:
		r.high = append(r.high, p)
	case eligible:
		r.ext = append(r.ext, p)
	default:
		r.low = append(r.low, p)
	}
	r.globs = append(r.globs, g)

	r.logger.Trace().
		Str("pattern", g.Pattern).
		Str("mimeType", g.MimeType).
		Int("weight", g.Weight).
		Str("kind", p.kind.String()).
		Msg("Registered glob")

	return nil
}

// AddGlobs registers records in order and stops at the first rejected one
func (r *Registry) AddGlobs(globs []Glob) error {
	for i, g := range globs {
		if err := r.AddGlob(g); err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err), "glob %d rejected", i).
				WithDetail("index", i)
		}
	}
	return nil
}

// RemoveMimeType drops every record for mimeType
func (r *Registry) RemoveMimeType(mimeType string) {
	before := len(r.globs)

	r.fast.RemoveMimeType(mimeType)
	r.high = r.high.RemoveMimeType(mimeType)
	r.ext = r.ext.RemoveMimeType(mimeType)
	r.low = r.low.RemoveMimeType(mimeType)
	r.globs = slices.DeleteFunc(r.globs, func(g Glob) bool {
		return g.MimeType == mimeType
	})

	r.logger.Debug().
		Str("mimeType", mimeType).
		Int("removed", before-len(r.globs)).
		Msg("Removed mime type globs")
}

// MatchingGlobs returns the MIME types whose patterns match filename. The
// high weight scan, the extension index and the low weight scan always all
// run, so a longer low weight pattern can still outrank an indexed one.
func (r *Registry) MatchingGlobs(filename string) *MatchResult {
	result := NewMatchResult()
	lower := FoldCase(filename)

	r.high.match(filename, lower, result)
	if r.useFastIndex {
		r.fast.Match(filename, result)
	} else {
		r.ext.match(filename, lower, result)
	}
	r.low.match(filename, lower, result)

	r.logger.Trace().
		Str("filename", filename).
		Strs("winners", result.winners).
		Int("matches", len(result.all)).
		Msg("Matched file name")

	return result
}

// Globs returns the registered records in registration order
func (r *Registry) Globs() []Glob {
	return slices.Clone(r.globs)
}

// Len returns the number of registered records
func (r *Registry) Len() int {
	return len(r.globs)
}

// MimeTypes returns the distinct registered MIME types in sorted order
func (r *Registry) MimeTypes() []string {
	seen := make(map[string]struct{}, len(r.globs))
	var mimeTypes []string
	for _, g := range r.globs {
		if _, ok := seen[g.MimeType]; ok {
			continue
		}
		seen[g.MimeType] = struct{}{}
		mimeTypes = append(mimeTypes, g.MimeType)
	}
	sort.Strings(mimeTypes)
	return mimeTypes
}
