package glob

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Pattern is a compiled glob record. It is immutable once built.
type Pattern struct {
	source        string
	pattern       string
	mimeType      string
	weight        int
	caseSensitive bool
	kind          Kind
	specificity   int
	matcher       matcher
	compileErr    error
}

// NewPattern compiles a glob record. Empty patterns and weights outside
// [MinWeight, MaxWeight] are rejected. A generic pattern that cannot be
// compiled is still returned; it never matches and Err reports the cause.
func NewPattern(g Glob) (*Pattern, error) {
	return compilePattern(g, 0)
}

func compilePattern(g Glob, timeout time.Duration) (*Pattern, error) {
	if err := g.validatePattern(); err != nil {
		return nil, err
	}

	folded := g.Pattern
	if !g.CaseSensitive {
		folded = FoldCase(folded)
	}

	p := &Pattern{
		source:        g.Pattern,
		pattern:       folded,
		mimeType:      g.MimeType,
		weight:        g.Weight,
		caseSensitive: g.CaseSensitive,
		kind:          Classify(folded),
		specificity:   specificity(folded),
	}
	p.matcher, p.compileErr = newMatcher(p.kind, folded, timeout)
	return p, nil
}

// MatchFileName reports whether filename matches pattern when the pattern is
// registered case-insensitively with the default weight.
func MatchFileName(pattern, filename string) bool {
	p, err := NewPattern(NewGlob(pattern, ""))
	if err != nil {
		return false
	}
	return p.Match(filename)
}

// isSimple reports whether the pattern is "*." followed by a literal
func isSimple(pattern string) bool {
	return strings.HasPrefix(pattern, "*.") &&
		strings.LastIndexByte(pattern, '*') == 0 &&
		!strings.ContainsAny(pattern, "?[")
}

// specificity is the literal suffix length of a simple pattern, 0 otherwise
func specificity(pattern string) int {
	if !isSimple(pattern) {
		return 0
	}
	return utf8.RuneCountInString(pattern) - 2
}

// Match reports whether filename matches the pattern
func (p *Pattern) Match(filename string) bool {
	if !p.caseSensitive {
		filename = FoldCase(filename)
	}
	return p.matcher.match(filename)
}

// matchFolded picks the original or lower-cased name by case sensitivity
func (p *Pattern) matchFolded(name, lower string) bool {
	if p.caseSensitive {
		return p.matcher.match(name)
	}
	return p.matcher.match(lower)
}

// Pattern returns the pattern as matched, lower-cased when case-insensitive
func (p *Pattern) Pattern() string { return p.pattern }

// MimeType returns the MIME type the pattern maps to
func (p *Pattern) MimeType() string { return p.mimeType }

// Weight returns the pattern weight
func (p *Pattern) Weight() int { return p.weight }

// CaseSensitive reports whether the pattern is matched case-sensitively
func (p *Pattern) CaseSensitive() bool { return p.caseSensitive }

// Kind returns the pattern kind
func (p *Pattern) Kind() Kind { return p.kind }

// Specificity returns the tie-break length used among equal weights
func (p *Pattern) Specificity() int { return p.specificity }

// Err returns the compile error of a generic pattern, if any
func (p *Pattern) Err() error { return p.compileErr }

// Glob returns the record the pattern was built from
func (p *Pattern) Glob() Glob {
	return Glob{
		Pattern:       p.source,
		MimeType:      p.mimeType,
		Weight:        p.weight,
		CaseSensitive: p.caseSensitive,
	}
}
