package testutil

import (
	"strconv"
	"strings"
	"testing"
)

// Globs2Builder assembles globs2 database content line by line
type Globs2Builder struct {
	lines []string
}

// NewGlobs2 starts an empty database
func NewGlobs2() *Globs2Builder {
	return &Globs2Builder{}
}

// Comment adds a comment line
func (b *Globs2Builder) Comment(text string) *Globs2Builder {
	b.lines = append(b.lines, "# "+text)
	return b
}

// Glob adds a case-insensitive record
func (b *Globs2Builder) Glob(weight int, mimeType, pattern string) *Globs2Builder {
	b.lines = append(b.lines, strconv.Itoa(weight)+":"+mimeType+":"+pattern)
	return b
}

// CaseSensitive adds a record with the cs flag
func (b *Globs2Builder) CaseSensitive(weight int, mimeType, pattern string) *Globs2Builder {
	b.lines = append(b.lines, strconv.Itoa(weight)+":"+mimeType+":"+pattern+":cs")
	return b
}

// NoGlobs adds a record clearing the earlier globs of mimeType
func (b *Globs2Builder) NoGlobs(mimeType string) *Globs2Builder {
	b.lines = append(b.lines, "50:"+mimeType+":__NOGLOBS__")
	return b
}

// Line adds a raw line
func (b *Globs2Builder) Line(line string) *Globs2Builder {
	b.lines = append(b.lines, line)
	return b
}

// String returns the database content
func (b *Globs2Builder) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

// WriteTo writes the database to dir/name and returns its path
func (b *Globs2Builder) WriteTo(t *testing.T, dir, name string) string {
	t.Helper()
	return CreateFile(t, dir, name, b.String())
}
