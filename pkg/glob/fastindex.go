package glob

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// FastIndex maps a lower-case single segment extension to the MIME types
// registered for "*.ext" at the default weight, in registration order.
type FastIndex struct {
	exts map[string][]string
}

// NewFastIndex creates an empty index
func NewFastIndex() *FastIndex {
	return &FastIndex{exts: make(map[string][]string)}
}

// FastExtension returns the extension a record is indexed under, and false
// when the record must be scanned instead. Only case-insensitive default
// weight "*.ext" records qualify, where ext is non-empty and has no
// wildcard or further dot.
func FastExtension(g Glob) (string, bool) {
	if g.Weight != DefaultWeight || g.CaseSensitive {
		return "", false
	}
	ext, ok := strings.CutPrefix(g.Pattern, "*.")
	if !ok || ext == "" || strings.ContainsAny(ext, "*?[.") {
		return "", false
	}
	return FoldCase(ext), true
}

// Add records mimeType for ext unless it is already there
func (f *FastIndex) Add(ext, mimeType string) {
	ext = FoldCase(ext)
	if slices.Contains(f.exts[ext], mimeType) {
		return
	}
	f.exts[ext] = append(f.exts[ext], mimeType)
}

// Lookup returns the MIME types for a lower-case extension
func (f *FastIndex) Lookup(ext string) []string {
	return slices.Clone(f.exts[ext])
}

// RemoveMimeType drops mimeType from every extension
func (f *FastIndex) RemoveMimeType(mimeType string) {
	for ext, mimeTypes := range f.exts {
		mimeTypes = slices.DeleteFunc(mimeTypes, func(m string) bool { return m == mimeType })
		if len(mimeTypes) == 0 {
			delete(f.exts, ext)
			continue
		}
		f.exts[ext] = mimeTypes
	}
}

// Len returns the number of indexed extensions
func (f *FastIndex) Len() int {
	return len(f.exts)
}

// Match looks up the text after the last dot of filename. Hits are added at
// the default weight with the extension length as specificity, the same
// values the equivalent "*.ext" pattern would produce.
func (f *FastIndex) Match(filename string, result *MatchResult) {
	dot := strings.LastIndexByte(filename, '.')
	if dot < 0 {
		return
	}
	ext := FoldCase(filename[dot+1:])
	mimeTypes, ok := f.exts[ext]
	if !ok {
		return
	}
	n := utf8.RuneCountInString(ext)
	for _, mimeType := range mimeTypes {
		result.AddMatch(mimeType, DefaultWeight, n)
	}
}
