// Package glob resolves file names to MIME types using shared-mime-info style
// glob patterns.
//
// A Registry holds an ordered set of glob records. Each record maps a
// shell-style pattern to a MIME type with a weight (0-100, default 50) and a
// case-sensitivity flag. MatchingGlobs returns every MIME type whose pattern
// matches a file name, with the winning group first.
//
// # Pattern Kinds
//
// Patterns are classified once, when they are registered:
//
//   - `Makefile` - Literal, exact match
//   - `*.txt` - Suffix, one leading star
//   - `README*` - Prefix, one trailing star
//   - `[0-9][0-9][0-9].vdr` - legacy three digit extension
//   - `*.anim[1-9j]` - legacy single character anim extension
//   - anything else - Generic, matched through an anchored regular expression
//
// Case-insensitive patterns are folded to lower case and compared against the
// folded file name. Folding (FoldCase) only touches valid UTF-8; other bytes
// are kept, so "*.\xff" does not match "a.\xfe". Generic patterns are matched
// rune by rune and see every invalid byte as U+FFFD. A Generic pattern that cannot be converted or
// compiled never matches; it does not affect any other pattern.
//
// # Priority
//
// Higher weight always wins. Among equal weights, the pattern with the longer
// literal suffix wins, so `*.tar.bz2` beats `*.bz2` for "a.tar.bz2". MIME types
// tied on both keys are all winners.
//
// A MIME type is recorded the first time any pattern produces it; later
// patterns for the same MIME type never change its position, even when they
// carry a higher weight.
//
// # Lookup Phases
//
// Registration splits patterns into three buckets:
//
//   - weight > 50, scanned first
//   - case-insensitive weight 50 `*.ext` patterns with a single segment
//     extension, served from an extension map
//   - everything else, scanned last
//
// The extension map gives the same results as scanning those patterns would.
// WithoutFastIndex keeps the same three phases and scans the eligible
// patterns in the second one.
//
// # Concurrency
//
// A Registry does no locking. Build it once and share it read-only, or guard
// AddGlob and RemoveMimeType with an external lock.
package glob
