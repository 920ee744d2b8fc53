package glob

import "slices"

// PatternList is an ordered list of patterns, scanned in registration order
type PatternList []*Pattern

// Match adds every pattern matching filename to result. All patterns are
// checked so that lower priority matches still reach the full match list.
func (l PatternList) Match(filename string, result *MatchResult) {
	l.match(filename, FoldCase(filename), result)
}

func (l PatternList) match(name, lower string, result *MatchResult) {
	for _, p := range l {
		if p.matchFolded(name, lower) {
			result.AddMatch(p.mimeType, p.weight, p.specificity)
		}
	}
}

// RemoveMimeType returns the list without the patterns for mimeType
func (l PatternList) RemoveMimeType(mimeType string) PatternList {
	return slices.DeleteFunc(l, func(p *Pattern) bool {
		return p.mimeType == mimeType
	})
}
