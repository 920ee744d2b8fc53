package glob

import (
	"math"
	"slices"
)

// MatchResult accumulates pattern hits for one file name and keeps the
// winning group in front. Create it with NewMatchResult.
type MatchResult struct {
	bestWeight        int
	bestSpecificity   int
	knownSuffixLength int
	winners           []string
	all               []string
}

// NewMatchResult returns an empty result
func NewMatchResult() *MatchResult {
	return &MatchResult{bestWeight: math.MinInt}
}

// AddMatch records a hit. The order of the checks matters:
//
//  1. a MIME type already seen is ignored, whatever its priority now;
//  2. a lower weight is appended to the full list only;
//  3. at equal weight, a lower specificity is dropped and a higher one
//     replaces the winning group;
//  4. a new winning group is reset and its first member goes to the front
//     of the full list, while co-winners are appended.
func (r *MatchResult) AddMatch(mimeType string, weight, specificity int) {
	if slices.Contains(r.all, mimeType) {
		return
	}

	if weight < r.bestWeight {
		r.all = append(r.all, mimeType)
		return
	}

	promote := weight > r.bestWeight
	if !promote {
		if specificity < r.bestSpecificity {
			return
		}
		if specificity > r.bestSpecificity {
			promote = true
		}
	}

	if promote {
		r.winners = r.winners[:0]
		r.bestSpecificity = specificity
		r.bestWeight = weight
	}

	if slices.Contains(r.winners, mimeType) {
		return
	}
	r.winners = append(r.winners, mimeType)
	if promote {
		r.all = slices.Insert(r.all, 0, mimeType)
	} else {
		r.all = append(r.all, mimeType)
	}
	r.knownSuffixLength = specificity
}

// Winners returns the MIME types tied for best weight and specificity
func (r *MatchResult) Winners() []string {
	return slices.Clone(r.winners)
}

// AllMatches returns every distinct matched MIME type, winners first
func (r *MatchResult) AllMatches() []string {
	return slices.Clone(r.all)
}

// Winner returns the first winner, or "" when nothing matched
func (r *MatchResult) Winner() string {
	if len(r.winners) == 0 {
		return ""
	}
	return r.winners[0]
}

// Empty reports whether nothing matched
func (r *MatchResult) Empty() bool {
	return len(r.all) == 0
}

// Weight returns the winning weight, or -1 when nothing matched
func (r *MatchResult) Weight() int {
	if len(r.winners) == 0 {
		return -1
	}
	return r.bestWeight
}

// KnownSuffixLength returns the literal suffix length of the last winning
// hit, 0 when it came from a pattern that is not "*.ext" shaped
func (r *MatchResult) KnownSuffixLength() int {
	return r.knownSuffixLength
}

// Suffix returns the trailing part of filename covered by the winning
// pattern, e.g. "tar.bz2" for "archive.tar.bz2" matched by "*.tar.bz2"
func (r *MatchResult) Suffix(filename string) string {
	n := r.knownSuffixLength
	if n <= 0 || len(r.winners) == 0 {
		return ""
	}
	runes := []rune(filename)
	if n > len(runes) {
		return ""
	}
	return string(runes[len(runes)-n:])
}
