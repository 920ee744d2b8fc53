package glob

import "strings"

// Kind identifies which matcher a pattern uses
type Kind int

const (
	// KindLiteral matches the whole file name exactly
	KindLiteral Kind = iota
	// KindPrefix is a pattern with a single trailing star, e.g. "README*"
	KindPrefix
	// KindSuffix is a pattern with a single leading star, e.g. "*.txt"
	KindSuffix
	// KindThreeDigitExt is the legacy "[0-9][0-9][0-9].vdr" pattern
	KindThreeDigitExt
	// KindAnimExt is the legacy "*.anim[1-9j]" pattern
	KindAnimExt
	// KindGeneric is matched with a regular expression
	KindGeneric
)

const (
	threeDigitExtPattern = "[0-9][0-9][0-9].vdr"
	animExtPattern       = "*.anim[1-9j]"
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPrefix:
		return "prefix"
	case KindSuffix:
		return "suffix"
	case KindThreeDigitExt:
		return "three-digit-ext"
	case KindAnimExt:
		return "anim-ext"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Classify returns the kind of a pattern. Patterns without '?' or '[' that
// have at most one star are handled by the literal, prefix and suffix
// matchers; two legacy shapes get dedicated matchers; everything else is
// generic.
func Classify(pattern string) Kind {
	if !strings.ContainsAny(pattern, "?[") {
		switch strings.Count(pattern, "*") {
		case 0:
			return KindLiteral
		case 1:
			if pattern[0] == '*' {
				return KindSuffix
			}
			if pattern[len(pattern)-1] == '*' {
				return KindPrefix
			}
		}
	}

	switch pattern {
	case threeDigitExtPattern:
		return KindThreeDigitExt
	case animExtPattern:
		return KindAnimExt
	}

	return KindGeneric
}
