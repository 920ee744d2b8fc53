package glob

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// matcher tests an already case-folded file name against one pattern
type matcher interface {
	match(name string) bool
}

type literalMatcher string

func (m literalMatcher) match(name string) bool {
	return name == string(m)
}

// suffixMatcher holds the pattern without its leading star
type suffixMatcher string

func (m suffixMatcher) match(name string) bool {
	return strings.HasSuffix(name, string(m))
}

// prefixMatcher holds the pattern without its trailing star
type prefixMatcher string

func (m prefixMatcher) match(name string) bool {
	return strings.HasPrefix(name, string(m))
}

type threeDigitExtMatcher struct{}

func (threeDigitExtMatcher) match(name string) bool {
	if len(name) != 7 {
		return false
	}
	for i := 0; i < 3; i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return name[3:] == ".vdr"
}

type animExtMatcher struct{}

func (animExtMatcher) match(name string) bool {
	n := len(name)
	if n < 6 {
		return false
	}
	last := name[n-1]
	if (last < '1' || last > '9') && last != 'j' {
		return false
	}
	return name[n-6:n-1] == ".anim"
}

// regexMatcher fails closed: a nil expression or a match error is a miss
type regexMatcher struct {
	re *regexp2.Regexp
}

func (m regexMatcher) match(name string) bool {
	if m.re == nil {
		return false
	}
	ok, err := m.re.MatchString(name)
	return err == nil && ok
}

// newMatcher builds the matcher for a folded pattern of the given kind. For
// generic patterns that fail to compile, the returned matcher never matches
// and the error says why.
func newMatcher(kind Kind, pattern string, timeout time.Duration) (matcher, error) {
	switch kind {
	case KindLiteral:
		return literalMatcher(pattern), nil
	case KindSuffix:
		return suffixMatcher(pattern[1:]), nil
	case KindPrefix:
		return prefixMatcher(pattern[:len(pattern)-1]), nil
	case KindThreeDigitExt:
		return threeDigitExtMatcher{}, nil
	case KindAnimExt:
		return animExtMatcher{}, nil
	}

	re, err := compileGlob(pattern, timeout)
	if err != nil {
		return regexMatcher{}, err
	}
	return regexMatcher{re: re}, nil
}
