package glob

import (
	"strings"
	"time"

	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/dlclark/regexp2"
)

// globToRegexp converts a glob into an expression anchored at both ends.
// '*' and '?' match any run and any single rune, separators included.
// A class may be negated with '!' or '^', and a ']' right after the opening
// bracket (or negation) is literal.
func globToRegexp(pattern string) (string, error) {
	runes := []rune(pattern)

	var b strings.Builder
	b.WriteString(`\A(?:`)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		case '[':
			end, class, err := convertClass(runes, i)
			if err != nil {
				return "", err
			}
			b.WriteString(class)
			i = end
		case ']', '}':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteString(regexp2.Escape(string(c)))
		}
	}
	b.WriteString(`)\z`)
	return b.String(), nil
}

// convertClass converts the class opening at runes[start] and returns the
// index of its closing bracket.
func convertClass(runes []rune, start int) (int, string, error) {
	var b strings.Builder
	b.WriteByte('[')

	i := start + 1
	if i < len(runes) && (runes[i] == '!' || runes[i] == '^') {
		b.WriteByte('^')
		i++
	}
	if i < len(runes) && runes[i] == ']' {
		b.WriteString(`\]`)
		i++
	}

	for ; i < len(runes); i++ {
		switch c := runes[i]; c {
		case ']':
			b.WriteByte(']')
			return i, b.String(), nil
		case '\\', '[', '^':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}

	return 0, "", errors.Newf(errors.ErrPatternCompile,
		"unterminated character class at offset %d in %q", start, string(runes))
}

// compileGlob converts and compiles a generic pattern. A positive timeout
// bounds every match against it.
func compileGlob(pattern string, timeout time.Duration) (*regexp2.Regexp, error) {
	expr, err := globToRegexp(pattern)
	if err != nil {
		return nil, err
	}

	re, err := regexp2.Compile(expr, regexp2.Singleline)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternCompile, "cannot compile glob %q", pattern).
			WithDetail("expression", expr)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return re, nil
}
