package repair

import (
	"regexp"
	"strings"

	"github.com/fwojciec/mpheader/bloom"
)

const definePrefix = "#define"

var (
	defineRe      = regexp.MustCompile(`#define *([^\s(]+)\s*([^;\n]*);?`)
	defineParenRe = regexp.MustCompile(`#define (\w+) \((\d+)\)`)
)

// NormalizeDefines puts every #define on its own line as
// "#define NAME VALUE" without a trailing semicolon, and drops the
// parentheses around a bare numeric value.
func NormalizeDefines(text string) string {
	var b strings.Builder
	last := 0
	for _, m := range defineRe.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])
		if m[0] > 0 && text[m[0]-1] != '\n' {
			b.WriteByte('\n')
		}
		b.WriteString(definePrefix + " ")
		b.WriteString(text[m[2]:m[3]])
		b.WriteByte(' ')
		b.WriteString(text[m[4]:m[5]])
		last = m[1]
	}
	b.WriteString(text[last:])
	return defineParenRe.ReplaceAllString(b.String(), definePrefix+" ${1} ${2}")
}

// HoistDefines moves the #define lines to the top of text, keeping their
// relative order, and drops repeated ones.
func HoistDefines(text string) string {
	lines := strings.Split(text, "\n")

	var defines, rest []string
	for _, line := range lines {
		if strings.HasPrefix(line, definePrefix) {
			defines = append(defines, line)
		} else {
			rest = append(rest, line)
		}
	}
	if len(defines) == 0 {
		return text
	}

	seen := bloom.NewSet(uint(len(defines)), 0.01)
	out := make([]string, 0, len(lines))
	for _, line := range defines {
		if seen.Insert(line) {
			out = append(out, line)
		}
	}
	return strings.Join(append(out, rest...), "\n")
}
