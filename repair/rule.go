package repair

import (
	"regexp"
	"strings"

	"github.com/fwojciec/mpheader"
)

// Func returns a Rule that applies fn.
func Func(name string, fn func(string) string) mpheader.Rule {
	return &funcRule{name: name, fn: fn}
}

// Literal returns a Rule that replaces every occurrence of from with to.
func Literal(name, from, to string) mpheader.Rule {
	return Func(name, fixpoint(func(s string) string {
		return strings.ReplaceAll(s, from, to)
	}))
}

// Regexp returns a Rule that replaces every match of pattern with repl.
// repl may refer to submatches as ${1}. It panics if pattern does not
// compile.
func Regexp(name, pattern, repl string) mpheader.Rule {
	re := regexp.MustCompile(pattern)
	return Func(name, fixpoint(func(s string) string {
		return re.ReplaceAllString(s, repl)
	}))
}

type funcRule struct {
	name string
	fn   func(string) string
}

func (r *funcRule) Name() string {
	return r.name
}

func (r *funcRule) Apply(text string) string {
	return r.fn(text)
}

// fixpoint re-applies fn until the text stops changing. Matches that
// overlap a previous replacement are picked up by the next pass. fn must
// eventually stop matching its own output.
func fixpoint(fn func(string) string) func(string) string {
	return func(s string) string {
		for {
			next := fn(s)
			if next == s {
				return s
			}
			s = next
		}
	}
}
