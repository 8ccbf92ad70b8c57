package repair

import (
	"regexp"
	"strings"
)

// ForwardTypes are the aggregate types the manual references before it
// defines them.
var ForwardTypes = []string{
	"MP_GRP_POS_INFO",
	"MP_P_VAR_BUFF",
	"MP_ALARM_DATA",
	"MP_MOV_CTRL_DATA",
	"MP_JOB_POS_DATA",
	"MP_INTP_TYPE",
	"MP_POS",
	"MP_POS_TAG",
	"MP_TRQLMT_RANGE",
	"dirent",
	"DIR",
}

var (
	forwardTypePattern = `typedef\s+(?:struct|enum|union)\s*\{[^}]+\}\s*(?:` + strings.Join(ForwardTypes, "|") + `)\s*;`
	direntPattern      = `struct\s+dirent\s*\{[^}]+\}\s*;`

	forwardTypeRe = regexp.MustCompile(forwardTypePattern)
	direntRe      = regexp.MustCompile(direntPattern)
	typedefRe     = regexp.MustCompile(`typedef\s+`)

	leadingForwardTypeRe = regexp.MustCompile(`^` + forwardTypePattern)
	leadingDirentRe      = regexp.MustCompile(`^` + direntPattern)
)

// finder returns the non-overlapping spans of one kind of hoisted
// definition in s.
type finder func(s string) [][]int

// HoistTypes moves the forward-referenced type definitions to the top of
// text: first the allow-listed aggregate typedefs, then struct dirent,
// then simple non-aggregate typedefs. Each kind is prepended in reverse
// order of discovery, so the simple typedefs end up on top. Definitions
// already at the top in that order stay where they are.
func HoistTypes(text string) string {
	for _, find := range []finder{
		findRegexp(forwardTypeRe),
		findRegexp(direntRe),
		findSimpleTypedefs,
	} {
		text = hoist(text, find)
	}
	return text
}

func hoist(text string, find finder) string {
	start := leadingRegion(text)
	// Prepending a match and cutting it out keeps the offsets of everything
	// after it, so the remaining spans stay valid.
	for _, span := range find(text[start:]) {
		lo, hi := start+span[0], start+span[1]
		text = text[lo:hi] + text[:lo] + text[hi:]
	}
	return text
}

func findRegexp(re *regexp.Regexp) finder {
	return func(s string) [][]int {
		return re.FindAllStringIndex(s, -1)
	}
}

// findSimpleTypedefs finds typedefs of anything but a struct, enum or union,
// each running up to the next semicolon.
func findSimpleTypedefs(s string) [][]int {
	var spans [][]int
	pos := 0
	for pos < len(s) {
		loc := typedefRe.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		lo, hi := pos+loc[0], pos+loc[1]
		if isAggregate(s[hi:]) {
			pos = hi
			continue
		}
		end := strings.IndexByte(s[hi:], ';')
		if end < 0 {
			break
		}
		if end == 0 {
			pos = hi
			continue
		}
		spans = append(spans, []int{lo, hi + end + 1})
		pos = hi + end + 1
	}
	return spans
}

func isAggregate(s string) bool {
	for _, kw := range []string{"struct", "enum", "union"} {
		if strings.HasPrefix(s, kw) {
			return true
		}
	}
	return false
}

// Kinds of hoisted definition, in the order they appear once hoisted.
const (
	kindSimple = iota
	kindDirent
	kindForward
	kindNone
)

// leadingRegion returns the length of the prefix of text made of
// whitespace, #define lines and hoisted definitions in hoisted order:
// simple typedefs, then struct dirent, then the allow-listed aggregates.
func leadingRegion(text string) int {
	pos, phase := 0, kindSimple
	for {
		rest := text[pos:]
		trimmed := strings.TrimLeft(rest, " \t\r\n\f\v")
		pos += len(rest) - len(trimmed)
		if trimmed == "" {
			return pos
		}

		if strings.HasPrefix(trimmed, "#define") {
			end := strings.IndexByte(trimmed, '\n')
			if end < 0 {
				return len(text)
			}
			pos += end + 1
			continue
		}

		n, kind := leadingDefinition(trimmed)
		if kind < phase || kind == kindNone {
			return pos
		}
		pos += n
		phase = kind
	}
}

// leadingDefinition returns the length and kind of the hoistable
// definition at the start of s. The kind is kindNone if there is none.
func leadingDefinition(s string) (int, int) {
	if loc := leadingForwardTypeRe.FindStringIndex(s); loc != nil {
		return loc[1], kindForward
	}
	if loc := leadingDirentRe.FindStringIndex(s); loc != nil {
		return loc[1], kindDirent
	}
	if spans := findSimpleTypedefs(s); len(spans) > 0 && spans[0][0] == 0 {
		return spans[0][1], kindSimple
	}
	return 0, kindNone
}
