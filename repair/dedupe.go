package repair

import "regexp"

var (
	structRe           = regexp.MustCompile(`struct\s+(\w+)\s*\{[^}]+\}\s*;`)
	typedefAggregateRe = regexp.MustCompile(`typedef\s+(?:struct|enum|union)\s*\{[^}]+\}\s*(\w+)\s*;`)
)

// DedupeDefinitions keeps only the first definition of each tagged struct,
// then of each typedef'd struct, enum or union.
func DedupeDefinitions(text string) string {
	text = dedupe(text, structRe)
	return dedupe(text, typedefAggregateRe)
}

// dedupe removes every match of re whose first submatch names an earlier
// match. Later copies are removed first so earlier offsets stay valid.
func dedupe(text string, re *regexp.Regexp) string {
	var names []string
	counts := make(map[string]int)
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if counts[m[1]] == 0 {
			names = append(names, m[1])
		}
		counts[m[1]]++
	}

	for _, name := range names {
		if counts[name] < 2 {
			continue
		}
		var spans [][]int
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			if text[m[2]:m[3]] == name {
				spans = append(spans, m[:2])
			}
		}
		for i := len(spans) - 1; i > 0; i-- {
			text = text[:spans[i][0]] + text[spans[i][1]:]
		}
	}
	return text
}
