// Package repair turns the concatenated declaration text into C that
// compiles, using an ordered catalog of text rules.
package repair

import (
	"slices"

	"github.com/fwojciec/mpheader"
)

var _ mpheader.Repairer = (*Engine)(nil)

// Engine applies an ordered list of rules.
type Engine struct {
	rules []mpheader.Rule
}

// NewEngine returns an Engine that applies rules in the given order.
func NewEngine(rules ...mpheader.Rule) *Engine {
	return &Engine{rules: slices.Clone(rules)}
}

// Repair applies every rule to text exactly once, in order.
func (e *Engine) Repair(text string) string {
	for _, r := range e.rules {
		text = r.Apply(text)
	}
	return text
}

// Rules returns the rules in application order.
func (e *Engine) Rules() []mpheader.Rule {
	return slices.Clone(e.rules)
}
