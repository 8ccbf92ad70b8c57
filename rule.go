package mpheader

// Rule is one deterministic text transform in the repair catalog.
type Rule interface {
	// Name identifies the rule in logs and tests.
	Name() string

	// Apply returns text with the rule applied.
	Apply(text string) string
}

// Repairer turns the concatenated declaration text into valid C.
type Repairer interface {
	Repair(text string) string
}
