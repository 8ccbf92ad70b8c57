package mock

import "github.com/fwojciec/mpheader"

var _ mpheader.Repairer = (*Repairer)(nil)

// Repairer is a mock implementation of mpheader.Repairer.
type Repairer struct {
	RepairFn func(text string) string
}

func (r *Repairer) Repair(text string) string {
	return r.RepairFn(text)
}
