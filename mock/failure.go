package mock

import (
	"fmt"

	"github.com/chndr1/plonkish/plonk"
)

// Failure describes one violated constraint found by Verify.
type Failure interface {
	fmt.Stringer
}

// GateFailure reports a gate polynomial that does not vanish at a row, or
// that could not be evaluated because a queried cell is unassigned.
type GateFailure struct {
	Gate   string
	Poly   int
	Row    int
	Region string
	// Unknown is set when the polynomial evaluated to an unknown value
	// instead of a nonzero one.
	Unknown bool
}

func (f GateFailure) String() string {
	what := "does not vanish"
	if f.Unknown {
		what = "references an unassigned cell"
	}
	if f.Region != "" {
		return fmt.Sprintf("gate %q poly %d %s at row %d (region %q)", f.Gate, f.Poly, what, f.Row, f.Region)
	}
	return fmt.Sprintf("gate %q poly %d %s at row %d", f.Gate, f.Poly, what, f.Row)
}

// CopyFailure reports a copy constraint whose two cells hold different values.
type CopyFailure struct {
	Constraint plonk.CopyConstraint
}

func (f CopyFailure) String() string {
	a, b := f.Constraint.A, f.Constraint.B
	return fmt.Sprintf("copy constraint %v[%d] = %v[%d] not satisfied", a.Column, a.Row, b.Column, b.Row)
}

// InstanceFailure reports a public-input binding whose cell value differs
// from the supplied instance value.
type InstanceFailure struct {
	Binding plonk.InstanceBinding
}

func (f InstanceFailure) String() string {
	b := f.Binding
	return fmt.Sprintf("cell %v[%d] differs from public input %v[%d]", b.Cell.Column, b.Cell.Row, b.Column, b.Row)
}
