package plonk

import (
	"github.com/chndr1/plonkish/value"
	"github.com/consensys/gnark/constraint"
)

// Assignment is the sink the layouter writes a synthesis pass into. The
// backend supplies one per pass: a shape recorder for key generation and a
// witness table for proving; both see the identical sequence of calls, which
// is what keeps the two passes structurally equal.
type Assignment interface {
	// EnterRegion and ExitRegion bracket one region's assignments.
	EnterRegion(name string)
	ExitRegion()

	// AssignAdvice writes a (possibly unknown) witness value.
	AssignAdvice(col Column, row int, v value.Value[constraint.Element]) error

	// AssignFixed writes a circuit-shape constant. Implementations reject
	// unknown values with ErrFixedUnknown.
	AssignFixed(col Column, row int, v value.Value[constraint.Element]) error

	// Copy records an equality constraint between two assigned cells.
	Copy(a, b Cell) error

	// ConstrainInstance binds cell to row of the given instance column.
	ConstrainInstance(cell Cell, col Column, row int) error
}
