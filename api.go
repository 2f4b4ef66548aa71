// Package plonkish is a minimal PLONKish circuit arithmetization layer: it
// expresses an algebraic relation as typed columns, row gates and copy
// constraints that an external polynomial-commitment backend can compile into
// keys and proofs. The cryptographic backend itself is out of scope; the mock
// package stands in for it during development and testing.
package plonkish

import "github.com/chndr1/plonkish/plonk"

// CompileResult bundles the constraint system of a circuit with its
// witness-independent shape.
type CompileResult struct {
	cs    *plonk.ConstraintSystem
	shape *plonk.Shape
}

// ConstraintSystem returns the compiled column and gate declarations.
func (r *CompileResult) ConstraintSystem() *plonk.ConstraintSystem {
	return r.cs
}

// Shape returns the layout a backend derives proving and verifying keys from.
func (r *CompileResult) Shape() *plonk.Shape {
	return r.shape
}
