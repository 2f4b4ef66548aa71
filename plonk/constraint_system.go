// Package plonk implements a minimal PLONKish arithmetization layer: typed
// columns, custom gates as vanishing polynomials, region-based witness
// assignment with a floor planner, copy constraints and public-input bindings.
// It produces a complete row/column trace for an external proving backend to
// consume; it implements no cryptography itself.
package plonk

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/chndr1/plonkish/field"
)

// Gate is a named set of polynomial identities, active on every row.
type Gate struct {
	Name    string
	Polys   []Expression
	Queries []CellQuery
}

// ConstraintSystem collects column declarations, equality enabling and gates.
// It is built once per circuit type, independently of any witness, and is
// immutable once synthesis starts.
type ConstraintSystem struct {
	f field.Field

	numAdvice   int
	numFixed    int
	numInstance int

	// columns enabled for equality, keyed by Index*3+Kind
	equality    *bitset.BitSet
	permutation []Column

	gates []Gate
}

func NewConstraintSystem(f field.Field) *ConstraintSystem {
	return &ConstraintSystem{
		f:        f,
		equality: bitset.New(16),
	}
}

// Field returns the arithmetic engine the system was built for.
func (cs *ConstraintSystem) Field() field.Field {
	return cs.f
}

// AdviceColumn declares a new advice (witness) column.
func (cs *ConstraintSystem) AdviceColumn() Column {
	c := Column{Kind: Advice, Index: cs.numAdvice}
	cs.numAdvice++
	return c
}

// FixedColumn declares a new fixed (circuit constant) column.
func (cs *ConstraintSystem) FixedColumn() Column {
	c := Column{Kind: Fixed, Index: cs.numFixed}
	cs.numFixed++
	return c
}

// InstanceColumn declares a new instance (public input) column.
func (cs *ConstraintSystem) InstanceColumn() Column {
	c := Column{Kind: Instance, Index: cs.numInstance}
	cs.numInstance++
	return c
}

func (cs *ConstraintSystem) NumAdvice() int   { return cs.numAdvice }
func (cs *ConstraintSystem) NumFixed() int    { return cs.numFixed }
func (cs *ConstraintSystem) NumInstance() int { return cs.numInstance }

func equalityKey(col Column) uint {
	return uint(col.Index)*3 + uint(col.Kind)
}

// EnableEquality lets cells of col participate in copy constraints, adding the
// column to the permutation argument.
func (cs *ConstraintSystem) EnableEquality(col Column) {
	cs.checkColumn(col)
	if cs.equality.Test(equalityKey(col)) {
		return
	}
	cs.equality.Set(equalityKey(col))
	cs.permutation = append(cs.permutation, col)
}

// EqualityEnabled reports whether col participates in the permutation.
func (cs *ConstraintSystem) EqualityEnabled(col Column) bool {
	return cs.equality.Test(equalityKey(col))
}

// PermutationColumns returns the equality-enabled columns in declaration order.
func (cs *ConstraintSystem) PermutationColumns() []Column {
	return cs.permutation
}

// CreateGate registers a custom gate. The callback queries cells through the
// VirtualCells handle and returns the polynomials that must vanish on every
// row.
func (cs *ConstraintSystem) CreateGate(name string, f func(v *VirtualCells) []Expression) {
	vc := &VirtualCells{cs: cs}
	polys := f(vc)
	if len(polys) == 0 {
		panic(fmt.Sprintf("plonk: gate %q has no polynomials", name))
	}
	cs.gates = append(cs.gates, Gate{Name: name, Polys: polys, Queries: vc.queried})
}

// Gates returns the registered gates.
func (cs *ConstraintSystem) Gates() []Gate {
	return cs.gates
}

func (cs *ConstraintSystem) checkColumn(col Column) {
	n := 0
	switch col.Kind {
	case Advice:
		n = cs.numAdvice
	case Fixed:
		n = cs.numFixed
	case Instance:
		n = cs.numInstance
	default:
		panic(fmt.Sprintf("plonk: unknown column kind %d", col.Kind))
	}
	if col.Index < 0 || col.Index >= n {
		panic(fmt.Sprintf("plonk: column %v not declared", col))
	}
}

// VirtualCells records the cells a gate queries while the gate is being built.
type VirtualCells struct {
	cs      *ConstraintSystem
	queried []CellQuery
}

func (v *VirtualCells) query(col Column, kind ColumnKind, at Rotation) Expression {
	if col.Kind != kind {
		panic(fmt.Sprintf("plonk: queried %v as %v", col, kind))
	}
	v.cs.checkColumn(col)
	q := CellQuery{Column: col, At: at}
	v.queried = append(v.queried, q)
	return q
}

// QueryAdvice reads an advice column at the given rotation.
func (v *VirtualCells) QueryAdvice(col Column, at Rotation) Expression {
	return v.query(col, Advice, at)
}

// QueryFixed reads a fixed column at the given rotation.
func (v *VirtualCells) QueryFixed(col Column, at Rotation) Expression {
	return v.query(col, Fixed, at)
}

// QueryInstance reads an instance column at the given rotation.
func (v *VirtualCells) QueryInstance(col Column, at Rotation) Expression {
	return v.query(col, Instance, at)
}
