package plonk

import (
	"fmt"

	"github.com/chndr1/plonkish/value"
	"github.com/consensys/gnark/constraint"
)

// Region is the view a circuit gets of one allocation unit. Offsets are
// relative to the region start; the floor planner decides absolute rows.
type Region interface {
	// AssignAdvice evaluates f exactly once and writes the result to
	// (col, offset), returning the absolute cell address.
	AssignAdvice(name string, col Column, offset int, f func() value.Value[constraint.Element]) (Cell, error)

	// AssignFixed writes a constant to (col, offset).
	AssignFixed(name string, col Column, offset int, v value.Value[constraint.Element]) (Cell, error)

	// ConstrainEqual records a copy constraint between two cells previously
	// returned by an assignment. Both columns must be equality-enabled.
	ConstrainEqual(a, b Cell) error
}

// Layouter lays regions onto absolute rows and exposes the public-input
// binding primitive.
type Layouter interface {
	// AssignRegion opens a named region, runs f against it and closes it.
	// Each region is written exactly once, at creation.
	AssignRegion(name string, f func(r Region) error) error

	// ConstrainInstance binds a cell to a row of an instance column.
	ConstrainInstance(cell Cell, col Column, row int) error
}

// SingleChipLayouter is a simple floor planner: regions are placed one after
// another, each starting at the first row past everything assigned so far.
// Placement depends only on the sequence of assignments, never on witness
// values, so a shape-only pass and a witness pass produce the same layout.
type SingleChipLayouter struct {
	cs      *ConstraintSystem
	sink    Assignment
	nextRow int
	regions int
}

func NewSingleChipLayouter(cs *ConstraintSystem, sink Assignment) *SingleChipLayouter {
	return &SingleChipLayouter{cs: cs, sink: sink}
}

// RowsUsed returns the number of rows occupied by regions so far.
func (l *SingleChipLayouter) RowsUsed() int {
	return l.nextRow
}

// Regions returns the number of regions assigned so far.
func (l *SingleChipLayouter) Regions() int {
	return l.regions
}

func (l *SingleChipLayouter) AssignRegion(name string, f func(r Region) error) error {
	l.sink.EnterRegion(name)
	r := &region{layouter: l, start: l.nextRow}
	err := f(r)
	l.sink.ExitRegion()
	if err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	l.nextRow += r.rows
	l.regions++
	return nil
}

func (l *SingleChipLayouter) ConstrainInstance(cell Cell, col Column, row int) error {
	if col.Kind != Instance {
		return fmt.Errorf("constrain instance to %v: %w", col, ErrColumnKind)
	}
	if !l.cs.EqualityEnabled(col) || !l.cs.EqualityEnabled(cell.Column) {
		return fmt.Errorf("bind %v to %v[%d]: %w", cell.Column, col, row, ErrEqualityNotEnabled)
	}
	return l.sink.ConstrainInstance(cell, col, row)
}

type region struct {
	layouter *SingleChipLayouter
	start    int
	// rows is the region height: one past the largest assigned offset
	rows int
}

func (r *region) grow(offset int) {
	if offset+1 > r.rows {
		r.rows = offset + 1
	}
}

func (r *region) AssignAdvice(name string, col Column, offset int, f func() value.Value[constraint.Element]) (Cell, error) {
	if col.Kind != Advice {
		return Cell{}, fmt.Errorf("assign advice %q to %v: %w", name, col, ErrColumnKind)
	}
	if offset < 0 {
		return Cell{}, fmt.Errorf("assign advice %q: negative offset %d", name, offset)
	}
	cell := Cell{Column: col, Row: r.start + offset}
	if err := r.layouter.sink.AssignAdvice(col, cell.Row, f()); err != nil {
		return Cell{}, fmt.Errorf("assign advice %q: %w", name, err)
	}
	r.grow(offset)
	return cell, nil
}

func (r *region) AssignFixed(name string, col Column, offset int, v value.Value[constraint.Element]) (Cell, error) {
	if col.Kind != Fixed {
		return Cell{}, fmt.Errorf("assign fixed %q to %v: %w", name, col, ErrColumnKind)
	}
	if offset < 0 {
		return Cell{}, fmt.Errorf("assign fixed %q: negative offset %d", name, offset)
	}
	cell := Cell{Column: col, Row: r.start + offset}
	if err := r.layouter.sink.AssignFixed(col, cell.Row, v); err != nil {
		return Cell{}, fmt.Errorf("assign fixed %q: %w", name, err)
	}
	r.grow(offset)
	return cell, nil
}

func (r *region) ConstrainEqual(a, b Cell) error {
	cs := r.layouter.cs
	if !cs.EqualityEnabled(a.Column) {
		return fmt.Errorf("constrain %v: %w", a.Column, ErrEqualityNotEnabled)
	}
	if !cs.EqualityEnabled(b.Column) {
		return fmt.Errorf("constrain %v: %w", b.Column, ErrEqualityNotEnabled)
	}
	return r.layouter.sink.Copy(a, b)
}
