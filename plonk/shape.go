package plonk

import (
	"fmt"

	"github.com/chndr1/plonkish/field"
	"github.com/chndr1/plonkish/value"
	"github.com/consensys/gnark/constraint"
	"github.com/fxamacker/cbor/v2"
)

// GateShape is the witness-independent fingerprint of one gate.
type GateShape struct {
	Name    string
	Queries []CellQuery
}

// RegionShape records where the floor planner put one region.
type RegionShape struct {
	Name  string
	Start int
	Rows  int
}

// FixedAssignment is one fixed (selector or constant) cell with its value.
type FixedAssignment struct {
	Cell  Cell
	Value constraint.Element
}

// Shape is the complete witness-independent layout of a circuit: everything
// the backend needs to derive proving and verifying keys. Two synthesis
// passes of the same circuit must produce byte-identical shapes regardless of
// which witness (if any) they carry.
type Shape struct {
	NumAdvice   int
	NumFixed    int
	NumInstance int

	EqualityColumns []Column
	Gates           []GateShape

	Regions     []RegionShape
	AdviceCells []Cell
	FixedCells  []FixedAssignment
	Copies      []CopyConstraint
	Bindings    []InstanceBinding

	Rows int
}

// Bytes returns a canonical serialization of the shape, suitable for
// structural-identity comparison and key derivation fingerprints.
func (s *Shape) Bytes() ([]byte, error) {
	return cbor.Marshal(s)
}

// CompileOption configures a shape compilation.
type CompileOption func(*compileConfig)

type compileConfig struct {
	instanceRows int
}

// WithInstanceRows declares the number of public-input rows available in each
// instance column; bindings beyond it fail with ErrInstanceOutOfRange. By
// default the range is unchecked at shape time (the witness pass checks it
// against the concrete public inputs).
func WithInstanceRows(n int) CompileOption {
	return func(c *compileConfig) {
		c.instanceRows = n
	}
}

// CompileShape runs a witness-free synthesis pass of circ and returns its
// constraint system and shape.
func CompileShape(f field.Field, circ Circuit, opts ...CompileOption) (*ConstraintSystem, *Shape, error) {
	cfg := compileConfig{instanceRows: -1}
	for _, o := range opts {
		o(&cfg)
	}

	c := circ.WithoutWitnesses()
	meta := NewConstraintSystem(f)
	c.Configure(meta)

	rec := NewShapeRecorder(cfg.instanceRows)
	l := NewSingleChipLayouter(meta, rec)
	if err := c.Synthesize(l); err != nil {
		return nil, nil, fmt.Errorf("synthesize shape: %w", err)
	}

	return meta, rec.Finish(meta, l.RowsUsed()), nil
}

// ShapeRecorder is the Assignment sink of the key-generation pass: it keeps
// structure and fixed values, and discards (possibly unknown) advice values.
// The mock backend reuses it so a witness pass can be compared structurally
// against the shape pass.
type ShapeRecorder struct {
	instanceRows int
	shape        Shape
}

// NewShapeRecorder returns a recorder. instanceRows < 0 disables the
// public-input range check.
func NewShapeRecorder(instanceRows int) *ShapeRecorder {
	return &ShapeRecorder{instanceRows: instanceRows}
}

// Finish completes the shape with the constraint-system summary and the row
// count, and returns it.
func (r *ShapeRecorder) Finish(meta *ConstraintSystem, rows int) *Shape {
	s := &r.shape
	s.NumAdvice = meta.NumAdvice()
	s.NumFixed = meta.NumFixed()
	s.NumInstance = meta.NumInstance()
	s.EqualityColumns = meta.PermutationColumns()
	s.Gates = nil
	for _, g := range meta.Gates() {
		s.Gates = append(s.Gates, GateShape{Name: g.Name, Queries: g.Queries})
	}
	s.Rows = rows
	return s
}

func (r *ShapeRecorder) EnterRegion(name string) {
	r.shape.Regions = append(r.shape.Regions, RegionShape{Name: name, Start: -1})
}

func (r *ShapeRecorder) ExitRegion() {}

func (r *ShapeRecorder) growRegion(row int) {
	reg := &r.shape.Regions[len(r.shape.Regions)-1]
	if reg.Start < 0 || row < reg.Start {
		reg.Start = row
	}
	if row-reg.Start+1 > reg.Rows {
		reg.Rows = row - reg.Start + 1
	}
}

func (r *ShapeRecorder) AssignAdvice(col Column, row int, v value.Value[constraint.Element]) error {
	r.shape.AdviceCells = append(r.shape.AdviceCells, Cell{Column: col, Row: row})
	r.growRegion(row)
	return nil
}

func (r *ShapeRecorder) AssignFixed(col Column, row int, v value.Value[constraint.Element]) error {
	val, ok := v.Get()
	if !ok {
		return ErrFixedUnknown
	}
	r.shape.FixedCells = append(r.shape.FixedCells, FixedAssignment{
		Cell:  Cell{Column: col, Row: row},
		Value: val,
	})
	r.growRegion(row)
	return nil
}

func (r *ShapeRecorder) Copy(a, b Cell) error {
	r.shape.Copies = append(r.shape.Copies, CopyConstraint{A: a, B: b})
	return nil
}

func (r *ShapeRecorder) ConstrainInstance(cell Cell, col Column, row int) error {
	if row < 0 || (r.instanceRows >= 0 && row >= r.instanceRows) {
		return fmt.Errorf("bind to %v[%d]: %w", col, row, ErrInstanceOutOfRange)
	}
	r.shape.Bindings = append(r.shape.Bindings, InstanceBinding{Cell: cell, Column: col, Row: row})
	return nil
}
