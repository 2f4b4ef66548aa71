// Package mock verifies a circuit the way a proving backend would, without
// any cryptography: it synthesizes the full witness trace, then checks every
// gate polynomial on every row, every copy constraint and every public-input
// binding. It stands in for the polynomial-commitment backend in tests.
package mock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chndr1/plonkish/field"
	"github.com/chndr1/plonkish/logger"
	"github.com/chndr1/plonkish/plonk"
	"github.com/chndr1/plonkish/value"
	"github.com/consensys/gnark/constraint"
)

// MockProver holds the fully synthesized trace of one circuit run. It
// implements plonk.Assignment (the synthesis sink) and plonk.CellOracle (the
// gate evaluation source).
type MockProver struct {
	f    field.Field
	cs   *plonk.ConstraintSystem
	rec  *plonk.ShapeRecorder
	rows int

	// advice and fixed tables, [column][row]; untouched cells read as
	// known zero padding
	advice [][]value.Value[constraint.Element]
	fixed  [][]value.Value[constraint.Element]

	instance [][]constraint.Element

	copies   []plonk.CopyConstraint
	bindings []plonk.InstanceBinding

	shape *plonk.Shape
}

// Run configures circ, synthesizes it with its embedded witness against the
// given public inputs (one slice per instance column) and returns the filled
// prover. Synthesis errors (configuration misuse, out-of-range bindings) are
// returned here; an unsatisfiable witness is not an error until Verify.
func Run(f field.Field, circ plonk.Circuit, instance [][]constraint.Element) (*MockProver, error) {
	log := logger.Logger().With().Str("component", "mock").Logger()

	meta := plonk.NewConstraintSystem(f)
	circ.Configure(meta)

	if len(instance) != meta.NumInstance() {
		return nil, fmt.Errorf("got %d instance columns, circuit declares %d", len(instance), meta.NumInstance())
	}

	p := &MockProver{
		f:        f,
		cs:       meta,
		rec:      plonk.NewShapeRecorder(-1),
		advice:   make([][]value.Value[constraint.Element], meta.NumAdvice()),
		fixed:    make([][]value.Value[constraint.Element], meta.NumFixed()),
		instance: instance,
	}

	l := plonk.NewSingleChipLayouter(meta, p)
	if err := circ.Synthesize(l); err != nil {
		return nil, err
	}
	p.rows = l.RowsUsed()
	p.shape = p.rec.Finish(meta, p.rows)

	log.Debug().
		Int("rows", p.rows).
		Int("regions", l.Regions()).
		Int("copies", len(p.copies)).
		Msg("synthesized")
	return p, nil
}

// Shape returns the layout recorded during the witness pass. It must equal
// the shape of a witness-free pass of the same circuit.
func (p *MockProver) Shape() *plonk.Shape {
	return p.shape
}

// Rows returns the number of rows occupied by regions.
func (p *MockProver) Rows() int {
	return p.rows
}

// EnterRegion implements plonk.Assignment.
func (p *MockProver) EnterRegion(name string) { p.rec.EnterRegion(name) }

// ExitRegion implements plonk.Assignment.
func (p *MockProver) ExitRegion() { p.rec.ExitRegion() }

func setCell(table []value.Value[constraint.Element], row int, v value.Value[constraint.Element]) []value.Value[constraint.Element] {
	for len(table) <= row {
		table = append(table, value.Known(constraint.Element{}))
	}
	table[row] = v
	return table
}

// AssignAdvice implements plonk.Assignment.
func (p *MockProver) AssignAdvice(col plonk.Column, row int, v value.Value[constraint.Element]) error {
	if err := p.rec.AssignAdvice(col, row, v); err != nil {
		return err
	}
	p.advice[col.Index] = setCell(p.advice[col.Index], row, v)
	return nil
}

// AssignFixed implements plonk.Assignment.
func (p *MockProver) AssignFixed(col plonk.Column, row int, v value.Value[constraint.Element]) error {
	if err := p.rec.AssignFixed(col, row, v); err != nil {
		return err
	}
	p.fixed[col.Index] = setCell(p.fixed[col.Index], row, v)
	return nil
}

// Copy implements plonk.Assignment.
func (p *MockProver) Copy(a, b plonk.Cell) error {
	if err := p.rec.Copy(a, b); err != nil {
		return err
	}
	p.copies = append(p.copies, plonk.CopyConstraint{A: a, B: b})
	return nil
}

// ConstrainInstance implements plonk.Assignment.
func (p *MockProver) ConstrainInstance(cell plonk.Cell, col plonk.Column, row int) error {
	if row < 0 || row >= len(p.instance[col.Index]) {
		return fmt.Errorf("bind to %v[%d]: %w", col, row, plonk.ErrInstanceOutOfRange)
	}
	if err := p.rec.ConstrainInstance(cell, col, row); err != nil {
		return err
	}
	p.bindings = append(p.bindings, plonk.InstanceBinding{Cell: cell, Column: col, Row: row})
	return nil
}

// QueryCell implements plonk.CellOracle. Rows outside the assigned range read
// as zero, matching the zero padding a real backend fills the table with.
func (p *MockProver) QueryCell(col plonk.Column, row int) value.Value[constraint.Element] {
	if row < 0 {
		return value.Known(constraint.Element{})
	}
	switch col.Kind {
	case plonk.Advice:
		if row < len(p.advice[col.Index]) {
			return p.advice[col.Index][row]
		}
	case plonk.Fixed:
		if row < len(p.fixed[col.Index]) {
			return p.fixed[col.Index][row]
		}
	case plonk.Instance:
		if row < len(p.instance[col.Index]) {
			return value.Known(p.instance[col.Index][row])
		}
	}
	return value.Known(constraint.Element{})
}

// cellValue resolves a cell referenced by a copy constraint or binding.
func (p *MockProver) cellValue(cell plonk.Cell) value.Value[constraint.Element] {
	return p.QueryCell(cell.Column, cell.Row)
}

func (p *MockProver) regionAt(row int) string {
	for _, r := range p.shape.Regions {
		if r.Start >= 0 && row >= r.Start && row < r.Start+r.Rows {
			return r.Name
		}
	}
	return ""
}

// Failures checks every gate on every row, every copy constraint and every
// public-input binding, and returns all violations found.
func (p *MockProver) Failures() []Failure {
	var failures []Failure

	for _, g := range p.cs.Gates() {
		for i, poly := range g.Polys {
			for row := 0; row < p.rows; row++ {
				v, ok := poly.Eval(p.f, row, p).Get()
				if !ok {
					failures = append(failures, GateFailure{
						Gate: g.Name, Poly: i, Row: row,
						Region: p.regionAt(row), Unknown: true,
					})
					continue
				}
				if !v.IsZero() {
					failures = append(failures, GateFailure{
						Gate: g.Name, Poly: i, Row: row,
						Region: p.regionAt(row),
					})
				}
			}
		}
	}

	for _, c := range p.copies {
		va, oka := p.cellValue(c.A).Get()
		vb, okb := p.cellValue(c.B).Get()
		if !oka || !okb || va != vb {
			failures = append(failures, CopyFailure{Constraint: c})
		}
	}

	for _, b := range p.bindings {
		vc, ok := p.cellValue(b.Cell).Get()
		pub := p.instance[b.Column.Index][b.Row]
		if !ok || vc != pub {
			failures = append(failures, InstanceFailure{Binding: b})
		}
	}

	return failures
}

// Verify returns nil if the trace satisfies every constraint, and otherwise
// an error listing all failures.
func (p *MockProver) Verify() error {
	failures := p.Failures()
	if len(failures) == 0 {
		return nil
	}
	msgs := make([]string, len(failures))
	for i, f := range failures {
		msgs[i] = f.String()
	}
	return errors.New("circuit not satisfied:\n\t" + strings.Join(msgs, "\n\t"))
}
