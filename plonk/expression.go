package plonk

import (
	"github.com/chndr1/plonkish/field"
	"github.com/chndr1/plonkish/value"
	"github.com/consensys/gnark/constraint"
)

// CellOracle resolves a queried cell to its (possibly unknown) value. The row
// is absolute, rotation already applied. Rows outside the assigned table read
// as zero padding.
type CellOracle interface {
	QueryCell(col Column, row int) value.Value[constraint.Element]
}

// Expression is a polynomial over queried cells. A gate holds Expressions that
// must evaluate to zero on every row for the circuit to be satisfied.
type Expression interface {
	// Eval evaluates the polynomial at the given absolute row.
	// Unknown operands propagate, except that a product with a known zero
	// factor is known zero; this is what makes selector-disabled terms
	// vanish even when their advice operands are unassigned.
	Eval(f field.Field, row int, o CellOracle) value.Value[constraint.Element]
	// Degree returns the degree of the polynomial in queried cells.
	Degree() int
}

// Constant is a literal field element.
type Constant struct {
	V constraint.Element
}

func (e Constant) Eval(f field.Field, row int, o CellOracle) value.Value[constraint.Element] {
	return value.Known(e.V)
}

func (e Constant) Degree() int { return 0 }

// CellQuery reads one column at a rotation from the current row.
type CellQuery struct {
	Column Column
	At     Rotation
}

func (e CellQuery) Eval(f field.Field, row int, o CellOracle) value.Value[constraint.Element] {
	return o.QueryCell(e.Column, row+int(e.At))
}

func (e CellQuery) Degree() int { return 1 }

type sum struct {
	a, b Expression
}

func (e sum) Eval(f field.Field, row int, o CellOracle) value.Value[constraint.Element] {
	va, oka := e.a.Eval(f, row, o).Get()
	vb, okb := e.b.Eval(f, row, o).Get()
	if !oka || !okb {
		return value.Unknown[constraint.Element]()
	}
	return value.Known(f.Add(va, vb))
}

func (e sum) Degree() int {
	return max(e.a.Degree(), e.b.Degree())
}

type product struct {
	a, b Expression
}

func (e product) Eval(f field.Field, row int, o CellOracle) value.Value[constraint.Element] {
	va, oka := e.a.Eval(f, row, o).Get()
	vb, okb := e.b.Eval(f, row, o).Get()
	// a known zero factor annihilates regardless of the other side
	if (oka && va.IsZero()) || (okb && vb.IsZero()) {
		return value.Known(constraint.Element{})
	}
	if !oka || !okb {
		return value.Unknown[constraint.Element]()
	}
	return value.Known(f.Mul(va, vb))
}

func (e product) Degree() int {
	return e.a.Degree() + e.b.Degree()
}

type negated struct {
	a Expression
}

func (e negated) Eval(f field.Field, row int, o CellOracle) value.Value[constraint.Element] {
	va, ok := e.a.Eval(f, row, o).Get()
	if !ok {
		return value.Unknown[constraint.Element]()
	}
	return value.Known(f.Neg(va))
}

func (e negated) Degree() int { return e.a.Degree() }

// Sum returns the sum of the given expressions.
func Sum(es ...Expression) Expression {
	if len(es) == 0 {
		return Constant{}
	}
	r := es[0]
	for _, e := range es[1:] {
		r = sum{r, e}
	}
	return r
}

// Product returns the product of the given expressions.
func Product(es ...Expression) Expression {
	if len(es) == 0 {
		panic("plonk: empty product")
	}
	r := es[0]
	for _, e := range es[1:] {
		r = product{r, e}
	}
	return r
}

// Neg returns -e.
func Neg(e Expression) Expression {
	return negated{e}
}
