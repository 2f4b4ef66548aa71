package plonk

import "strconv"

// ColumnKind distinguishes the three vertical slices of the matrix.
type ColumnKind uint8

const (
	// Advice columns hold private, witness-provided values.
	Advice ColumnKind = iota
	// Fixed columns hold circuit-shape constants, selectors included.
	Fixed
	// Instance columns hold public inputs supplied at verification time.
	Instance
)

func (k ColumnKind) String() string {
	switch k {
	case Advice:
		return "advice"
	case Fixed:
		return "fixed"
	case Instance:
		return "instance"
	}
	return "column(" + strconv.Itoa(int(k)) + ")"
}

// Column identifies one declared column. Identity is immutable after
// declaration; Index counts per kind in declaration order.
type Column struct {
	Kind  ColumnKind
	Index int
}

func (c Column) String() string {
	return c.Kind.String() + "[" + strconv.Itoa(c.Index) + "]"
}

// Rotation is a row offset relative to the row a gate is evaluated at.
type Rotation int

const (
	RotationPrev Rotation = -1
	RotationCur  Rotation = 0
	RotationNext Rotation = 1
)
