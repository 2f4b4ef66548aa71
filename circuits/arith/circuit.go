package arith

import (
	"github.com/chndr1/plonkish/field"
	"github.com/chndr1/plonkish/plonk"
	"github.com/chndr1/plonkish/value"
	"github.com/consensys/gnark/constraint"
)

// Circuit proves knowledge of private x and y such that x²·y² + Constant
// equals public-input row 0. Constant is embedded in the circuit shape, not
// supplied through the instance column.
type Circuit struct {
	X value.Value[constraint.Element]
	Y value.Value[constraint.Element]

	Constant constraint.Element

	f   field.Field
	cfg Config
}

// NewCircuit builds a witness-bearing circuit from concrete values.
func NewCircuit(f field.Field, x, y, constant interface{}) *Circuit {
	return &Circuit{
		X:        value.Known(f.FromInterface(x)),
		Y:        value.Known(f.FromInterface(y)),
		Constant: f.FromInterface(constant),
	}
}

// WithoutWitnesses implements plonk.Circuit. The constant stays: it is part
// of the circuit, not of the witness.
func (c *Circuit) WithoutWitnesses() plonk.Circuit {
	return &Circuit{Constant: c.Constant}
}

// Configure implements plonk.Circuit.
func (c *Circuit) Configure(meta *plonk.ConstraintSystem) {
	c.f = meta.Field()
	c.cfg = Configure(meta)
}

// Synthesize implements plonk.Circuit. The trace is four gate rows wired
// together by copy constraints; regions have no implicit adjacency, so every
// feed-forward is explicit.
func (c *Circuit) Synthesize(l plonk.Layouter) error {
	chip := NewChip(c.f, c.cfg)
	f := c.f

	sq := func(v constraint.Element) constraint.Element { return f.Mul(v, v) }

	// x·x = x²; copying lhs to rhs enforces both operands are literally x
	xx := value.Map(c.X, func(x constraint.Element) Triple {
		return Triple{x, x, sq(x)}
	})
	a0, b0, c0, err := chip.RawMultiply(l, func() value.Value[Triple] { return xx })
	if err != nil {
		return err
	}
	if err := chip.Copy(l, a0, b0); err != nil {
		return err
	}

	// y·y = y²
	yy := value.Map(c.Y, func(y constraint.Element) Triple {
		return Triple{y, y, sq(y)}
	})
	a1, b1, c1, err := chip.RawMultiply(l, func() value.Value[Triple] { return yy })
	if err != nil {
		return err
	}
	if err := chip.Copy(l, a1, b1); err != nil {
		return err
	}

	// x²·y²
	xxyy := value.Map(value.Zip(c.X, c.Y), func(p value.Pair[constraint.Element, constraint.Element]) Triple {
		xs, ys := sq(p.A), sq(p.B)
		return Triple{xs, ys, f.Mul(xs, ys)}
	})
	a2, b2, c2, err := chip.RawMultiply(l, func() value.Value[Triple] { return xxyy })
	if err != nil {
		return err
	}
	if err := chip.Copy(l, c0, a2); err != nil {
		return err
	}
	if err := chip.Copy(l, c1, b2); err != nil {
		return err
	}

	// x²·y² + constant
	sum := value.Map(value.Zip(c.X, c.Y), func(p value.Pair[constraint.Element, constraint.Element]) Triple {
		t := f.Mul(sq(p.A), sq(p.B))
		return Triple{t, c.Constant, f.Add(t, c.Constant)}
	})
	a3, _, c3, err := chip.RawAdd(l, func() value.Value[Triple] { return sum })
	if err != nil {
		return err
	}
	if err := chip.Copy(l, c2, a3); err != nil {
		return err
	}

	return chip.ExposePublic(l, c3, 0)
}
