// Package arith implements a one-row arithmetic chip over the standard PLONK
// gate sl·l + sr·r + sm·(l·r) − so·o + sc = 0, and a circuit proving
// knowledge of x, y with x²·y² + constant bound to a public input.
package arith

import (
	"github.com/chndr1/plonkish/field"
	"github.com/chndr1/plonkish/plonk"
	"github.com/chndr1/plonkish/value"
	"github.com/consensys/gnark/constraint"
)

// Triple is one gate row's operand assignment: l, r and o.
type Triple struct {
	A, B, C constraint.Element
}

// Config bundles the column handles the chip operates on. It is built once
// per circuit type and reused by every chip operation.
type Config struct {
	// advice operands
	L, R, O plonk.Column
	// selectors: linear left/right, output, multiplicative, constant
	SL, SR, SO, SM, SC plonk.Column
	// public inputs
	PI plonk.Column
}

// Configure declares the chip's columns and registers its single gate, active
// on every row:
//
//	sl·l + sr·r + sm·(l·r) − so·o + sc = 0
//
// The gate expresses both multiplication (sm=so=1) and addition (sl=sr=so=1)
// per row; selectors left at zero degenerate the unused terms.
func Configure(meta *plonk.ConstraintSystem) Config {
	l := meta.AdviceColumn()
	r := meta.AdviceColumn()
	o := meta.AdviceColumn()

	meta.EnableEquality(l)
	meta.EnableEquality(r)
	meta.EnableEquality(o)

	sm := meta.FixedColumn()
	sl := meta.FixedColumn()
	sr := meta.FixedColumn()
	so := meta.FixedColumn()
	sc := meta.FixedColumn()

	pi := meta.InstanceColumn()
	meta.EnableEquality(pi)

	cfg := Config{
		L: l, R: r, O: o,
		SL: sl, SR: sr, SO: so, SM: sm, SC: sc,
		PI: pi,
	}

	meta.CreateGate("plonk", func(v *plonk.VirtualCells) []plonk.Expression {
		l := v.QueryAdvice(cfg.L, plonk.RotationCur)
		r := v.QueryAdvice(cfg.R, plonk.RotationCur)
		o := v.QueryAdvice(cfg.O, plonk.RotationCur)

		sl := v.QueryFixed(cfg.SL, plonk.RotationCur)
		sr := v.QueryFixed(cfg.SR, plonk.RotationCur)
		so := v.QueryFixed(cfg.SO, plonk.RotationCur)
		sm := v.QueryFixed(cfg.SM, plonk.RotationCur)
		sc := v.QueryFixed(cfg.SC, plonk.RotationCur)

		return []plonk.Expression{
			plonk.Sum(
				plonk.Product(sl, l),
				plonk.Product(sr, r),
				plonk.Product(sm, l, r),
				plonk.Neg(plonk.Product(so, o)),
				sc,
			),
		}
	})

	return cfg
}

// Chip exposes the row-level primitives. It is the only component that
// assigns cells; each operation writes exactly one region.
type Chip struct {
	cfg Config
	f   field.Field
}

func NewChip(f field.Field, cfg Config) *Chip {
	return &Chip{cfg: cfg, f: f}
}

// assignRow writes one gate row: the triple into l/r/o and ones into the
// given selectors. f is evaluated exactly once.
func (c *Chip) assignRow(l plonk.Layouter, name string, f func() value.Value[Triple], selectors ...plonk.Column) (lhs, rhs, out plonk.Cell, err error) {
	err = l.AssignRegion(name, func(r plonk.Region) error {
		values := f()

		var err error
		if lhs, err = r.AssignAdvice("lhs", c.cfg.L, 0, func() value.Value[constraint.Element] {
			return value.Map(values, func(t Triple) constraint.Element { return t.A })
		}); err != nil {
			return err
		}
		if rhs, err = r.AssignAdvice("rhs", c.cfg.R, 0, func() value.Value[constraint.Element] {
			return value.Map(values, func(t Triple) constraint.Element { return t.B })
		}); err != nil {
			return err
		}
		if out, err = r.AssignAdvice("out", c.cfg.O, 0, func() value.Value[constraint.Element] {
			return value.Map(values, func(t Triple) constraint.Element { return t.C })
		}); err != nil {
			return err
		}

		one := value.Known(c.f.One())
		for _, s := range selectors {
			if _, err = r.AssignFixed("selector", s, 0, one); err != nil {
				return err
			}
		}
		return nil
	})
	return
}

// RawMultiply assigns one multiplication row. f lazily produces (a, b, c)
// with the expectation a·b = c; the chip does not validate the triple, an
// unsatisfying one simply yields a witness the backend rejects.
func (c *Chip) RawMultiply(l plonk.Layouter, f func() value.Value[Triple]) (lhs, rhs, out plonk.Cell, err error) {
	return c.assignRow(l, "mul", f, c.cfg.SM, c.cfg.SO)
}

// RawAdd assigns one addition row. f lazily produces (a, b, c) with the
// expectation a+b = c, under the same non-validation policy as RawMultiply.
func (c *Chip) RawAdd(l plonk.Layouter, f func() value.Value[Triple]) (lhs, rhs, out plonk.Cell, err error) {
	return c.assignRow(l, "add", f, c.cfg.SL, c.cfg.SR, c.cfg.SO)
}

// Copy constrains two previously returned cells to be equal.
func (c *Chip) Copy(l plonk.Layouter, a, b plonk.Cell) error {
	return l.AssignRegion("copy", func(r plonk.Region) error {
		return r.ConstrainEqual(a, b)
	})
}

// ExposePublic binds cell to the given row of the instance column.
func (c *Chip) ExposePublic(l plonk.Layouter, cell plonk.Cell, row int) error {
	return l.ConstrainInstance(cell, c.cfg.PI, row)
}
