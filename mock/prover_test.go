package mock

import (
	"testing"

	"github.com/chndr1/plonkish/field"
	"github.com/chndr1/plonkish/field/m31"
	"github.com/chndr1/plonkish/plonk"
	"github.com/chndr1/plonkish/value"
	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"
)

// pairCircuit assigns two advice cells and copy-constrains them, optionally
// with the constraint operands swapped.
type pairCircuit struct {
	a, b value.Value[constraint.Element]
	swap bool

	colA, colB plonk.Column
}

func (c *pairCircuit) WithoutWitnesses() plonk.Circuit {
	return &pairCircuit{swap: c.swap}
}

func (c *pairCircuit) Configure(meta *plonk.ConstraintSystem) {
	c.colA = meta.AdviceColumn()
	c.colB = meta.AdviceColumn()
	meta.EnableEquality(c.colA)
	meta.EnableEquality(c.colB)
}

func (c *pairCircuit) Synthesize(l plonk.Layouter) error {
	var ca, cb plonk.Cell
	err := l.AssignRegion("pair", func(r plonk.Region) error {
		var err error
		if ca, err = r.AssignAdvice("a", c.colA, 0, func() value.Value[constraint.Element] { return c.a }); err != nil {
			return err
		}
		cb, err = r.AssignAdvice("b", c.colB, 0, func() value.Value[constraint.Element] { return c.b })
		return err
	})
	if err != nil {
		return err
	}
	return l.AssignRegion("copy", func(r plonk.Region) error {
		if c.swap {
			return r.ConstrainEqual(cb, ca)
		}
		return r.ConstrainEqual(ca, cb)
	})
}

// selCircuit exercises one selector-gated identity s·w = 0 over two rows.
type selCircuit struct {
	w0, w1 value.Value[constraint.Element]

	w, s plonk.Column
}

func (c *selCircuit) WithoutWitnesses() plonk.Circuit {
	return &selCircuit{}
}

func (c *selCircuit) Configure(meta *plonk.ConstraintSystem) {
	c.w = meta.AdviceColumn()
	c.s = meta.FixedColumn()
	cfg := *c
	meta.CreateGate("sw", func(v *plonk.VirtualCells) []plonk.Expression {
		w := v.QueryAdvice(cfg.w, plonk.RotationCur)
		s := v.QueryFixed(cfg.s, plonk.RotationCur)
		return []plonk.Expression{plonk.Product(s, w)}
	})
}

func (c *selCircuit) Synthesize(l plonk.Layouter) error {
	row := func(name string, w value.Value[constraint.Element], sel uint64) error {
		return l.AssignRegion(name, func(r plonk.Region) error {
			if _, err := r.AssignAdvice("w", c.w, 0, func() value.Value[constraint.Element] { return w }); err != nil {
				return err
			}
			_, err := r.AssignFixed("s", c.s, 0, value.Known(constraint.Element{sel}))
			return err
		})
	}
	if err := row("off", c.w0, 0); err != nil {
		return err
	}
	return row("on", c.w1, 1)
}

func engine() field.Field {
	return &m31.Field{}
}

func el(x uint64) value.Value[constraint.Element] {
	return value.Known(constraint.Element{x})
}

func TestCopyConstraintSatisfied(t *testing.T) {
	p, err := Run(engine(), &pairCircuit{a: el(9), b: el(9)}, nil)
	require.NoError(t, err)
	require.NoError(t, p.Verify())
}

func TestCopyConstraintViolated(t *testing.T) {
	p, err := Run(engine(), &pairCircuit{a: el(9), b: el(8)}, nil)
	require.NoError(t, err)

	failures := p.Failures()
	require.Len(t, failures, 1)
	require.IsType(t, CopyFailure{}, failures[0])
	require.Error(t, p.Verify())
}

func TestCopyConstraintSymmetric(t *testing.T) {
	for _, swap := range []bool{false, true} {
		p, err := Run(engine(), &pairCircuit{a: el(9), b: el(9), swap: swap}, nil)
		require.NoError(t, err)
		require.NoError(t, p.Verify(), "swap=%v", swap)

		p, err = Run(engine(), &pairCircuit{a: el(9), b: el(8), swap: swap}, nil)
		require.NoError(t, err)
		require.Error(t, p.Verify(), "swap=%v", swap)
	}
}

func TestGateVanishes(t *testing.T) {
	p, err := Run(engine(), &selCircuit{w0: el(123), w1: el(0)}, nil)
	require.NoError(t, err)
	require.NoError(t, p.Verify())
}

func TestGateViolated(t *testing.T) {
	p, err := Run(engine(), &selCircuit{w0: el(123), w1: el(5)}, nil)
	require.NoError(t, err)

	failures := p.Failures()
	require.Len(t, failures, 1)
	gf, ok := failures[0].(GateFailure)
	require.True(t, ok)
	require.Equal(t, "sw", gf.Gate)
	require.Equal(t, 1, gf.Row)
	require.Equal(t, "on", gf.Region)
	require.False(t, gf.Unknown)
}

func TestZeroSelectorMasksUnknownAdvice(t *testing.T) {
	// w0 is unknown but its selector row is off, so the term vanishes
	p, err := Run(engine(), &selCircuit{w0: value.Unknown[constraint.Element](), w1: el(0)}, nil)
	require.NoError(t, err)
	require.NoError(t, p.Verify())
}

func TestUnknownAdviceOnActiveRow(t *testing.T) {
	p, err := Run(engine(), &selCircuit{w0: el(0), w1: value.Unknown[constraint.Element]()}, nil)
	require.NoError(t, err)

	failures := p.Failures()
	require.Len(t, failures, 1)
	gf, ok := failures[0].(GateFailure)
	require.True(t, ok)
	require.True(t, gf.Unknown)
	require.Equal(t, 1, gf.Row)
}

func TestInstanceColumnCountMismatch(t *testing.T) {
	_, err := Run(engine(), &pairCircuit{a: el(1), b: el(1)}, [][]constraint.Element{{}})
	require.Error(t, err)
}
