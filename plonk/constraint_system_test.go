package plonk

import (
	"testing"

	"github.com/chndr1/plonkish/field/m31"
	"github.com/stretchr/testify/require"
)

func TestColumnDeclaration(t *testing.T) {
	cs := NewConstraintSystem(&m31.Field{})

	a0 := cs.AdviceColumn()
	a1 := cs.AdviceColumn()
	f0 := cs.FixedColumn()
	i0 := cs.InstanceColumn()

	require.Equal(t, Column{Kind: Advice, Index: 0}, a0)
	require.Equal(t, Column{Kind: Advice, Index: 1}, a1)
	require.Equal(t, Column{Kind: Fixed, Index: 0}, f0)
	require.Equal(t, Column{Kind: Instance, Index: 0}, i0)

	require.Equal(t, 2, cs.NumAdvice())
	require.Equal(t, 1, cs.NumFixed())
	require.Equal(t, 1, cs.NumInstance())

	require.Equal(t, "advice[1]", a1.String())
	require.Equal(t, "fixed[0]", f0.String())
}

func TestEnableEquality(t *testing.T) {
	cs := NewConstraintSystem(&m31.Field{})

	a := cs.AdviceColumn()
	b := cs.AdviceColumn()
	pi := cs.InstanceColumn()

	cs.EnableEquality(a)
	cs.EnableEquality(pi)
	// enabling twice must not duplicate the permutation column
	cs.EnableEquality(a)

	require.True(t, cs.EqualityEnabled(a))
	require.True(t, cs.EqualityEnabled(pi))
	require.False(t, cs.EqualityEnabled(b))
	require.Equal(t, []Column{a, pi}, cs.PermutationColumns())
}

func TestEnableEqualityUndeclared(t *testing.T) {
	cs := NewConstraintSystem(&m31.Field{})
	require.Panics(t, func() {
		cs.EnableEquality(Column{Kind: Advice, Index: 3})
	})
}

func TestCreateGate(t *testing.T) {
	cs := NewConstraintSystem(&m31.Field{})

	l := cs.AdviceColumn()
	r := cs.AdviceColumn()
	s := cs.FixedColumn()

	cs.CreateGate("mul", func(v *VirtualCells) []Expression {
		le := v.QueryAdvice(l, RotationCur)
		re := v.QueryAdvice(r, RotationCur)
		se := v.QueryFixed(s, RotationCur)
		return []Expression{Product(se, le, re)}
	})

	gates := cs.Gates()
	require.Len(t, gates, 1)
	require.Equal(t, "mul", gates[0].Name)
	require.Equal(t, []CellQuery{
		{Column: l, At: RotationCur},
		{Column: r, At: RotationCur},
		{Column: s, At: RotationCur},
	}, gates[0].Queries)
	require.Equal(t, 3, gates[0].Polys[0].Degree())
}

func TestQueryWrongKind(t *testing.T) {
	cs := NewConstraintSystem(&m31.Field{})
	a := cs.AdviceColumn()

	require.Panics(t, func() {
		cs.CreateGate("bad", func(v *VirtualCells) []Expression {
			return []Expression{v.QueryFixed(a, RotationCur)}
		})
	})
}

func TestEmptyGate(t *testing.T) {
	cs := NewConstraintSystem(&m31.Field{})
	require.Panics(t, func() {
		cs.CreateGate("empty", func(v *VirtualCells) []Expression { return nil })
	})
}
