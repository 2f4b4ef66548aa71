package m31

import (
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	var f Field

	a := f.FromInterface(5)
	b := f.FromInterface(7)

	require.Equal(t, constraint.Element{12}, f.Add(a, b))
	require.Equal(t, constraint.Element{35}, f.Mul(a, b))
	require.Equal(t, constraint.Element{P - 2}, f.Sub(a, b))
	require.Equal(t, constraint.Element{P - 5}, f.Neg(a))
	require.True(t, f.IsOne(f.One()))
}

func TestInverse(t *testing.T) {
	var f Field

	for _, x := range []uint64{1, 2, 3, 12345, P - 1} {
		a := constraint.Element{x}
		inv, ok := f.Inverse(a)
		require.True(t, ok)
		require.True(t, f.IsOne(f.Mul(a, inv)), "x=%d", x)
	}

	_, ok := f.Inverse(constraint.Element{})
	require.False(t, ok)
}

func TestFromInterfaceReduces(t *testing.T) {
	var f Field

	require.Equal(t, constraint.Element{1}, f.FromInterface(uint64(P)+1))
	v, ok := f.Uint64(f.FromInterface(-1))
	require.True(t, ok)
	require.Equal(t, uint64(P-1), v)
}
