// Package test provides a small assertion harness over the mock backend.
package test

import (
	"testing"

	"github.com/chndr1/plonkish/field"
	"github.com/chndr1/plonkish/mock"
	"github.com/chndr1/plonkish/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// Satisfied synthesizes circ against the given public inputs and fails the
// test unless every constraint holds. It returns the prover for further
// inspection.
func (a *Assert) Satisfied(f field.Field, circ plonk.Circuit, instance [][]constraint.Element) *mock.MockProver {
	a.t.Helper()
	p, err := mock.Run(f, circ, instance)
	require.NoError(a.t, err)
	require.NoError(a.t, p.Verify())
	return p
}

// NotSatisfied synthesizes circ and fails the test unless at least one
// constraint is violated. Synthesis itself must still succeed.
func (a *Assert) NotSatisfied(f field.Field, circ plonk.Circuit, instance [][]constraint.Element) *mock.MockProver {
	a.t.Helper()
	p, err := mock.Run(f, circ, instance)
	require.NoError(a.t, err)
	require.Error(a.t, p.Verify())
	return p
}
