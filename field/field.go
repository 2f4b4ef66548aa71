// Package field defines the arithmetic capability set the arithmetization core
// is generic over, together with engine lookup by field order.
package field

import (
	"fmt"
	"math/big"

	"github.com/chndr1/plonkish/field/bn254"
	"github.com/chndr1/plonkish/field/m31"
	"github.com/consensys/gnark/constraint"
)

// Field is an arithmetic engine over constraint.Element values.
// constraint.Field supplies addition, multiplication, negation, inversion and
// the identities; the circuit layer never needs more than that.
type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(m31.ScalarField) == 0 {
		return &m31.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
