package plonkish

import (
	"math/big"
	"time"

	"github.com/chndr1/plonkish/field"
	"github.com/chndr1/plonkish/logger"
	"github.com/chndr1/plonkish/plonk"
)

// Compile runs a witness-free synthesis pass of circuit over the field with
// the given order and returns its constraint system and shape.
func Compile(fieldOrder *big.Int, circuit plonk.Circuit, opts ...plonk.CompileOption) (*CompileResult, error) {
	log := logger.Logger()
	f := field.GetFieldFromOrder(fieldOrder)

	start := time.Now()
	cs, shape, err := plonk.CompileShape(f, circuit, opts...)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("advice", cs.NumAdvice()).
		Int("fixed", cs.NumFixed()).
		Int("instance", cs.NumInstance()).
		Int("gates", len(cs.Gates())).
		Int("regions", len(shape.Regions)).
		Int("rows", shape.Rows).
		Dur("took", time.Since(start)).
		Msg("compiled circuit shape")

	return &CompileResult{cs: cs, shape: shape}, nil
}
