package plonk

// Circuit is implemented by circuit definitions. The backend drives it twice:
// once without witnesses to derive the shape (key generation) and once per
// proof with witnesses. Both passes must make the identical sequence of
// configuration and assignment calls.
type Circuit interface {
	// WithoutWitnesses returns a copy of the circuit with every witness
	// value unknown. Circuit-shape constants are kept.
	WithoutWitnesses() Circuit

	// Configure declares the circuit's columns and gates on meta. The
	// implementation stores whatever handles Synthesize needs.
	Configure(meta *ConstraintSystem)

	// Synthesize lays the full computation trace through the layouter.
	Synthesize(l Layouter) error
}
