package plonk

// Cell addresses one assigned slot in the final row layout. Row is absolute,
// chosen by the floor planner; callers never pick it themselves.
type Cell struct {
	Column Column
	Row    int
}

// CopyConstraint asserts that two cells hold equal values, enforced by the
// backend's permutation argument. Both columns must be equality-enabled.
type CopyConstraint struct {
	A, B Cell
}

// InstanceBinding pins an internal cell to a row of an instance column, making
// its value a public input.
type InstanceBinding struct {
	Cell   Cell
	Column Column
	Row    int
}
