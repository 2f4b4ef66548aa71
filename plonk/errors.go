package plonk

import "errors"

var (
	// ErrEqualityNotEnabled is returned when a copy constraint or instance
	// binding touches a column that was not enabled for equality.
	ErrEqualityNotEnabled = errors.New("column not enabled for equality")

	// ErrInstanceOutOfRange is returned when a cell is bound to an instance
	// row outside the declared public-input range.
	ErrInstanceOutOfRange = errors.New("instance row out of range")

	// ErrColumnKind is returned when an assignment targets a column of the
	// wrong kind, e.g. advice written into a fixed column.
	ErrColumnKind = errors.New("wrong column kind")

	// ErrFixedUnknown is returned when a fixed cell is assigned an unknown
	// value; fixed cells are part of the circuit shape and must be concrete
	// in every synthesis pass.
	ErrFixedUnknown = errors.New("fixed cell assigned an unknown value")
)
