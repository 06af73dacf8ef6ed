package algebra

import "errors"

// Sentinel errors for element construction and composition.
var (
	// ErrIncompatibleKind is returned when two elements of different kinds,
	// or of the same kind with different parameters (degree, field,
	// projective flag), are composed.
	ErrIncompatibleKind = errors.New("algebra: incompatible element kinds")

	// ErrInvalidElement is returned by constructors for data that does not
	// describe a group element (non-bijective images, a singular matrix,
	// a zero quaternion, out-of-range field entries).
	ErrInvalidElement = errors.New("algebra: invalid element data")

	// ErrEmptyGenerators is returned when a generating set is built from
	// no elements.
	ErrEmptyGenerators = errors.New("algebra: empty generating set")

	// ErrMixedKinds is returned when generators do not all share one kind
	// and parameter set.
	ErrMixedKinds = errors.New("algebra: generators of mixed kinds")
)
