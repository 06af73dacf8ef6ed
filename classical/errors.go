package classical

import "errors"

var (
	// ErrUnknownFamily is returned by Build for a family name outside the
	// supported set.
	ErrUnknownFamily = errors.New("classical: unknown family")

	// ErrBadDimension is returned when the requested matrix dimension is
	// smaller than 1.
	ErrBadDimension = errors.New("classical: dimension must be at least 1")

	// ErrBadCharacteristic is returned by the orthogonal factories over
	// fields of characteristic 2, where the reflection construction
	// degenerates.
	ErrBadCharacteristic = errors.New("classical: orthogonal families require odd characteristic")

	// ErrBadParameter is returned by the finite-family factories when the
	// parameter is out of range (e.g. a dihedral group on fewer than 3
	// points).
	ErrBadParameter = errors.New("classical: parameter out of range")
)
