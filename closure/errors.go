package closure

import "errors"

// Sentinel errors for closure runs.
var (
	// ErrNilGenerators is returned when a nil generating set is passed.
	ErrNilGenerators = errors.New("closure: generating set is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closure: invalid option supplied")

	// ErrGroupTooLarge is returned when the closure would exceed the
	// materialization ceiling. The partial discovery is discarded; no
	// truncated group is ever returned.
	ErrGroupTooLarge = errors.New("closure: group exceeds materialization ceiling")

	// ErrOrderOnlyUnsupported is returned when order-only mode is
	// requested for a kind without a faithful permutation action wired in
	// (field-matrix and quaternion kinds).
	ErrOrderOnlyUnsupported = errors.New("closure: order-only mode requires permutation elements")
)
