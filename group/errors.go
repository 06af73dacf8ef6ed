package group

import "errors"

// Sentinel errors for group construction and queries.
var (
	// ErrNotAMember is returned when an operation receives an element
	// outside the group.
	ErrNotAMember = errors.New("group: element is not a member")

	// ErrRequiresMaterialized is returned when an enumeration-dependent
	// operation runs against an order-only group.
	ErrRequiresMaterialized = errors.New("group: operation requires a materialized group")

	// ErrMissingIdentity is returned when a materialized construction does
	// not start with the identity element.
	ErrMissingIdentity = errors.New("group: element set must start with the identity")

	// ErrNotASubgroup is returned by coset enumeration when the candidate
	// subgroup is not contained in (or not closed within) the group.
	ErrNotASubgroup = errors.New("group: candidate is not a subgroup")
)
