package validation

import "errors"

var (
	// ErrUnknownField is returned when an identifier does not name a
	// registered field.
	ErrUnknownField = errors.New("validation: unknown field")
	// ErrDuplicateField is returned when a field identifier is registered twice.
	ErrDuplicateField = errors.New("validation: duplicate field")
	// ErrSelfDependency is returned for an edge whose source and dependent match.
	ErrSelfDependency = errors.New("validation: field cannot depend on itself")
	// ErrCycle is returned when an edge would let a field transitively depend
	// on itself.
	ErrCycle = errors.New("validation: dependency cycle")
	// ErrReadOnlyField is returned by Form.Set for fields without a Setter.
	ErrReadOnlyField = errors.New("validation: field value cannot be set")
)
