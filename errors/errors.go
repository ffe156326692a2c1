// Package errors defines the sentinel errors reported by the flat containers and
// a small helper for accumulating several errors into one.
package errors

import "errors"

var (
	// ErrOutOfRange is returned by Map.At when the key is not present. It is the
	// not-found failure of the lookup family: the map is never modified.
	ErrOutOfRange = errors.New("key out of range")

	// ErrCapacityExceeded is raised by bounded backing sequences when an insert
	// would exceed their fixed capacity.
	ErrCapacityExceeded = errors.New("sequence capacity exceeded")

	// ErrUnsorted is reported by Validate when two adjacent elements are out of order.
	ErrUnsorted = errors.New("elements out of order")

	// ErrDuplicateKey is reported by Validate when a unique-key container holds
	// two equivalent keys.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use it when a check should report every problem it finds rather than stop at the first.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there is
// exactly one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
