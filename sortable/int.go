package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// Example:
//
//	s := flat.NewSetFunc[sortable.Int](sortable.Of[sortable.Int]())
//	s.Insert(sortable.Int(5))
//	s.Insert(sortable.Int(3))
//	// Iterating yields: 3, 5
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
