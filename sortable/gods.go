package sortable

import "github.com/emirpasic/gods/v2/utils"

// FromComparator adapts a gods comparator, so orderings written for gods
// containers can be reused with the flat containers.
func FromComparator[K any](comparator utils.Comparator[K]) Less[K] {
	return func(a, b K) bool {
		return comparator(a, b) < 0
	}
}

// ToComparator converts an ordering into a gods comparator.
func ToComparator[K any](less Less[K]) utils.Comparator[K] {
	return utils.Comparator[K](less.Compare)
}
