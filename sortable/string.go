package sortable

import "facette.io/natsort"

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalStrings orders strings the way humans read them: embedded digit runs
// compare by numeric value, so "file2" sorts before "file10".
func NaturalStrings() Less[string] {
	return func(a, b string) bool {
		return a != b && natsort.Compare(a, b)
	}
}
