package listops

import "github.com/softixx/go-listops/pkg/set"

// MergeAll flattens all non-nil input lists and removes duplicate elements.
// The order of the result is unspecified.
func MergeAll[T comparable](lists ...[]T) []T {
	s := set.New[T](0)
	for _, list := range lists {
		s.AddAll(list)
	}

	return s.Values()
}

// Merge returns the elements of a and b with duplicates removed, in
// unspecified order. If EITHER input is empty the result is empty — unlike
// MergeAll, which tolerates empty members. This asymmetry is kept on
// purpose; callers relying on union-with-empty must use MergeAll.
func Merge[T comparable](a, b []T) []T {
	if isEmpty(a) || isEmpty(b) {
		return []T{}
	}

	s := set.FromSlice(a)
	s.AddAll(b)
	return s.Values()
}
