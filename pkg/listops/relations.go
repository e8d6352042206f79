package listops

import "github.com/softixx/go-listops/pkg/set"

// Intersection returns the elements present in both a and b, each at most
// once, in unspecified order. It returns an empty list if either input is
// empty.
func Intersection[T comparable](a, b []T) []T {
	if isEmpty(a) || isEmpty(b) {
		return []T{}
	}

	inB := set.FromSlice(b)
	out := set.New[T](0)
	for _, el := range a {
		if inB.Contains(el) {
			out.Add(el)
		}
	}

	return out.Values()
}

// Difference returns the elements of a that do not appear anywhere in b,
// preserving a's order and multiplicity. It returns an empty list if either
// input is empty; in particular Difference(a, empty) is empty, NOT a.
func Difference[T comparable](a, b []T) []T {
	if isEmpty(a) || isEmpty(b) {
		return []T{}
	}

	inB := set.FromSlice(b)
	out := make([]T, 0, len(a))
	for _, el := range a {
		if !inB.Contains(el) {
			out = append(out, el)
		}
	}

	return out
}

// FullDifference returns the elements of a not in b merged with the
// elements of b not in a, duplicates removed, in unspecified order. It
// returns an empty list if either input is empty. Because the two one-sided
// differences are combined with Merge, the result is also empty whenever
// EITHER of them is empty: FullDifference of a list against a superset of
// it yields empty, not the extra elements. Kept on purpose.
func FullDifference[T comparable](a, b []T) []T {
	return Merge(Difference(a, b), Difference(b, a))
}
