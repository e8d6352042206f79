// Package listops provides generic operations over slices: string
// conversion, concatenation, dedup merge, set-like relations and duplicate
// detection. No function mutates its input. Functions backed by a set
// (MergeAll, Merge, Intersection, FullDifference) return elements in
// unspecified order.
package listops

// isEmpty reports whether a list is absent or has no elements.
// A nil slice and a zero-length slice are treated the same.
func isEmpty[T any](list []T) bool {
	return len(list) == 0
}
