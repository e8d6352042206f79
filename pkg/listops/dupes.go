package listops

import "github.com/softixx/go-listops/pkg/set"

// HasDuplicates reports whether collection contains at least one element
// more than once. An absent/empty collection has no duplicates.
func HasDuplicates[T comparable](collection []T) bool {
	if isEmpty(collection) {
		return false
	}

	return set.FromSlice(collection).Len() < len(collection)
}
