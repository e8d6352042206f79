package listops

// ToList copies src into a new growable list, preserving order. It returns
// an empty (non-nil) list if src is absent/empty.
func ToList[T any](src []T) []T {
	if isEmpty(src) {
		return []T{}
	}

	list := make([]T, 0, len(src))
	return append(list, src...)
}

// ToArray copies list into a new fixed-length slice (len == cap),
// preserving order. It returns an empty (non-nil) slice if list is
// absent/empty.
func ToArray[T any](list []T) []T {
	if isEmpty(list) {
		return []T{}
	}

	arr := make([]T, len(list))
	copy(arr, list)
	return arr
}
