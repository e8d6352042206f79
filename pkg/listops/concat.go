package listops

// ConcatAll flattens any number of lists into one, preserving encounter
// order and duplicates. Nil lists are skipped. Zero input lists yields an
// empty list.
func ConcatAll[T any](lists ...[]T) []T {
	total := 0
	for _, list := range lists {
		total += len(list)
	}

	out := make([]T, 0, total)
	for _, list := range lists {
		if list == nil {
			continue
		}
		out = append(out, list...)
	}

	return out
}

// Concat concatenates two lists, preserving order and duplicates.
// If both are empty it returns an empty list; if exactly one is empty it
// returns the other one AS-IS, so callers must not assume the result is
// independent of the inputs in that case.
func Concat[T any](a, b []T) []T {
	if isEmpty(a) && isEmpty(b) {
		return []T{}
	}

	if isEmpty(b) {
		return a
	}

	if isEmpty(a) {
		return b
	}

	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
