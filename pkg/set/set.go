package set

// Set is a collection of unique elements backed by a map, so iteration
// order is unspecified.
type Set[T comparable] map[T]struct{}

func New[T comparable](capacity int) Set[T] {
	return make(Set[T], capacity)
}

// FromSlice builds a Set from the elements of a slice, collapsing duplicates.
func FromSlice[T comparable](slice []T) Set[T] {
	s := New[T](len(slice))
	for _, el := range slice {
		s[el] = struct{}{}
	}

	return s
}

func (s Set[T]) Add(el T) {
	s[el] = struct{}{}
}

func (s Set[T]) AddAll(slice []T) {
	for _, el := range slice {
		s[el] = struct{}{}
	}
}

func (s Set[T]) Contains(el T) bool {
	_, ok := s[el]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

// Values returns the elements as a new slice, in no particular order.
func (s Set[T]) Values() []T {
	slice := make([]T, 0, len(s))
	for el := range s {
		slice = append(slice, el)
	}

	return slice
}
