package internal

// Array is the growable buffer the triangulators work in. It is a thin wrapper
// around a slice; the methods mirror the operations the algorithms rely on.
//
// Appending may relocate the backing storage, so pointers returned by At are
// only valid until the next Append.
type Array[T any] struct {
	items []T
}

func NewArray[T any](capacity int) *Array[T] {
	return &Array[T]{items: make([]T, 0, capacity)}
}

// Append elements, returning the new length.
func (a *Array[T]) Append(elements ...T) int {
	a.items = append(a.items, elements...)
	return len(a.items)
}

// Get returns the element at index i, or false if i is out of range.
func (a *Array[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(a.items) {
		var zero T
		return zero, false
	}
	return a.items[i], true
}

// At returns a pointer for in-place updates. It panics if i is out of range.
func (a *Array[T]) At(i int) *T {
	return &a.items[i]
}

func (a *Array[T]) Len() int {
	return len(a.items)
}

// Filter returns a new array with the elements for which keep is true. The
// receiver is left untouched.
func (a *Array[T]) Filter(keep func(T) bool) *Array[T] {
	result := NewArray[T](len(a.items))
	for _, item := range a.items {
		if keep(item) {
			result.items = append(result.items, item)
		}
	}
	return result
}

// Deduplicate returns a new array keeping the first of every group of equal
// elements. Equality is only assumed to be symmetric, not hashable, so this is
// quadratic.
func (a *Array[T]) Deduplicate(equal func(a, b T) bool) *Array[T] {
	result := NewArray[T](len(a.items))
outer:
	for _, item := range a.items {
		for _, kept := range result.items {
			if equal(item, kept) {
				continue outer
			}
		}
		result.items = append(result.items, item)
	}
	return result
}

// Slice exposes the backing slice. It aliases the array.
func (a *Array[T]) Slice() []T {
	return a.items
}
