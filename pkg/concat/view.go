// Package concat presents several slices of the same element type as one
// logical sequence without copying them.
package concat

import (
	"fmt"
	"iter"
)

// View is a read-write window over an ordered list of slices. Elements are
// visited part by part, in order. A View borrows its parts: writes through
// the pointers it returns land in the original slices, and the View is only
// meaningful while those slices are not reallocated by their owner.
//
// The zero View is a valid, empty view.
type View[T any] struct {
	parts [][]T
	n     int
}

// Of builds a View over parts. Empty parts are dropped, so the view never
// has to skip over them while iterating.
func Of[T any](parts ...[]T) View[T] {
	v := View[T]{parts: make([][]T, 0, len(parts))}
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		v.parts = append(v.parts, p)
		v.n += len(p)
	}
	return v
}

// Len returns the number of logical elements.
func (v View[T]) Len() int { return v.n }

// Empty reports whether the view has no elements.
func (v View[T]) Empty() bool { return v.n == 0 }

// Parts returns the live sub-slices backing the view.
func (v View[T]) Parts() [][]T { return v.parts }

// Front returns a pointer to the first element. Panics if the view is empty.
func (v View[T]) Front() *T {
	if v.n == 0 {
		panic("concat: Front on empty view")
	}
	return &v.parts[0][0]
}

// Back returns a pointer to the last element. Panics if the view is empty.
func (v View[T]) Back() *T {
	if v.n == 0 {
		panic("concat: Back on empty view")
	}
	last := v.parts[len(v.parts)-1]
	return &last[len(last)-1]
}

// At returns a pointer to the i-th logical element. Panics if i is out of
// bounds.
func (v View[T]) At(i int) *T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("concat: index %d out of bounds with length %d", i, v.n))
	}
	for _, p := range v.parts {
		if i < len(p) {
			return &p[i]
		}
		i -= len(p)
	}
	// Unreachable: n is the sum of the part lengths.
	panic("concat: inconsistent view")
}

// All yields logical index and element pairs in order. Every call starts a
// fresh traversal.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for _, p := range v.parts {
			for _, e := range p {
				if !yield(i, e) {
					return
				}
				i++
			}
		}
	}
}

// Values yields the elements in order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, p := range v.parts {
			for _, e := range p {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Backward yields logical index and element pairs from the last element to
// the first.
func (v View[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := v.n - 1
		for pi := len(v.parts) - 1; pi >= 0; pi-- {
			p := v.parts[pi]
			for j := len(p) - 1; j >= 0; j-- {
				if !yield(i, p[j]) {
					return
				}
				i--
			}
		}
	}
}

// AppendTo appends every element of the view to dst and returns the
// extended slice.
func (v View[T]) AppendTo(dst []T) []T {
	for _, p := range v.parts {
		dst = append(dst, p...)
	}
	return dst
}

// Slice returns a freshly allocated copy of the view's content. The result
// does not share memory with the view.
func (v View[T]) Slice() []T {
	return v.AppendTo(make([]T, 0, v.n))
}

// CopyTo has the semantics of the copy built-in: it copies elements
// starting at logical index start into dst until dst is full or the view is
// exhausted, and returns the number of elements copied.
func (v View[T]) CopyTo(start int, dst []T) int {
	copied := 0
	for _, p := range v.parts {
		if len(dst) == 0 {
			break
		}
		if start >= len(p) {
			start -= len(p)
			continue
		}
		n := copy(dst, p[start:])
		dst = dst[n:]
		copied += n
		start = 0
	}
	return copied
}

// Equal reports whether the view holds exactly the elements of s. It is a
// function rather than a method so View can keep an unconstrained element
// type.
func Equal[T comparable](v View[T], s []T) bool {
	if v.n != len(s) {
		return false
	}
	i := 0
	for _, p := range v.parts {
		for _, e := range p {
			if e != s[i] {
				return false
			}
			i++
		}
	}
	return true
}
