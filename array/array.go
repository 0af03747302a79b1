// Package array provides fixed-size arrays of rank 1 to 4 with explicit
// inclusive bounds per dimension. An element exists at an index tuple iff
// every component lies within its dimension's bounds. Elements are visited
// in row-major order, last index fastest.
//
// Arrays have fixed shape but mutable elements; copies share storage.
package array

import (
	"iter"

	"github.com/on-the-ground/overload_ive_go/indexed"
)

var (
	_ indexed.Lookup[int, any]                           = Array1[any]{}
	_ indexed.Itemer[[2]int, any]                        = Array2[any]{}
	_ indexed.Enumerable[[3]int, any]                    = Array3[any]{}
	_ indexed.IteratorIndexed[[4]int, any]               = Array4[any]{}
	_ indexed.MapperIndexed[[2]int, any, Array2[any]]    = Array2[any]{}
	_ indexed.TraverserIndexed[int, any, Array1[any]]    = Array1[any]{}
	_ indexed.TraverserIndexed[[4]int, any, Array4[any]] = Array4[any]{}
	_ indexed.Lengther                                   = Array3[any]{}
)

// Array1 is a one-dimensional array keyed by position.
type Array1[T any] struct {
	g grid[T]
}

// New1 returns a zero-filled array with the given bounds.
// It panics when a dimension has negative length.
func New1[T any](b Bounds) Array1[T] {
	return Array1[T]{g: newGrid[T](b)}
}

// Init1 returns an array whose elements are f(index).
func Init1[T any](b Bounds, f func(int) T) Array1[T] {
	return Array1[T]{g: newGrid[T](b).fill(func(idx []int) T { return f(idx[0]) })}
}

func (a Array1[T]) Bounds() Bounds { return a.g.dim(0) }
func (a Array1[T]) Len() int       { return len(a.g.items) }

// Set replaces the element at k in place.
func (a Array1[T]) Set(k int, v T) error { return a.g.set([]int{k}, v) }

func (a Array1[T]) TryItem(k int) (T, bool) { return a.g.tryItem([]int{k}) }
func (a Array1[T]) Item(k int) (T, error)   { return a.g.item([]int{k}) }

func (a Array1[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a.g.walk(func(idx []int, v T) bool { return yield(idx[0], v) })
	}
}

func (a Array1[T]) IterateIndexed(f func(int, T)) {
	a.g.walk(func(idx []int, v T) bool {
		f(idx[0], v)
		return true
	})
}

func (a Array1[T]) MapIndexed(f func(int, T) T) Array1[T] { return MapIndexed1(a, f) }

func (a Array1[T]) TraverseIndexed(f func(int, T) (T, error)) (Array1[T], error) {
	return TraverseIndexed1(a, f)
}

// MapIndexed1 returns a new array of the same bounds holding f(index, element).
func MapIndexed1[T, R any](a Array1[T], f func(int, T) R) Array1[R] {
	return Array1[R]{g: mapGrid(a.g, func(idx []int, v T) R { return f(idx[0], v) })}
}

// TraverseIndexed1 is MapIndexed1 with a fallible f. The first error, in
// row-major order, aborts the traversal.
func TraverseIndexed1[T, R any](a Array1[T], f func(int, T) (R, error)) (Array1[R], error) {
	g, err := traverseGrid(a.g, func(idx []int, v T) (R, error) { return f(idx[0], v) })
	if err != nil {
		return Array1[R]{}, err
	}
	return Array1[R]{g: g}, nil
}

// Array2 is a 2-dimensional array keyed by [2]int.
type Array2[T any] struct {
	g grid[T]
}

// New2 returns a zero-filled array with the given bounds.
// It panics when a dimension has negative length.
func New2[T any](rows, cols Bounds) Array2[T] {
	return Array2[T]{g: newGrid[T](rows, cols)}
}

// Init2 returns an array whose elements are f(index).
func Init2[T any](rows, cols Bounds, f func([2]int) T) Array2[T] {
	return Array2[T]{g: newGrid[T](rows, cols).fill(func(idx []int) T { return f([2]int(idx)) })}
}

func (a Array2[T]) Bounds() [2]Bounds { return [2]Bounds{a.g.dim(0), a.g.dim(1)} }
func (a Array2[T]) Len() int          { return len(a.g.items) }

// Set replaces the element at k in place.
func (a Array2[T]) Set(k [2]int, v T) error { return a.g.set(k[:], v) }

func (a Array2[T]) TryItem(k [2]int) (T, bool) { return a.g.tryItem(k[:]) }
func (a Array2[T]) Item(k [2]int) (T, error)   { return a.g.item(k[:]) }

func (a Array2[T]) All() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		a.g.walk(func(idx []int, v T) bool { return yield([2]int(idx), v) })
	}
}

func (a Array2[T]) IterateIndexed(f func([2]int, T)) {
	a.g.walk(func(idx []int, v T) bool {
		f([2]int(idx), v)
		return true
	})
}

func (a Array2[T]) MapIndexed(f func([2]int, T) T) Array2[T] { return MapIndexed2(a, f) }

func (a Array2[T]) TraverseIndexed(f func([2]int, T) (T, error)) (Array2[T], error) {
	return TraverseIndexed2(a, f)
}

// MapIndexed2 returns a new array of the same bounds holding f(index, element).
func MapIndexed2[T, R any](a Array2[T], f func([2]int, T) R) Array2[R] {
	return Array2[R]{g: mapGrid(a.g, func(idx []int, v T) R { return f([2]int(idx), v) })}
}

// TraverseIndexed2 is MapIndexed2 with a fallible f. The first error, in
// row-major order, aborts the traversal.
func TraverseIndexed2[T, R any](a Array2[T], f func([2]int, T) (R, error)) (Array2[R], error) {
	g, err := traverseGrid(a.g, func(idx []int, v T) (R, error) { return f([2]int(idx), v) })
	if err != nil {
		return Array2[R]{}, err
	}
	return Array2[R]{g: g}, nil
}

// Array3 is a 3-dimensional array keyed by [3]int.
type Array3[T any] struct {
	g grid[T]
}

// New3 returns a zero-filled array with the given bounds.
// It panics when a dimension has negative length.
func New3[T any](b0, b1, b2 Bounds) Array3[T] {
	return Array3[T]{g: newGrid[T](b0, b1, b2)}
}

// Init3 returns an array whose elements are f(index).
func Init3[T any](b0, b1, b2 Bounds, f func([3]int) T) Array3[T] {
	return Array3[T]{g: newGrid[T](b0, b1, b2).fill(func(idx []int) T { return f([3]int(idx)) })}
}

func (a Array3[T]) Bounds() [3]Bounds { return [3]Bounds{a.g.dim(0), a.g.dim(1), a.g.dim(2)} }
func (a Array3[T]) Len() int          { return len(a.g.items) }

// Set replaces the element at k in place.
func (a Array3[T]) Set(k [3]int, v T) error { return a.g.set(k[:], v) }

func (a Array3[T]) TryItem(k [3]int) (T, bool) { return a.g.tryItem(k[:]) }
func (a Array3[T]) Item(k [3]int) (T, error)   { return a.g.item(k[:]) }

func (a Array3[T]) All() iter.Seq2[[3]int, T] {
	return func(yield func([3]int, T) bool) {
		a.g.walk(func(idx []int, v T) bool { return yield([3]int(idx), v) })
	}
}

func (a Array3[T]) IterateIndexed(f func([3]int, T)) {
	a.g.walk(func(idx []int, v T) bool {
		f([3]int(idx), v)
		return true
	})
}

func (a Array3[T]) MapIndexed(f func([3]int, T) T) Array3[T] { return MapIndexed3(a, f) }

func (a Array3[T]) TraverseIndexed(f func([3]int, T) (T, error)) (Array3[T], error) {
	return TraverseIndexed3(a, f)
}

// MapIndexed3 returns a new array of the same bounds holding f(index, element).
func MapIndexed3[T, R any](a Array3[T], f func([3]int, T) R) Array3[R] {
	return Array3[R]{g: mapGrid(a.g, func(idx []int, v T) R { return f([3]int(idx), v) })}
}

// TraverseIndexed3 is MapIndexed3 with a fallible f. The first error, in
// row-major order, aborts the traversal.
func TraverseIndexed3[T, R any](a Array3[T], f func([3]int, T) (R, error)) (Array3[R], error) {
	g, err := traverseGrid(a.g, func(idx []int, v T) (R, error) { return f([3]int(idx), v) })
	if err != nil {
		return Array3[R]{}, err
	}
	return Array3[R]{g: g}, nil
}

// Array4 is a 4-dimensional array keyed by [4]int.
type Array4[T any] struct {
	g grid[T]
}

// New4 returns a zero-filled array with the given bounds.
// It panics when a dimension has negative length.
func New4[T any](b0, b1, b2, b3 Bounds) Array4[T] {
	return Array4[T]{g: newGrid[T](b0, b1, b2, b3)}
}

// Init4 returns an array whose elements are f(index).
func Init4[T any](b0, b1, b2, b3 Bounds, f func([4]int) T) Array4[T] {
	return Array4[T]{g: newGrid[T](b0, b1, b2, b3).fill(func(idx []int) T { return f([4]int(idx)) })}
}

func (a Array4[T]) Bounds() [4]Bounds {
	return [4]Bounds{a.g.dim(0), a.g.dim(1), a.g.dim(2), a.g.dim(3)}
}
func (a Array4[T]) Len() int { return len(a.g.items) }

// Set replaces the element at k in place.
func (a Array4[T]) Set(k [4]int, v T) error { return a.g.set(k[:], v) }

func (a Array4[T]) TryItem(k [4]int) (T, bool) { return a.g.tryItem(k[:]) }
func (a Array4[T]) Item(k [4]int) (T, error)   { return a.g.item(k[:]) }

func (a Array4[T]) All() iter.Seq2[[4]int, T] {
	return func(yield func([4]int, T) bool) {
		a.g.walk(func(idx []int, v T) bool { return yield([4]int(idx), v) })
	}
}

func (a Array4[T]) IterateIndexed(f func([4]int, T)) {
	a.g.walk(func(idx []int, v T) bool {
		f([4]int(idx), v)
		return true
	})
}

func (a Array4[T]) MapIndexed(f func([4]int, T) T) Array4[T] { return MapIndexed4(a, f) }

func (a Array4[T]) TraverseIndexed(f func([4]int, T) (T, error)) (Array4[T], error) {
	return TraverseIndexed4(a, f)
}

// MapIndexed4 returns a new array of the same bounds holding f(index, element).
func MapIndexed4[T, R any](a Array4[T], f func([4]int, T) R) Array4[R] {
	return Array4[R]{g: mapGrid(a.g, func(idx []int, v T) R { return f([4]int(idx), v) })}
}

// TraverseIndexed4 is MapIndexed4 with a fallible f. The first error, in
// row-major order, aborts the traversal.
func TraverseIndexed4[T, R any](a Array4[T], f func([4]int, T) (R, error)) (Array4[R], error) {
	g, err := traverseGrid(a.g, func(idx []int, v T) (R, error) { return f([4]int(idx), v) })
	if err != nil {
		return Array4[R]{}, err
	}
	return Array4[R]{g: g}, nil
}
