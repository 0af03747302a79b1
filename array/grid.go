package array

import (
	"fmt"
	"math"

	"github.com/on-the-ground/overload_ive_go/indexed"
)

// grid is the row-major storage shared by every rank. Copies of a grid
// share their elements.
type grid[T any] struct {
	bounds []Bounds
	items  []T
}

func newGrid[T any](bounds ...Bounds) grid[T] {
	size := 1
	for d, b := range bounds {
		n := b.Len()
		switch {
		case b.Hi >= b.Lo && n <= 0:
			panic(fmt.Sprintf("array: dimension %d length overflows int: %v", d, b))
		case n < 0:
			panic(fmt.Sprintf("array: dimension %d has negative length: %v", d, b))
		case n > 0 && size > math.MaxInt/n:
			panic(fmt.Sprintf("array: size of %s overflows int", formatBounds(bounds)))
		}
		size *= n
	}
	return grid[T]{
		bounds: append([]Bounds(nil), bounds...),
		items:  make([]T, size),
	}
}

// dim returns the bounds of dimension d. The zero array reports every
// dimension as empty.
func (g grid[T]) dim(d int) Bounds {
	if d >= len(g.bounds) {
		return Len(0)
	}
	return g.bounds[d]
}

// offset maps an index tuple to its storage position. Every component must
// lie within its dimension's inclusive bounds.
func (g grid[T]) offset(idx []int) (int, bool) {
	if len(g.items) == 0 {
		return 0, false
	}
	off := 0
	for d, b := range g.bounds {
		if !b.Contains(idx[d]) {
			return 0, false
		}
		off = off*b.Len() + idx[d] - b.Lo
	}
	return off, true
}

func (g grid[T]) tryItem(idx []int) (T, bool) {
	off, ok := g.offset(idx)
	if !ok {
		var zero T
		return zero, false
	}
	return g.items[off], true
}

func (g grid[T]) item(idx []int) (T, error) {
	if v, ok := g.tryItem(idx); ok {
		return v, nil
	}
	var zero T
	return zero, g.outOfRange(idx)
}

func (g grid[T]) set(idx []int, v T) error {
	off, ok := g.offset(idx)
	if !ok {
		return g.outOfRange(idx)
	}
	g.items[off] = v
	return nil
}

func (g grid[T]) outOfRange(idx []int) error {
	return fmt.Errorf("%w: %v not in %s", indexed.ErrIndexOutOfRange, idx, formatBounds(g.bounds))
}

// walk visits every element in row-major order, last index fastest.
// The index slice is reused between calls.
func (g grid[T]) walk(yield func(idx []int, v T) bool) {
	if len(g.items) == 0 {
		return
	}
	idx := make([]int, len(g.bounds))
	for d, b := range g.bounds {
		idx[d] = b.Lo
	}
	for _, v := range g.items {
		if !yield(idx, v) {
			return
		}
		for d := len(idx) - 1; d >= 0; d-- {
			if idx[d] < g.bounds[d].Hi {
				idx[d]++
				break
			}
			idx[d] = g.bounds[d].Lo
		}
	}
}

func (g grid[T]) fill(f func(idx []int) T) grid[T] {
	i := 0
	g.walk(func(idx []int, _ T) bool {
		g.items[i] = f(idx)
		i++
		return true
	})
	return g
}

func mapGrid[T, R any](g grid[T], f func(idx []int, v T) R) grid[R] {
	out := grid[R]{bounds: g.bounds, items: make([]R, len(g.items))}
	i := 0
	g.walk(func(idx []int, v T) bool {
		out.items[i] = f(idx, v)
		i++
		return true
	})
	return out
}

func traverseGrid[T, R any](g grid[T], f func(idx []int, v T) (R, error)) (grid[R], error) {
	out := grid[R]{bounds: g.bounds, items: make([]R, len(g.items))}
	var (
		i   int
		err error
	)
	g.walk(func(idx []int, v T) bool {
		var r R
		if r, err = f(idx, v); err != nil {
			err = fmt.Errorf("index %v: %w", idx, err)
			return false
		}
		out.items[i] = r
		i++
		return true
	})
	if err != nil {
		return grid[R]{}, err
	}
	return out, nil
}
