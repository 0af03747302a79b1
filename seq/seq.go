// Package seq provides the positional containers: an immutable sequence and a
// resizable list. Keys are zero-based positions, valid in [0, length).
package seq

import (
	"fmt"
	"iter"

	"github.com/on-the-ground/overload_ive_go/indexed"
	"github.com/on-the-ground/overload_ive_go/option"
)

var (
	_ indexed.Lookup[int, any]                     = Seq[any]{}
	_ indexed.Itemer[int, any]                     = Seq[any]{}
	_ indexed.Enumerable[int, any]                 = Seq[any]{}
	_ indexed.IteratorIndexed[int, any]            = Seq[any]{}
	_ indexed.MapperIndexed[int, any, Seq[any]]    = Seq[any]{}
	_ indexed.TraverserIndexed[int, any, Seq[any]] = Seq[any]{}
	_ indexed.Lengther                             = Seq[any]{}
)

// Seq is an immutable sequence. The zero value is empty.
type Seq[T any] struct {
	items []T
}

// Of copies items into a new sequence.
func Of[T any](items ...T) Seq[T] {
	return wrap(append([]T(nil), items...))
}

// From collects seq into a new sequence.
func From[T any](seq iter.Seq[T]) Seq[T] {
	var items []T
	for v := range seq {
		items = append(items, v)
	}
	return wrap(items)
}

func wrap[T any](items []T) Seq[T] {
	if len(items) == 0 {
		return Seq[T]{}
	}
	return Seq[T]{items: items}
}

func (s Seq[T]) Len() int { return len(s.items) }

// Slice returns a copy of the elements.
func (s Seq[T]) Slice() []T {
	return append([]T(nil), s.items...)
}

func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (s Seq[T]) TryItem(i int) (T, bool) {
	return tryItem(s.items, i)
}

func (s Seq[T]) Item(i int) (T, error) {
	return item(s.items, i)
}

func (s Seq[T]) All() iter.Seq2[int, T] {
	return all(s.items)
}

func (s Seq[T]) IterateIndexed(f func(int, T)) {
	for i, v := range s.items {
		f(i, v)
	}
}

func (s Seq[T]) MapIndexed(f func(int, T) T) Seq[T] {
	return MapIndexed(s, f)
}

func (s Seq[T]) TraverseIndexed(f func(int, T) (T, error)) (Seq[T], error) {
	return TraverseIndexed(s, f)
}

func (s Seq[T]) String() string {
	return fmt.Sprint(s.items)
}

// MapIndexed builds a sequence of f(position, element).
func MapIndexed[T, R any](s Seq[T], f func(int, T) R) Seq[R] {
	return wrap(mapIndexed(s.items, f))
}

// TraverseIndexed builds a sequence of f(position, element), stopping at the first error.
func TraverseIndexed[T, R any](s Seq[T], f func(int, T) (R, error)) (Seq[R], error) {
	out, err := traverseIndexed(s.items, f)
	if err != nil {
		return Seq[R]{}, err
	}
	return wrap(out), nil
}

// TraverseIndexedOption builds a sequence of the values f returns, or None
// as soon as f returns None.
func TraverseIndexedOption[T, R any](s Seq[T], f func(int, T) option.Option[R]) option.Option[Seq[R]] {
	out := make([]R, 0, len(s.items))
	for i, v := range s.items {
		r, ok := f(i, v).Get()
		if !ok {
			return option.None[Seq[R]]()
		}
		out = append(out, r)
	}
	return option.Some(wrap(out))
}

func tryItem[T any](items []T, i int) (T, bool) {
	if i < 0 || i >= len(items) {
		var zero T
		return zero, false
	}
	return items[i], true
}

func item[T any](items []T, i int) (T, error) {
	if v, ok := tryItem(items, i); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %d not in [0, %d)", indexed.ErrIndexOutOfRange, i, len(items))
}

func all[T any](items []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func mapIndexed[T, R any](items []T, f func(int, T) R) []R {
	out := make([]R, len(items))
	for i, v := range items {
		out[i] = f(i, v)
	}
	return out
}

func traverseIndexed[T, R any](items []T, f func(int, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	for i, v := range items {
		r, err := f(i, v)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}
