// Package daily provides a series with one value per calendar day, keyed by
// date over the inclusive range [First, Last].
package daily

import (
	"fmt"
	"iter"

	"github.com/rickb777/date/v2"

	"github.com/on-the-ground/overload_ive_go/indexed"
)

var (
	_ indexed.Lookup[date.Date, any]                        = Series[any]{}
	_ indexed.Itemer[date.Date, any]                        = Series[any]{}
	_ indexed.Enumerable[date.Date, any]                    = Series[any]{}
	_ indexed.IteratorIndexed[date.Date, any]               = Series[any]{}
	_ indexed.MapperIndexed[date.Date, any, Series[any]]    = Series[any]{}
	_ indexed.TraverserIndexed[date.Date, any, Series[any]] = Series[any]{}
	_ indexed.Lengther                                      = Series[any]{}
)

// Series holds consecutive daily values starting at First.
type Series[T any] struct {
	first  date.Date
	values []T
}

// New returns a series whose i-th value falls on first plus i days.
func New[T any](first date.Date, values ...T) Series[T] {
	return Series[T]{first: first, values: append([]T(nil), values...)}
}

// Init returns a series over [first, last] holding f(day). It is empty when
// last is before first.
func Init[T any](first, last date.Date, f func(date.Date) T) Series[T] {
	n := int(last-first) + 1
	if n < 0 {
		n = 0
	}
	s := Series[T]{first: first, values: make([]T, n)}
	for i := range s.values {
		s.values[i] = f(s.day(i))
	}
	return s
}

func (s Series[T]) First() date.Date { return s.first }

// Last is the final day of the series. For an empty series it is the day before First.
func (s Series[T]) Last() date.Date {
	return s.day(len(s.values) - 1)
}

// day is the date of the i-th value. date.Date counts days, so plain integer
// arithmetic moves between days.
func (s Series[T]) day(i int) date.Date { return s.first + date.Date(i) }

func (s Series[T]) Len() int { return len(s.values) }

func (s Series[T]) offset(d date.Date) (int, bool) {
	i := int(d - s.first)
	return i, i >= 0 && i < len(s.values)
}

func (s Series[T]) TryItem(d date.Date) (T, bool) {
	if i, ok := s.offset(d); ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

func (s Series[T]) Item(d date.Date) (T, error) {
	if v, ok := s.TryItem(d); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s not in [%s, %s]", indexed.ErrIndexOutOfRange, d, s.first, s.Last())
}

func (s Series[T]) All() iter.Seq2[date.Date, T] {
	return func(yield func(date.Date, T) bool) {
		for i, v := range s.values {
			if !yield(s.day(i), v) {
				return
			}
		}
	}
}

func (s Series[T]) IterateIndexed(f func(date.Date, T)) {
	for d, v := range s.All() {
		f(d, v)
	}
}

func (s Series[T]) MapIndexed(f func(date.Date, T) T) Series[T] {
	return MapIndexed(s, f)
}

func (s Series[T]) TraverseIndexed(f func(date.Date, T) (T, error)) (Series[T], error) {
	return TraverseIndexed(s, f)
}

// MapIndexed returns a series over the same days holding f(day, value).
func MapIndexed[T, R any](s Series[T], f func(date.Date, T) R) Series[R] {
	out := Series[R]{first: s.first, values: make([]R, len(s.values))}
	for i, v := range s.values {
		out.values[i] = f(s.day(i), v)
	}
	return out
}

// TraverseIndexed is MapIndexed with a fallible f. The first error, in day
// order, aborts.
func TraverseIndexed[T, R any](s Series[T], f func(date.Date, T) (R, error)) (Series[R], error) {
	out := Series[R]{first: s.first, values: make([]R, len(s.values))}
	for i, v := range s.values {
		d := s.day(i)
		r, err := f(d, v)
		if err != nil {
			return Series[R]{}, fmt.Errorf("day %s: %w", d, err)
		}
		out.values[i] = r
	}
	return out, nil
}
