package seq

import (
	"fmt"
	"iter"

	"github.com/on-the-ground/overload_ive_go/indexed"
	"github.com/on-the-ground/overload_ive_go/overload"
)

var (
	_ indexed.Lookup[int, any]                       = (*List[any])(nil)
	_ indexed.Itemer[int, any]                       = (*List[any])(nil)
	_ indexed.Enumerable[int, any]                   = (*List[any])(nil)
	_ indexed.IteratorIndexed[int, any]              = (*List[any])(nil)
	_ indexed.MapperIndexed[int, any, *List[any]]    = (*List[any])(nil)
	_ indexed.TraverserIndexed[int, any, *List[any]] = (*List[any])(nil)
	_ indexed.Lengther                               = (*List[any])(nil)
	_ overload.Absenter                              = (*List[any])(nil)
)

// List is a resizable sequence. A nil *List is absent: the indexed
// operations treat it as empty and return it unchanged. Read methods are
// nil-safe; mutating a nil *List panics.
type List[T any] struct {
	items []T
}

func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: append([]T(nil), items...)}
}

// Absent reports whether l is a nil list.
func (l *List[T]) Absent() bool { return l == nil }

func (l *List[T]) view() []T {
	if l == nil {
		return nil
	}
	return l.items
}

func (l *List[T]) Add(v ...T) {
	l.items = append(l.items, v...)
}

func (l *List[T]) Set(i int, v T) error {
	if _, err := item(l.items, i); err != nil {
		return err
	}
	l.items[i] = v
	return nil
}

func (l *List[T]) RemoveAt(i int) error {
	if _, err := item(l.items, i); err != nil {
		return err
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

func (l *List[T]) Len() int { return len(l.view()) }

// Seq snapshots the list into an immutable sequence.
func (l *List[T]) Seq() Seq[T] {
	return Of(l.view()...)
}

func (l *List[T]) TryItem(i int) (T, bool) {
	return tryItem(l.view(), i)
}

func (l *List[T]) Item(i int) (T, error) {
	return item(l.view(), i)
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return all(l.view())
}

func (l *List[T]) IterateIndexed(f func(int, T)) {
	for i, v := range l.view() {
		f(i, v)
	}
}

// MapIndexed returns a new list; l is left untouched.
func (l *List[T]) MapIndexed(f func(int, T) T) *List[T] {
	return MapIndexedList(l, f)
}

func (l *List[T]) TraverseIndexed(f func(int, T) (T, error)) (*List[T], error) {
	return TraverseIndexedList(l, f)
}

func (l *List[T]) String() string {
	if l == nil {
		return "<absent>"
	}
	return fmt.Sprint(l.items)
}

// MapIndexedList is MapIndexed for lists. A nil list maps to a nil list.
func MapIndexedList[T, R any](l *List[T], f func(int, T) R) *List[R] {
	if l == nil {
		return nil
	}
	return &List[R]{items: mapIndexed(l.items, f)}
}

// TraverseIndexedList is TraverseIndexed for lists. A nil list traverses to a nil list.
func TraverseIndexedList[T, R any](l *List[T], f func(int, T) (R, error)) (*List[R], error) {
	if l == nil {
		return nil, nil
	}
	out, err := traverseIndexed(l.items, f)
	if err != nil {
		return nil, err
	}
	return &List[R]{items: out}, nil
}
