// Package option provides an optional value. It doubles as a single-key
// container keyed by indexed.Unit that is empty when the value is missing.
package option

import (
	"fmt"
	"iter"

	"github.com/on-the-ground/overload_ive_go/indexed"
)

var (
	_ indexed.Lookup[indexed.Unit, any]                        = Option[any]{}
	_ indexed.Itemer[indexed.Unit, any]                        = Option[any]{}
	_ indexed.Enumerable[indexed.Unit, any]                    = Option[any]{}
	_ indexed.IteratorIndexed[indexed.Unit, any]               = Option[any]{}
	_ indexed.MapperIndexed[indexed.Unit, any, Option[any]]    = Option[any]{}
	_ indexed.TraverserIndexed[indexed.Unit, any, Option[any]] = Option[any]{}
	_ indexed.Lengther                                         = Option[any]{}
)

// Option holds a value or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromTry converts a comma-ok result, such as the one of indexed.TryItem.
func FromTry[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) Get() (T, bool) { return o.value, o.ok }
func (o Option[T]) IsSome() bool   { return o.ok }
func (o Option[T]) IsNone() bool   { return !o.ok }

func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func (o Option[T]) TryItem(indexed.Unit) (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) Item(key indexed.Unit) (T, error) {
	if !o.ok {
		var zero T
		return zero, fmt.Errorf("%w: %v in None", indexed.ErrKeyNotFound, key)
	}
	return o.value, nil
}

func (o Option[T]) Len() int {
	if o.ok {
		return 1
	}
	return 0
}

func (o Option[T]) All() iter.Seq2[indexed.Unit, T] {
	return func(yield func(indexed.Unit, T) bool) {
		if o.ok {
			yield(indexed.Unit{}, o.value)
		}
	}
}

func (o Option[T]) IterateIndexed(f func(indexed.Unit, T)) {
	if o.ok {
		f(indexed.Unit{}, o.value)
	}
}

func (o Option[T]) MapIndexed(f func(indexed.Unit, T) T) Option[T] {
	return MapIndexed(o, f)
}

func (o Option[T]) TraverseIndexed(f func(indexed.Unit, T) (T, error)) (Option[T], error) {
	return TraverseIndexed(o, f)
}

func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	if !o.ok {
		return None[R]()
	}
	return Some(f(o.value))
}

func MapIndexed[T, R any](o Option[T], f func(indexed.Unit, T) R) Option[R] {
	if !o.ok {
		return None[R]()
	}
	return Some(f(indexed.Unit{}, o.value))
}

func Bind[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	if !o.ok {
		return None[R]()
	}
	return f(o.value)
}

// TraverseIndexed runs f on the value, if any. None stays None without calling f.
func TraverseIndexed[T, R any](o Option[T], f func(indexed.Unit, T) (R, error)) (Option[R], error) {
	if !o.ok {
		return None[R](), nil
	}
	r, err := f(indexed.Unit{}, o.value)
	if err != nil {
		return None[R](), err
	}
	return Some(r), nil
}
