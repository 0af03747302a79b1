// Package scalar holds the single-key containers: Identity, keyed by
// indexed.Unit, and Pair, keyed by its own first component.
package scalar

import (
	"fmt"
	"iter"

	"github.com/on-the-ground/overload_ive_go/indexed"
)

var (
	_ indexed.Itemer[indexed.Unit, any]                          = Identity[any]{}
	_ indexed.Lookup[indexed.Unit, any]                          = Identity[any]{}
	_ indexed.Enumerable[indexed.Unit, any]                      = Identity[any]{}
	_ indexed.MapperIndexed[indexed.Unit, any, Identity[any]]    = Identity[any]{}
	_ indexed.TraverserIndexed[indexed.Unit, any, Identity[any]] = Identity[any]{}

	_ indexed.Lookup[string, any]                           = Pair[string, any]{}
	_ indexed.Enumerable[string, any]                       = Pair[string, any]{}
	_ indexed.MapperIndexed[string, any, Pair[string, any]] = Pair[string, any]{}
)

// Identity wraps exactly one value. Its only key is indexed.Unit, so every
// lookup succeeds.
type Identity[T any] struct {
	Value T
}

func Of[T any](v T) Identity[T] {
	return Identity[T]{Value: v}
}

func (i Identity[T]) TryItem(indexed.Unit) (T, bool)         { return i.Value, true }
func (i Identity[T]) Item(indexed.Unit) (T, error)           { return i.Value, nil }
func (i Identity[T]) Len() int                               { return 1 }
func (i Identity[T]) IterateIndexed(f func(indexed.Unit, T)) { f(indexed.Unit{}, i.Value) }

func (i Identity[T]) All() iter.Seq2[indexed.Unit, T] {
	return func(yield func(indexed.Unit, T) bool) {
		yield(indexed.Unit{}, i.Value)
	}
}

func (i Identity[T]) MapIndexed(f func(indexed.Unit, T) T) Identity[T] {
	return MapIdentity(i, f)
}

func (i Identity[T]) TraverseIndexed(f func(indexed.Unit, T) (T, error)) (Identity[T], error) {
	return TraverseIdentity(i, f)
}

func (i Identity[T]) String() string {
	return fmt.Sprintf("Identity(%v)", i.Value)
}

func MapIdentity[T, R any](i Identity[T], f func(indexed.Unit, T) R) Identity[R] {
	return Of(f(indexed.Unit{}, i.Value))
}

func TraverseIdentity[T, R any](i Identity[T], f func(indexed.Unit, T) (R, error)) (Identity[R], error) {
	r, err := f(indexed.Unit{}, i.Value)
	if err != nil {
		return Identity[R]{}, err
	}
	return Of(r), nil
}

// Pair is a tuple whose first component is the key of its second.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func PairOf[K comparable, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

func (p Pair[K, V]) TryItem(key K) (V, bool) {
	if key != p.Key {
		var zero V
		return zero, false
	}
	return p.Value, true
}

func (p Pair[K, V]) Item(key K) (V, error) {
	if v, ok := p.TryItem(key); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v (pair key is %v)", indexed.ErrKeyNotFound, key, p.Key)
}

func (p Pair[K, V]) Len() int { return 1 }

func (p Pair[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		yield(p.Key, p.Value)
	}
}

func (p Pair[K, V]) IterateIndexed(f func(K, V)) { f(p.Key, p.Value) }

func (p Pair[K, V]) MapIndexed(f func(K, V) V) Pair[K, V] {
	return MapPair(p, f)
}

func (p Pair[K, V]) TraverseIndexed(f func(K, V) (V, error)) (Pair[K, V], error) {
	return TraversePair(p, f)
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

func MapPair[K comparable, V, R any](p Pair[K, V], f func(K, V) R) Pair[K, R] {
	return PairOf(p.Key, f(p.Key, p.Value))
}

func TraversePair[K comparable, V, R any](p Pair[K, V], f func(K, V) (R, error)) (Pair[K, R], error) {
	r, err := f(p.Key, p.Value)
	if err != nil {
		return Pair[K, R]{}, err
	}
	return PairOf(p.Key, r), nil
}
